package knapsack

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors returned by the knapsack package.
var (
	// ErrUnsupportedStrategy indicates that Solve was called with a Strategy
	// value outside the declared set.
	ErrUnsupportedStrategy = errors.New("knapsack: unsupported strategy")

	// ErrWorkerPanic indicates that a parallel worker terminated abnormally.
	// The partial result is discarded.
	ErrWorkerPanic = errors.New("knapsack: worker panicked")

	// ErrNegativeLimit indicates a weight limit below zero.
	ErrNegativeLimit = errors.New("knapsack: weight limit must be non-negative")

	// ErrNegativeWeight indicates an item with a negative weight.
	ErrNegativeWeight = errors.New("knapsack: item weight must be non-negative")

	// ErrNegativeValue indicates an item with a negative value.
	ErrNegativeValue = errors.New("knapsack: item value must be non-negative")

	// ErrOverflow indicates that the summed weights or values of the items
	// do not fit in an int64.
	ErrOverflow = errors.New("knapsack: item totals overflow int64")

	// ErrBadStrategyName indicates that ParseStrategy did not recognize its input.
	ErrBadStrategyName = errors.New("knapsack: unknown strategy name")
)

// Item is the unit of selection: a (weight, value) pair.
type Item struct {
	Weight int64 `yaml:"weight" json:"weight"`
	Value  int64 `yaml:"value" json:"value"`
}

// String renders the item as {w:W v:V}.
func (it Item) String() string {
	return fmt.Sprintf("{w:%d v:%d}", it.Weight, it.Value)
}

// Solution is a subset of the input items together with its totals.
//
// Items keeps the order in which the strategy selected them: input order for
// the exhaustive strategies, descending ratio order for RatioHeuristic.
type Solution struct {
	Items       []Item `yaml:"items" json:"items"`
	TotalWeight int64  `yaml:"total_weight" json:"total_weight"`
	TotalValue  int64  `yaml:"total_value" json:"total_value"`
}

// Len returns the number of selected items.
func (s Solution) Len() int { return len(s.Items) }

// IsEmpty reports whether no item was selected.
func (s Solution) IsEmpty() bool { return len(s.Items) == 0 }

// newSolution copies picked into a Solution and sums its totals.
func newSolution(picked []Item) Solution {
	if len(picked) == 0 {
		return Solution{}
	}
	var (
		out = Solution{Items: make([]Item, len(picked))}
		i   int
	)
	copy(out.Items, picked)
	for i = range picked {
		out.TotalWeight += picked[i].Weight
		out.TotalValue += picked[i].Value
	}

	return out
}

// Strategy selects the search algorithm used by Solve.
type Strategy int

const (
	// Exhaustive enumerates every combination sequentially.
	Exhaustive Strategy = iota

	// ExhaustiveThreaded runs one task per subset size on a bounded worker pool.
	ExhaustiveThreaded

	// ExhaustiveDataParallel runs a parallel-for over subset sizes.
	ExhaustiveDataParallel

	// RatioHeuristic picks items greedily by value/weight ratio.
	RatioHeuristic
)

// strategyNames maps each Strategy to its canonical CLI name.
var strategyNames = map[Strategy]string{
	Exhaustive:             "exhaustive",
	ExhaustiveThreaded:     "threaded",
	ExhaustiveDataParallel: "data-parallel",
	RatioHeuristic:         "ratio",
}

// Strategies lists every supported strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Exhaustive, ExhaustiveThreaded, ExhaustiveDataParallel, RatioHeuristic}
}

// String returns the canonical name of s.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// IsExhaustive reports whether s guarantees an optimal result.
func (s Strategy) IsExhaustive() bool {
	return s == Exhaustive || s == ExhaustiveThreaded || s == ExhaustiveDataParallel
}

// ParseStrategy resolves a canonical strategy name (see Strategy.String).
func ParseStrategy(name string) (Strategy, error) {
	var (
		s Strategy
		n string
	)
	for s, n = range strategyNames {
		if n == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrBadStrategyName, name)
}

// OverflowPolicy controls what RatioHeuristic does with an item that would
// push the cumulative weight over the limit.
type OverflowPolicy int

const (
	// SkipOverflow skips the item and keeps scanning lower-ratio items.
	SkipOverflow OverflowPolicy = iota

	// StopAtOverflow ends the scan at the first item that does not fit.
	StopAtOverflow
)

// String returns "skip" or "stop".
func (p OverflowPolicy) String() string {
	switch p {
	case SkipOverflow:
		return "skip"
	case StopAtOverflow:
		return "stop"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// Options configures Solve.
type Options struct {
	// Workers bounds concurrently running workers for the parallel
	// strategies. 0 means runtime.GOMAXPROCS(0).
	Workers int

	// Overflow is the RatioHeuristic policy for items that do not fit.
	Overflow OverflowPolicy

	// SizeBound limits the exhaustive strategies to subset sizes
	// 1..MaxSubsetSize. When false they enumerate 1..len(items).
	SizeBound bool
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithWorkers bounds the number of concurrent workers.
// Panics on n < 0; n == 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 0 {
		panic("knapsack: WithWorkers(n < 0)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithOverflowPolicy sets the RatioHeuristic overflow policy.
// Panics on an unknown policy.
func WithOverflowPolicy(p OverflowPolicy) Option {
	if p != SkipOverflow && p != StopAtOverflow {
		panic(fmt.Sprintf("knapsack: WithOverflowPolicy(%d)", int(p)))
	}
	return func(o *Options) {
		o.Overflow = p
	}
}

// WithoutSizeBound disables the prefix-sum subset size bound, forcing the
// exhaustive strategies to enumerate every subset size.
func WithoutSizeBound() Option {
	return func(o *Options) {
		o.SizeBound = false
	}
}

// DefaultOptions returns the options Solve starts from.
//
// Defaults:
//   - Workers:   0 (runtime.GOMAXPROCS(0)).
//   - Overflow:  SkipOverflow.
//   - SizeBound: true.
func DefaultOptions() Options {
	return Options{
		Workers:   0,
		Overflow:  SkipOverflow,
		SizeBound: true,
	}
}

// workers resolves the effective worker bound.
func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}
