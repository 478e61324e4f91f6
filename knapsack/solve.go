// Package knapsack - unified dispatcher for the knapsack strategies.
//
// Solve is the single entry point. It applies the functional options, rejects
// unknown strategies, answers invalid or trivial input with an empty
// Solution, computes the subset size bound, and routes to the strategy.
package knapsack

// Solve returns the subset of items with the highest total value whose total
// weight does not exceed weightLimit, using the given strategy.
//
// Contracts:
//   - items is not modified; the returned Solution holds copies.
//   - An empty item set, a limit below every item's weight, or input that
//     fails Validate yields an empty Solution and a nil error.
//   - Exhaustive strategies return an optimal value. On ties, Exhaustive is
//     deterministic; the parallel strategies may return any of the tied
//     combinations.
//   - RatioHeuristic returns a feasible, possibly suboptimal Solution.
//
// Errors:
//   - ErrUnsupportedStrategy for a Strategy outside the declared set.
//   - ErrWorkerPanic when a parallel worker terminated abnormally.
//
// Complexity: see each strategy in doc.go.
func Solve(items []Item, weightLimit int64, strategy Strategy, opts ...Option) (Solution, error) {
	var (
		cfg = DefaultOptions()
		opt Option
	)
	for _, opt = range opts {
		opt(&cfg)
	}

	switch strategy {
	case Exhaustive, ExhaustiveThreaded, ExhaustiveDataParallel, RatioHeuristic:
		// ok
	default:
		return Solution{}, ErrUnsupportedStrategy
	}

	if len(items) == 0 || !valid(items, weightLimit) {
		return Solution{}, nil
	}

	if strategy == RatioHeuristic {
		return solveRatio(items, weightLimit, cfg.Overflow), nil
	}

	k := len(items)
	if cfg.SizeBound {
		k = MaxSubsetSize(items, weightLimit)
	}
	if k == 0 {
		return Solution{}, nil
	}

	switch strategy {
	case ExhaustiveThreaded:
		return solveThreaded(items, weightLimit, k, cfg.workers())
	case ExhaustiveDataParallel:
		return solveDataParallel(items, weightLimit, k, cfg.workers())
	default:
		return solveExhaustive(items, weightLimit, k), nil
	}
}
