package report

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/lvpack/knapsack"
)

// Run is the outcome of one strategy on one Instance.
type Run struct {
	Strategy knapsack.Strategy
	Solution knapsack.Solution
	Elapsed  time.Duration
}

// Bound summarizes the exhaustive search space of an Instance.
type Bound struct {
	MaxSubsetSize int
	Combinations  uint64
}

// SearchBound computes the subset size bound and the number of candidate
// subsets an exhaustive strategy evaluates for inst.
func SearchBound(inst Instance) Bound {
	k := knapsack.MaxSubsetSize(inst.Items, inst.WeightLimit)

	return Bound{
		MaxSubsetSize: k,
		Combinations:  knapsack.CombinationCount(len(inst.Items), k),
	}
}

// Compare runs every strategy on inst in order and times each call.
// The first Solve error stops the comparison and is returned with the runs
// completed so far.
func Compare(logger *slog.Logger, inst Instance, strategies []knapsack.Strategy, opts ...knapsack.Option) ([]Run, error) {
	if err := knapsack.Validate(inst.Items, inst.WeightLimit); err != nil {
		logger.Warn("invalid input, solvers will return empty solutions", "error", err)
	}

	bound := SearchBound(inst)
	logger.Info("search bound",
		"items", len(inst.Items),
		"weight_limit", inst.WeightLimit,
		"max_subset_size", bound.MaxSubsetSize,
		"combinations", bound.Combinations,
	)

	runs := make([]Run, 0, len(strategies))
	for _, s := range strategies {
		start := time.Now()
		sol, err := knapsack.Solve(inst.Items, inst.WeightLimit, s, opts...)
		elapsed := time.Since(start)
		if err != nil {
			logger.Error("solve failed", "strategy", s.String(), "error", err)
			return runs, err
		}
		logger.Debug("solve finished",
			"strategy", s.String(),
			"value", sol.TotalValue,
			"weight", sol.TotalWeight,
			"elapsed", elapsed,
		)
		runs = append(runs, Run{Strategy: s, Solution: sol, Elapsed: elapsed})
	}

	return runs, nil
}
