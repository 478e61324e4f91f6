// Package knapsack provides 0/1 knapsack solvers.
//
// Given a collection of items, each with a weight and a value, and a weight
// limit, Solve returns the subset with the highest total value whose total
// weight does not exceed the limit. Four strategies share one entry point:
//
//   - Exhaustive: sequential enumeration of every combination up to the
//     size bound k (see MaxSubsetSize). O(Σ C(n,i)·i) for i = 1..k time,
//     O(n) memory.
//   - ExhaustiveThreaded: one task per subset size, executed on a bounded
//     worker pool; tasks share a mutex-protected incumbent.
//   - ExhaustiveDataParallel: the same search driven by a parallel-for
//     over the subset sizes.
//   - RatioHeuristic: greedy by value/weight ratio. Not optimal.
//     O(n log n) time.
//
// Size bound:
//
//	Sorting weights ascending and summing them, k is the longest prefix whose
//	total stays within the limit. Any subset of k+1 items weighs at least as
//	much as the k+1 lightest items, so no subset larger than k can fit.
//
// Inputs that violate the preconditions (negative limit, negative weight or
// value, totals that overflow int64) never make Solve fail or panic: the
// result is an empty Solution. Use Validate to learn why.
//
// Exhaustive strategies are practical for a few dozen items at most.
//
// Usage:
//
//	items := []knapsack.Item{{Weight: 2, Value: 3}, {Weight: 3, Value: 4}}
//	sol, err := knapsack.Solve(items, 5, knapsack.ExhaustiveDataParallel,
//	    knapsack.WithWorkers(4))
//	if err != nil {
//	    // ErrUnsupportedStrategy or ErrWorkerPanic
//	}
//	fmt.Println(sol.TotalValue)
package knapsack
