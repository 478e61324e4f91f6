// Package lvpack is a small toolbox for the 0/1 knapsack problem: choose
// the subset of items with the highest total value whose total weight stays
// within a limit.
//
// What is inside?
//
//	knapsack/     Solve with four interchangeable strategies: Exhaustive,
//	               ExhaustiveThreaded, ExhaustiveDataParallel (all optimal)
//	               and RatioHeuristic (greedy, approximate)
//	itemgen/      seeded random item generation for experiments and tests
//	cmd/lvpack/   CLI: solve random or YAML instances, compare strategies
//	examples/     runnable scenarios (cargo loading, sprint planning)
//
// Why lvpack?
//
//   - Exact search pruned by a provable subset-size bound
//   - Parallel variants on a bounded worker pool; worker panics become errors
//   - No panics on user input: invalid instances yield an empty Solution
//
// Quick example:
//
//	items := []knapsack.Item{{Weight: 2, Value: 3}, {Weight: 3, Value: 4}}
//	sol, err := knapsack.Solve(items, 5, knapsack.Exhaustive)
//	// sol.TotalValue == 7, sol.TotalWeight == 5
//
//	go install github.com/katalvlaran/lvpack/cmd/lvpack@latest
package lvpack
