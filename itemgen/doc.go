// Package itemgen generates random knapsack item sets.
//
// Random draws weight and value independently and uniformly from inclusive
// ranges, by default [1,100] for both. Generation is deterministic: without
// WithSeed or WithRand a fixed default seed is used, so the same call always
// yields the same items.
//
// Usage:
//
//	items, err := itemgen.Random(20, itemgen.WithSeed(7))
//	if err != nil {
//	    // ErrNegativeCount
//	}
//	sol, _ := knapsack.Solve(items, 100, knapsack.ExhaustiveDataParallel)
//
// math/rand.Rand is not goroutine-safe; do not share one passed through
// WithRand across concurrent Random calls.
package itemgen
