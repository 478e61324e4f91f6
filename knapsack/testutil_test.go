// Package knapsack_test - shared fixtures and helpers for the knapsack tests.
package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpack/knapsack"
	"github.com/stretchr/testify/require"
)

// seedDet is the fixed seed used by every randomized test in this package.
const seedDet int64 = 42

// classicItems is the four-item fixture whose optimum at limit 5 is {2,3}+{3,4}.
func classicItems() []knapsack.Item {
	return []knapsack.Item{
		{Weight: 2, Value: 3},
		{Weight: 3, Value: 4},
		{Weight: 4, Value: 5},
		{Weight: 5, Value: 6},
	}
}

// greedyTrapItems makes RatioHeuristic strictly suboptimal at limit 10:
// the 1/2 item has the best ratio but blocks both 5/5 items (value 10).
func greedyTrapItems() []knapsack.Item {
	return []knapsack.Item{
		{Weight: 5, Value: 5},
		{Weight: 5, Value: 5},
		{Weight: 1, Value: 2},
	}
}

// randomItems draws n items with weight and value uniform in [1,100].
func randomItems(rng *rand.Rand, n int) []knapsack.Item {
	var (
		out = make([]knapsack.Item, n)
		i   int
	)
	for i = range out {
		out[i] = knapsack.Item{
			Weight: int64(rng.Intn(100) + 1),
			Value:  int64(rng.Intn(100) + 1),
		}
	}

	return out
}

// bruteForce is an independent reference: it scans all 2^n masks.
func bruteForce(items []knapsack.Item, limit int64) int64 {
	var (
		n    = len(items)
		best int64
		mask int
		i    int
	)
	for mask = 0; mask < 1<<n; mask++ {
		var w, v int64
		for i = 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += items[i].Weight
				v += items[i].Value
			}
		}
		if w <= limit && v > best {
			best = v
		}
	}

	return best
}

// requireConsistent checks that sol's totals match its items, that it fits,
// and that every picked item comes from the input multiset.
func requireConsistent(t *testing.T, items []knapsack.Item, limit int64, sol knapsack.Solution) {
	t.Helper()

	var w, v int64
	for _, it := range sol.Items {
		w += it.Weight
		v += it.Value
	}
	require.Equal(t, w, sol.TotalWeight, "TotalWeight must equal the sum of item weights")
	require.Equal(t, v, sol.TotalValue, "TotalValue must equal the sum of item values")
	require.LessOrEqual(t, sol.TotalWeight, limit, "solution must fit the weight limit")

	avail := make(map[knapsack.Item]int, len(items))
	for _, it := range items {
		avail[it]++
	}
	for _, it := range sol.Items {
		require.Positive(t, avail[it], "item %v picked more often than supplied", it)
		avail[it]--
	}
}

// solveOK runs Solve and fails the test on error.
func solveOK(t *testing.T, items []knapsack.Item, limit int64, s knapsack.Strategy, opts ...knapsack.Option) knapsack.Solution {
	t.Helper()

	sol, err := knapsack.Solve(items, limit, s, opts...)
	require.NoError(t, err, "Solve(%s)", s)
	requireConsistent(t, items, limit, sol)

	return sol
}
