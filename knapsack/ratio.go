package knapsack

import (
	"cmp"
	"math"
	"slices"
)

// rankedItem pairs an item with its value/weight ratio.
type rankedItem struct {
	item  Item
	ratio float64
}

// ratioOf returns value/weight. A weightless item ranks first when it has
// value and last when it has none.
func ratioOf(it Item) float64 {
	if it.Weight == 0 {
		if it.Value > 0 {
			return math.Inf(1)
		}
		return 0
	}

	return float64(it.Value) / float64(it.Weight)
}

// solveRatio is the RatioHeuristic strategy.
//
// Algorithm:
//  1. Rank items by value/weight, descending; equal ratios keep input order.
//  2. Walk the ranking, accepting each item whose weight still fits.
//  3. An item that does not fit is skipped (SkipOverflow) or ends the walk
//     (StopAtOverflow).
//
// The result is feasible but not necessarily optimal.
//
// Complexity: O(n log n) time, O(n) space.
func solveRatio(items []Item, limit int64, policy OverflowPolicy) Solution {
	var (
		ranked = make([]rankedItem, len(items))
		picked = make([]Item, 0, len(items))
		used   int64
		i      int
	)
	for i = range items {
		ranked[i] = rankedItem{item: items[i], ratio: ratioOf(items[i])}
	}
	slices.SortStableFunc(ranked, func(a, b rankedItem) int {
		return cmp.Compare(b.ratio, a.ratio)
	})

	for i = range ranked {
		if ranked[i].item.Weight > limit-used {
			if policy == StopAtOverflow {
				break
			}
			continue
		}
		used += ranked[i].item.Weight
		picked = append(picked, ranked[i].item)
	}

	return newSolution(picked)
}
