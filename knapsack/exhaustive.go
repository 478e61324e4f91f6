// Package knapsack - exhaustive search shared by all exhaustive strategies.
//
// searchSize is the unit of work: it enumerates every combination of one
// subset size and offers each feasible improvement to the shared incumbent.
// The sequential strategy calls it for sizes 1..k in order; the parallel
// strategies hand the sizes to a pool (see parallel.go).
package knapsack

// searchSize enumerates all size-r combinations of items and offers every
// combination that fits within limit and beats the known best value.
//
// A local copy of the best value skips offers that cannot win; the incumbent
// only ever grows, so the local copy is never above the shared one.
//
// Complexity: O(C(n,r)·r).
func searchSize(items []Item, limit int64, r int, best *incumbent) {
	var known = best.floor()

	forEachCombination(len(items), r, func(idx []int) {
		var (
			w, v int64
			j    int
		)
		for _, j = range idx {
			w += items[j].Weight
			if w > limit {
				return
			}
			v += items[j].Value
		}
		if v <= known {
			return
		}
		known = best.offer(v, w, idx)
	})
}

// subsetSizes returns [1, 2, …, k].
func subsetSizes(k int) []int {
	if k <= 0 {
		return nil
	}
	var (
		out = make([]int, k)
		i   int
	)
	for i = range out {
		out[i] = i + 1
	}

	return out
}

// solveExhaustive runs searchSize for every size in 1..k on the calling
// goroutine. Ties resolve to the first combination in (size, lexicographic)
// order, so repeated calls return identical solutions.
func solveExhaustive(items []Item, limit int64, k int) Solution {
	var (
		best incumbent
		r    int
	)
	for r = 1; r <= k; r++ {
		searchSize(items, limit, r, &best)
	}

	return best.solution(items)
}
