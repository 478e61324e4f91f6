package knapsack

import (
	"math"
	"math/bits"
)

// forEachCombination visits every r-element subset of {0, …, n−1} as an
// ascending index slice, in lexicographic order. visit must not retain idx;
// the slice is reused between calls.
//
// Nothing is visited when r ≤ 0 or r > n.
//
// Complexity: O(C(n,r)) visits, O(r) amortized work between visits, O(r) space.
func forEachCombination(n, r int, visit func(idx []int)) {
	if r <= 0 || r > n {
		return
	}
	var (
		idx = make([]int, r)
		i   int
		j   int
	)
	for i = range idx {
		idx[i] = i
	}

	for {
		visit(idx)

		// Rightmost position that can still move forward.
		for i = r - 1; i >= 0 && idx[i] == i+n-r; i-- {
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j = i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// CombinationCount returns Σ C(n,i) for i = 1..k, the number of candidate
// subsets an exhaustive search over n items with size bound k evaluates.
// k is clamped to [0, n]. The result saturates at math.MaxUint64.
//
// Complexity: O(k).
func CombinationCount(n, k int) uint64 {
	if n <= 0 || k <= 0 {
		return 0
	}
	if k > n {
		k = n
	}
	var (
		c     uint64 = 1 // C(n, i-1)
		total uint64
		i     int
		hi    uint64
		lo    uint64
		carry uint64
	)
	for i = 1; i <= k; i++ {
		// C(n,i) = C(n,i-1)·(n−i+1)/i, the division is exact.
		hi, lo = bits.Mul64(c, uint64(n-i+1))
		if hi >= uint64(i) {
			return math.MaxUint64
		}
		c, _ = bits.Div64(hi, lo, uint64(i))

		total, carry = bits.Add64(total, c, 0)
		if carry != 0 {
			return math.MaxUint64
		}
	}

	return total
}
