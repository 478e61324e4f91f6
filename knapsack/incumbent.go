package knapsack

import "sync"

// incumbent is the best feasible combination found so far during one Solve
// call. All reads and read-compare-write updates happen under mu, so workers
// never observe a value paired with another combination's indices.
type incumbent struct {
	mu     sync.Mutex
	value  int64
	weight int64
	idx    []int
}

// floor returns the current best value.
func (b *incumbent) floor() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.value
}

// offer replaces the incumbent when value is strictly greater than the
// current best; ties keep the earlier combination. The caller guarantees
// weight ≤ limit. offer copies idx and returns the best value after the call.
func (b *incumbent) offer(value, weight int64, idx []int) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if value > b.value {
		b.value = value
		b.weight = weight
		b.idx = append(b.idx[:0], idx...)
	}

	return b.value
}

// solution materializes the incumbent against items.
func (b *incumbent) solution(items []Item) Solution {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.idx) == 0 {
		return Solution{}
	}
	var (
		out = Solution{
			Items:       make([]Item, len(b.idx)),
			TotalWeight: b.weight,
			TotalValue:  b.value,
		}
		i int
	)
	for i = range b.idx {
		out.Items[i] = items[b.idx[i]]
	}

	return out
}
