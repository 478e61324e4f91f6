package itemgen

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvpack/knapsack"
)

// ErrNegativeCount is returned when Random is asked for fewer than zero items.
var ErrNegativeCount = errors.New("itemgen: item count must be non-negative")

// Random returns n items whose weights and values are drawn uniformly from
// the configured inclusive ranges.
//
// Complexity: O(n).
func Random(n int, opts ...Option) ([]knapsack.Item, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	var (
		c   = newConfig(opts...)
		out = make([]knapsack.Item, n)
		i   int
	)
	for i = range out {
		out[i] = knapsack.Item{
			Weight: between(c.rng, c.minWeight, c.maxWeight),
			Value:  between(c.rng, c.minValue, c.maxValue),
		}
	}

	return out, nil
}

// between draws from [lo, hi]; lo ≤ hi is guaranteed by the options.
func between(r *rand.Rand, lo, hi int64) int64 {
	if lo == hi {
		return lo
	}
	if hi-lo == math.MaxInt64 {
		return lo + r.Int63()
	}

	return lo + r.Int63n(hi-lo+1)
}
