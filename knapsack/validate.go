// Package knapsack - input validation and the subset size bound.
//
// Design principles:
//   - Side-effect free; no logging, no panics on user input.
//   - Validate reports every violation at once; valid is the allocation-free
//     predicate used on the Solve hot path.
package knapsack

import (
	"fmt"
	"math"
	"slices"

	"go.uber.org/multierr"
)

// Validate checks the Solve preconditions and returns every violation found,
// combined with multierr. Each item error wraps ErrNegativeWeight or
// ErrNegativeValue and names the item index; errors.Is works on the result.
//
// Solve itself never returns these errors: it answers invalid input with an
// empty Solution.
//
// Complexity: O(n).
func Validate(items []Item, weightLimit int64) error {
	var err error
	if weightLimit < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrNegativeLimit, weightLimit))
	}

	var (
		i            int
		it           Item
		sumW, sumV   int64
		overflowSeen bool
	)
	for i, it = range items {
		if it.Weight < 0 {
			err = multierr.Append(err, fmt.Errorf("item %d: %w: got %d", i, ErrNegativeWeight, it.Weight))
		}
		if it.Value < 0 {
			err = multierr.Append(err, fmt.Errorf("item %d: %w: got %d", i, ErrNegativeValue, it.Value))
		}
		if it.Weight < 0 || it.Value < 0 || overflowSeen {
			continue
		}
		if sumW > math.MaxInt64-it.Weight || sumV > math.MaxInt64-it.Value {
			err = multierr.Append(err, fmt.Errorf("item %d: %w", i, ErrOverflow))
			overflowSeen = true
			continue
		}
		sumW += it.Weight
		sumV += it.Value
	}

	return err
}

// valid is the boolean form of Validate.
func valid(items []Item, weightLimit int64) bool {
	if weightLimit < 0 {
		return false
	}
	var (
		i          int
		sumW, sumV int64
	)
	for i = range items {
		if items[i].Weight < 0 || items[i].Value < 0 {
			return false
		}
		if sumW > math.MaxInt64-items[i].Weight || sumV > math.MaxInt64-items[i].Value {
			return false
		}
		sumW += items[i].Weight
		sumV += items[i].Value
	}

	return true
}

// MaxSubsetSize returns k, the largest number of items whose lightest
// selection still fits within weightLimit: the weights are sorted ascending
// and summed while the running total stays ≤ weightLimit.
//
// No combination of more than k items can fit, because any k+1 items weigh at
// least as much as the k+1 lightest ones. Returns 0 for a negative limit.
// Items are assumed to satisfy Validate.
//
// Complexity: O(n log n) time, O(n) space.
func MaxSubsetSize(items []Item, weightLimit int64) int {
	if weightLimit < 0 || len(items) == 0 {
		return 0
	}
	var (
		weights = make([]int64, len(items))
		i       int
		sum     int64
		k       int
	)
	for i = range items {
		weights[i] = items[i].Weight
	}
	slices.Sort(weights)

	for i = range weights {
		if weights[i] > weightLimit-sum {
			break
		}
		sum += weights[i]
		k++
	}

	return k
}
