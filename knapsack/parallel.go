// Package knapsack - parallel execution of the exhaustive search.
//
// Both parallel strategies split the search by subset size and run
// searchSize for each size concurrently against one incumbent:
//
//   - ExhaustiveThreaded submits one task per size to a conc pool capped at
//     Options.Workers goroutines.
//   - ExhaustiveDataParallel drives a conc iter.ForEach over the sizes; idle
//     goroutines pull the next unclaimed size from a shared counter.
//
// Every task runs under a panics.Catcher. After all tasks have been joined a
// recovered panic is reported as ErrWorkerPanic and the incumbent discarded.
package knapsack

import (
	"fmt"

	"github.com/sourcegraph/conc/iter"
	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"
)

// runPool executes task(size) for every size on a pool of at most workers
// goroutines and waits for all of them.
func runPool(sizes []int, workers int, task func(size int)) error {
	var (
		pc panics.Catcher
		p  = pool.New().WithMaxGoroutines(workers)
	)
	for _, size := range sizes {
		p.Go(func() {
			pc.Try(func() { task(size) })
		})
	}
	p.Wait()

	return recoveredErr(&pc)
}

// runParallelFor executes task(size) for every size through a parallel-for
// with at most workers goroutines and waits for all of them.
func runParallelFor(sizes []int, workers int, task func(size int)) error {
	var (
		pc panics.Catcher
		it = iter.Iterator[int]{MaxGoroutines: workers}
	)
	it.ForEach(sizes, func(size *int) {
		pc.Try(func() { task(*size) })
	})

	return recoveredErr(&pc)
}

// recoveredErr converts the first recovered panic, if any, into ErrWorkerPanic.
func recoveredErr(pc *panics.Catcher) error {
	if rec := pc.Recovered(); rec != nil {
		return fmt.Errorf("%w: %w", ErrWorkerPanic, rec.AsError())
	}

	return nil
}

// solveThreaded is the ExhaustiveThreaded strategy.
func solveThreaded(items []Item, limit int64, k int, workers int) (Solution, error) {
	var best incumbent
	err := runPool(subsetSizes(k), workers, func(size int) {
		searchSize(items, limit, size, &best)
	})
	if err != nil {
		return Solution{}, err
	}

	return best.solution(items), nil
}

// solveDataParallel is the ExhaustiveDataParallel strategy.
func solveDataParallel(items []Item, limit int64, k int, workers int) (Solution, error) {
	var best incumbent
	err := runParallelFor(subsetSizes(k), workers, func(size int) {
		searchSize(items, limit, size, &best)
	})
	if err != nil {
		return Solution{}, err
	}

	return best.solution(items), nil
}
