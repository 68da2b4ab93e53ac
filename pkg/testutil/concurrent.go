package testutil

import (
	"errors"
	"sync"
	"sync/atomic"

	"contactcentre/pkg/platform/sentinel"
)

// ConcurrentResult tallies the outcomes of RunConcurrent.
type ConcurrentResult struct {
	Successes   int32
	Errors      int32
	Contentions int32
	NotFounds   int32
}

// Total returns the total number of operations executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Errors + r.Contentions + r.NotFounds
}

// RunConcurrent runs fn on goroutines goroutines at once and sorts each outcome
// into success, write contention, not found, or any other error.
func RunConcurrent(goroutines int, fn func(idx int) error) *ConcurrentResult {
	var wg sync.WaitGroup
	var successes, errs, contentions, notFounds atomic.Int32
	start := make(chan struct{})

	for i := range goroutines {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			<-start
			err := fn(idx)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, sentinel.ErrContention):
				contentions.Add(1)
			case errors.Is(err, sentinel.ErrNotFound):
				notFounds.Add(1)
			default:
				errs.Add(1)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	return &ConcurrentResult{
		Successes:   successes.Load(),
		Errors:      errs.Load(),
		Contentions: contentions.Load(),
		NotFounds:   notFounds.Load(),
	}
}
