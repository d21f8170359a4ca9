package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	dErrors "recordkeeper/pkg/domain-errors"
)

// ConcurrentResult counts outcomes of concurrent calls by domain error code.
type ConcurrentResult struct {
	Successes int32
	Errors    int32
	Conflicts int32
	NotFounds int32
}

// Total returns the total number of calls executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Errors + r.Conflicts + r.NotFounds
}

func (r *ConcurrentResult) record(err error) {
	switch {
	case err == nil:
		atomic.AddInt32(&r.Successes, 1)
	case dErrors.HasCode(err, dErrors.CodeConflict):
		atomic.AddInt32(&r.Conflicts, 1)
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		atomic.AddInt32(&r.NotFounds, 1)
	default:
		atomic.AddInt32(&r.Errors, 1)
	}
}

// RunConcurrent starts fn in n goroutines at once and waits for all of them.
// Goroutines block on a shared gate so the calls genuinely overlap.
func RunConcurrent(n int, fn func(idx int) error) *ConcurrentResult {
	var (
		wg     sync.WaitGroup
		result ConcurrentResult
		gate   = make(chan struct{})
	)
	for i := range n {
		wg.Go(func() {
			<-gate
			result.record(fn(i))
		})
	}
	close(gate)
	wg.Wait()
	return &result
}

// RunConcurrentCtx is RunConcurrent with a shared context.
func RunConcurrentCtx(ctx context.Context, n int, fn func(ctx context.Context, idx int) error) *ConcurrentResult {
	return RunConcurrent(n, func(idx int) error {
		return fn(ctx, idx)
	})
}
