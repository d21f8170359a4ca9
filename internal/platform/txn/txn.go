// Package txn serializes state-changing calls across every record schema.
package txn

import (
	"context"
	"sync"

	dErrors "recordkeeper/pkg/domain-errors"
)

// Serializer provides the boundary every mutation runs inside.
// Implementations may wrap a database transaction or an in-memory lock.
type Serializer interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Mutex runs one call at a time, process-wide. Share a single instance
// between services so calls on different schemas never interleave.
type Mutex struct {
	mu sync.Mutex
}

// NewMutex returns an unlocked serializer.
func NewMutex() *Mutex {
	return &Mutex{}
}

// RunInTx waits for the lock without a deadline. A context that is already
// done when the lock is taken aborts the call before fn runs.
func (t *Mutex) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "call aborted: context cancelled")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "call aborted: context cancelled")
	}

	return fn(ctx)
}
