// Package requestcontext carries request-scoped values (request ID, the
// authenticated account, the request clock) through context.Context.
package requestcontext

import (
	"context"
	"time"

	id "recordkeeper/pkg/domain"
)

type (
	requestIDKey struct{}
	accountIDKey struct{}
	timeKey      struct{}
)

// WithRequestID stores the correlation ID for the current request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the correlation ID, or "" outside a request.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// WithAccountID stores the authenticated caller.
func WithAccountID(ctx context.Context, acct id.AccountID) context.Context {
	return context.WithValue(ctx, accountIDKey{}, acct)
}

// AccountID returns the authenticated caller. ok is false when the request
// never passed the auth middleware.
func AccountID(ctx context.Context) (id.AccountID, bool) {
	v, ok := ctx.Value(accountIDKey{}).(id.AccountID)
	if !ok || v.IsNil() {
		return id.AccountID{}, false
	}
	return v, true
}

// WithTime pins "now" for everything downstream of ctx.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, timeKey{}, t)
}

// Now returns the request-scoped time, falling back to time.Now() for
// contexts that never went through the HTTP middleware (tests, CLI).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(timeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}
