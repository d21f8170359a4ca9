// Package events carries the notifications record services emit after a
// committed mutation or a projection read.
package events

import (
	"context"
	"time"
)

// Kind names what happened to a record.
type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
	KindRemoved Kind = "removed"
	KindFetched Kind = "fetched"
)

// Event is emitted from services. Keep it transport-agnostic so sinks can
// fan out. Payload is the decoded projection for fetched events and nil
// otherwise.
type Event struct {
	Timestamp time.Time
	Schema    string
	Kind      Kind
	AccountID string
	RequestID string
	Payload   any
}

// Name is the event name used in logs, e.g. "user_created".
func (e Event) Name() string {
	return e.Schema + "_" + string(e.Kind)
}

// Sink persists or forwards events.
type Sink interface {
	Append(ctx context.Context, event Event) error
}
