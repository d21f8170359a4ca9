package events

import (
	"context"
	"log/slog"

	id "recordkeeper/pkg/domain"
	"recordkeeper/pkg/requestcontext"
)

// EventPublisher is what services depend on; *Publisher satisfies it.
type EventPublisher interface {
	Emit(ctx context.Context, event Event) error
}

// Emitter logs an audit line and publishes the event for one schema. Either
// the logger or the publisher may be nil. Publish failures are logged and
// never fail the call that produced the event.
type Emitter struct {
	schema    string
	logger    *slog.Logger
	publisher EventPublisher
}

func NewEmitter(schema string, logger *slog.Logger, publisher EventPublisher) *Emitter {
	return &Emitter{schema: schema, logger: logger, publisher: publisher}
}

func (e *Emitter) Emit(ctx context.Context, kind Kind, acct id.AccountID, payload any) {
	event := Event{
		Timestamp: requestcontext.Now(ctx),
		Schema:    e.schema,
		Kind:      kind,
		AccountID: acct.String(),
		RequestID: requestcontext.RequestID(ctx),
		Payload:   payload,
	}

	if e.logger != nil {
		e.logger.InfoContext(ctx, event.Name(),
			"event", event.Name(),
			"log_type", "audit",
			"account_id", event.AccountID,
			"request_id", event.RequestID,
		)
	}
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Emit(ctx, event); err != nil && e.logger != nil {
		e.logger.ErrorContext(ctx, "failed to emit record event",
			"event", event.Name(),
			"error", err,
		)
	}
}
