package events

import (
	"context"
	"log/slog"
	"sync"
)

// LogSink writes each event as a structured audit line.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Append(ctx context.Context, event Event) error {
	args := []any{
		"event", event.Name(),
		"log_type", "audit",
		"schema", event.Schema,
		"account_id", event.AccountID,
		"request_id", event.RequestID,
		"at", event.Timestamp,
	}
	if event.Payload != nil {
		args = append(args, "payload", event.Payload)
	}
	s.logger.InfoContext(ctx, string(event.Kind), args...)
	return nil
}

// Recorder keeps events in memory, in emission order.
type Recorder struct {
	mu     sync.RWMutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Append(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// All returns a copy of every recorded event.
func (r *Recorder) All() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// ForAccount returns the events recorded for one account.
func (r *Recorder) ForAccount(accountID string) []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Event
	for _, e := range r.events {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	return out
}

// Fanout appends to every sink, returning the first error after trying all.
type Fanout []Sink

func (f Fanout) Append(ctx context.Context, event Event) error {
	var first error
	for _, s := range f {
		if err := s.Append(ctx, event); err != nil && first == nil {
			first = err
		}
	}
	return first
}
