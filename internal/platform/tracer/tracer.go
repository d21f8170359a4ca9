// Package tracer wraps span creation for record services so they can emit
// traces without calling OpenTelemetry APIs directly.
//
// Implementations:
//   - NoopTracer: tests and callers that do not trace
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import "context"

// Span is an active trace span. End must be called exactly once.
type Span interface {
	// End completes the span and marks it failed when err is non-nil.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Attribute keys shared by record services.
const (
	AttrSchema    = "record.schema"
	AttrAccountID = "record.account_id"
	AttrFields    = "record.fields_changed"
)

// Span event names.
const (
	EventCommitted = "record.committed"
)
