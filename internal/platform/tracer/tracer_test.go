package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNoopTracerReturnsSameContext(t *testing.T) {
	ctx := context.Background()
	got, span := NewNoop().Start(ctx, "user.create", String(AttrSchema, "user"))
	assert.Equal(t, ctx, got)
	assert.NotPanics(t, func() {
		span.AddEvent(EventCommitted)
		span.End(errors.New("boom"))
	})
}

func TestOTelTracerWithInjectedProvider(t *testing.T) {
	tr := NewOTel("recordkeeper/test", WithOTelTracer(noop.NewTracerProvider().Tracer("t")))
	_, span := tr.Start(context.Background(), "profile.update",
		String(AttrSchema, "profile"),
		Int64("n", 3),
		Attribute{Key: AttrFields, Value: []string{"fname", "birth_date"}},
	)
	assert.NotPanics(t, func() {
		span.SetAttributes(Bool("ok", true))
		span.End(nil)
	})
}

func TestToOTelAttributesSkipsUnsupported(t *testing.T) {
	got := toOTelAttributes([]Attribute{String("a", "b"), {Key: "c", Value: struct{}{}}})
	assert.Len(t, got, 1)
	assert.Nil(t, toOTelAttributes(nil))
}
