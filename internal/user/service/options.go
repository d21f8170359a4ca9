package service

import (
	"log/slog"

	"recordkeeper/internal/events"
	"recordkeeper/internal/platform/metrics"
	"recordkeeper/internal/platform/tracer"
	"recordkeeper/internal/platform/txn"
)

// serviceConfig holds optional dependencies for the service.
type serviceConfig struct {
	logger    *slog.Logger
	publisher events.EventPublisher
	metrics   *metrics.Metrics
	tracer    tracer.Tracer
	tx        txn.Serializer
}

// Option configures a service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithEventPublisher(publisher events.EventPublisher) Option {
	return func(c *serviceConfig) {
		c.publisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = t
	}
}

// WithSerializer shares a serializer with other record services. Without
// it the service serializes only its own calls.
func WithSerializer(tx txn.Serializer) Option {
	return func(c *serviceConfig) {
		c.tx = tx
	}
}
