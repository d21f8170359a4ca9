package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the Prometheus collectors for one record schema.
type Metrics struct {
	schema     string
	Operations *prometheus.CounterVec
	Latency    *prometheus.HistogramVec
	Records    prometheus.Gauge
}

// New creates the collectors for schema and registers them on reg. Callers
// pass prometheus.DefaultRegisterer in main and a fresh registry in tests.
func New(reg prometheus.Registerer, schema string) *Metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"schema": schema}
	return &Metrics{
		schema: schema,
		Operations: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "recordkeeper_record_operations_total",
			Help:        "Record operations, labeled by operation and outcome",
			ConstLabels: labels,
		}, []string{"op", "outcome"}),
		Latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "recordkeeper_record_operation_seconds",
			Help:        "Latency of record operations in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"op"}),
		Records: f.NewGauge(prometheus.GaugeOpts{
			Name:        "recordkeeper_records_created_minus_removed",
			Help:        "Records created minus records removed since start",
			ConstLabels: labels,
		}),
	}
}

// Observe records one finished operation.
func (m *Metrics) Observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.Operations.WithLabelValues(op, outcome).Inc()
	m.Latency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementRecords() {
	if m != nil {
		m.Records.Inc()
	}
}

func (m *Metrics) DecrementRecords() {
	if m != nil {
		m.Records.Dec()
	}
}
