package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "factoryops"

// OperationMetrics records duration and outcome per application operation.
// The zero value and a nil pointer are both no-ops.
type OperationMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

func NewOperationMetrics(reg prometheus.Registerer) *OperationMetrics {
	if reg == nil {
		return &OperationMetrics{}
	}
	m := &OperationMetrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of application operations in seconds.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"operation"}),
		success: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_success_total",
			Help:      "Successful application operations.",
		}, []string{"operation"}),
		failure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failure_total",
			Help:      "Failed application operations by error code.",
		}, []string{"operation", "code"}),
	}
	reg.MustRegister(m.duration, m.success, m.failure)
	return m
}

// Record observes the duration and counts the outcome. An empty code is a success.
func (m *OperationMetrics) Record(op string, elapsed time.Duration, code string) {
	if m == nil || m.duration == nil {
		return
	}
	op = labelOrUnknown(op)
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
	if code == "" {
		m.success.WithLabelValues(op).Inc()
		return
	}
	m.failure.WithLabelValues(op, code).Inc()
}

func labelOrUnknown(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
