package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Validation = (*validationMetrics)(nil)

type validationMetrics struct {
	records    *prometheus.CounterVec
	violations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newValidationMetrics(r *promRegistry) *validationMetrics {
	return &validationMetrics{
		records: r.counterVec(
			"validation_records_total",
			"Total number of validated records by kind, source and outcome",
			"kind", "source", "outcome",
		),
		violations: r.counterVec(
			"validation_violations_total",
			"Total number of reported violations by kind, shape and severity",
			"kind", "shape", "severity",
		),
		duration: r.histogramVec(
			"validation_duration_seconds",
			"Time spent validating and recording one request",
			[]float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
			"kind",
		),
	}
}

func (m *validationMetrics) Record(kind, source, outcome string) {
	m.records.WithLabelValues(kind, source, outcome).Inc()
}

func (m *validationMetrics) Violation(kind, shape, severity string) {
	m.violations.WithLabelValues(kind, shape, severity).Inc()
}

func (m *validationMetrics) ObserveDuration(kind string, duration time.Duration) {
	m.duration.WithLabelValues(kind).Observe(duration.Seconds())
}
