package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Transaction = (*transactionMetrics)(nil)

type transactionMetrics struct {
	duration *prometheus.HistogramVec
	retries  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func newTransactionMetrics(r *promRegistry) *transactionMetrics {
	return &transactionMetrics{
		duration: r.histogramVec(
			"db_transaction_duration_seconds",
			"Duration of database transactions in seconds",
			[]float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
			"operation",
		),
		retries: r.counterVec(
			"db_transaction_retries_total",
			"Total number of transaction retries",
			"operation",
		),
		failures: r.counterVec(
			"db_transaction_failures_total",
			"Total number of failed transactions",
			"operation",
		),
	}
}

func (m *transactionMetrics) ObserveDuration(operation string, duration time.Duration) {
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *transactionMetrics) IncrementRetries(operation string) {
	m.retries.WithLabelValues(operation).Inc()
}

func (m *transactionMetrics) IncrementFailures(operation string) {
	m.failures.WithLabelValues(operation).Inc()
}
