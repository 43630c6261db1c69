package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ DLQ = (*dlqMetrics)(nil)

type dlqMetrics struct {
	messagesSent *prometheus.CounterVec
	retryCount   *prometheus.HistogramVec
	errors       *prometheus.CounterVec
}

func newDLQMetrics(r *promRegistry) *dlqMetrics {
	return &dlqMetrics{
		messagesSent: r.counterVec(
			"dlq_messages_sent_total",
			"Total number of messages sent to the dead letter queue",
			"dlq_topic", "original_topic",
		),
		retryCount: r.histogramVec(
			"dlq_retry_count",
			"Distribution of retry counts before a message was dead-lettered",
			[]float64{0, 1, 2, 3, 4, 5, 6, 8, 10, 15, 20},
			"original_topic",
		),
		errors: r.counterVec(
			"dlq_errors_total",
			"Total number of dead letter queue failures",
			"dlq_topic", "reason",
		),
	}
}

func (m *dlqMetrics) DLSent(dlqTopic string, originalTopic string, retryCount int) {
	m.messagesSent.WithLabelValues(dlqTopic, originalTopic).Inc()
	m.DLRetryCount(originalTopic, retryCount)
}

func (m *dlqMetrics) DLRetryCount(originalTopic string, retryCount int) {
	m.retryCount.WithLabelValues(originalTopic).Observe(float64(retryCount))
}

func (m *dlqMetrics) DLError(dlqTopic string, reason string) {
	m.errors.WithLabelValues(dlqTopic, reason).Inc()
}
