package metric

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Kafka = (*kafkaMetrics)(nil)

type kafkaMetrics struct {
	messagesProcessed *prometheus.CounterVec
	messagesFailed    *prometheus.CounterVec
	messagesPublished *prometheus.CounterVec
	consumerGroupLag  *prometheus.GaugeVec
}

func newKafkaMetrics(r *promRegistry) *kafkaMetrics {
	return &kafkaMetrics{
		messagesProcessed: r.counterVec(
			"kafka_messages_processed_total",
			"Total number of processed Kafka messages",
			"topic", "partition",
		),
		messagesFailed: r.counterVec(
			"kafka_messages_failed_total",
			"Total number of Kafka messages that could not be processed",
			"topic", "partition", "reason",
		),
		messagesPublished: r.counterVec(
			"kafka_messages_published_total",
			"Total number of messages published to Kafka",
			"topic",
		),
		consumerGroupLag: r.gaugeVec(
			"kafka_consumer_group_lag",
			"Consumer group lag reported by the reader",
			"topic",
		),
	}
}

func (m *kafkaMetrics) MessageProcessed(topic string, partition int) {
	m.messagesProcessed.WithLabelValues(topic, partitionLabel(partition)).Inc()
}

func (m *kafkaMetrics) MessageFailed(topic string, partition int, reason string) {
	m.messagesFailed.WithLabelValues(topic, partitionLabel(partition), reason).Inc()
}

func (m *kafkaMetrics) MessagePublished(topic string) {
	m.messagesPublished.WithLabelValues(topic).Inc()
}

func (m *kafkaMetrics) ConsumerGroupLag(topic string, lag int64) {
	m.consumerGroupLag.WithLabelValues(topic).Set(float64(lag))
}

func partitionLabel(partition int) string {
	if partition < 0 {
		return "all"
	}
	return strconv.Itoa(partition)
}
