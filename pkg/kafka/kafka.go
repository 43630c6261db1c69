package kafka

import (
	"context"
	"fmt"
	"time"

	"freightqa/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/zeebo/xxh3"
)

// FingerprintHeader carries the xxh3-128 digest of a message value.
const FingerprintHeader = "x-record-fingerprint"

const _dialTimeout = 5 * time.Second

type (
	ReaderConfig struct {
		Brokers        []string
		Topic          string
		GroupID        string
		MinBytes       int
		MaxBytes       int
		MaxWait        time.Duration
		CommitInterval time.Duration
	}

	WriterConfig struct {
		Brokers      []string
		Topic        string
		BatchSize    int
		BatchTimeout time.Duration
		WriteTimeout time.Duration
		ReadTimeout  time.Duration
	}
)

// NewReader builds a consumer group reader after checking that every broker
// accepts connections.
func NewReader(ctx context.Context, cfg ReaderConfig, log logger.Logger) (*kafka.Reader, error) {
	const op = "kafka.NewReader"

	if err := CheckConnection(ctx, cfg.Brokers, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log = log.With("topic", cfg.Topic, "group_id", cfg.GroupID)

	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.GroupID,
		MinBytes:       cfg.MinBytes,
		MaxBytes:       cfg.MaxBytes,
		MaxWait:        cfg.MaxWait,
		CommitInterval: cfg.CommitInterval,
		Logger:         debugLogger(log, "kafka reader info"),
		ErrorLogger:    errorLogger(log, "kafka reader error"),
	}), nil
}

func NewWriter(cfg WriterConfig, log logger.Logger) *kafka.Writer {
	log = log.With("topic", cfg.Topic)

	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		Async:                  false,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchSize:              cfg.BatchSize,
		BatchTimeout:           cfg.BatchTimeout,
		WriteTimeout:           cfg.WriteTimeout,
		ReadTimeout:            cfg.ReadTimeout,
		Logger:                 debugLogger(log, "kafka writer info"),
		ErrorLogger:            errorLogger(log, "kafka writer error"),
	}
}

func CheckConnection(ctx context.Context, brokers []string, log logger.Logger) error {
	const op = "kafka.CheckConnection"

	dialer := &kafka.Dialer{Timeout: _dialTimeout}
	for _, broker := range brokers {
		conn, err := dialer.DialContext(ctx, "tcp", broker)
		if err != nil {
			return fmt.Errorf("%s: connect to %s: %w", op, broker, err)
		}

		if err = conn.Close(); err != nil {
			log.Warn("failed to close connection",
				"operation", op,
				"broker", broker,
				"error", err)
		}
	}
	return nil
}

// Fingerprint returns the hex xxh3-128 digest of value.
func Fingerprint(value []byte) string {
	h := xxh3.Hash128(value)
	return fmt.Sprintf("%016x%016x", h.Hi, h.Lo)
}

// Header returns the value of the first header named key.
func Header(msg kafka.Message, key string) (string, bool) {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value), true
		}
	}
	return "", false
}

func debugLogger(log logger.Logger, msg string) kafka.LoggerFunc {
	return func(format string, args ...any) {
		log.LogAttrs(context.Background(), logger.DebugLevel, msg,
			logger.String("message", fmt.Sprintf(format, args...)),
		)
	}
}

func errorLogger(log logger.Logger, msg string) kafka.LoggerFunc {
	return func(format string, args ...any) {
		log.LogAttrs(context.Background(), logger.ErrorLevel, msg,
			logger.String("error", fmt.Sprintf(format, args...)),
		)
	}
}
