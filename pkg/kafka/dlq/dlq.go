package dlq

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	pkgkafka "freightqa/pkg/kafka"
	"freightqa/pkg/logger"
	"freightqa/pkg/metric"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

const (
	_defaultMaxAttempts    = 10
	_defaultBaseRetryDelay = 100 * time.Millisecond
	_defaultMaxRetryDelay  = 5 * time.Second

	_backoffMultiplier = 2

	// RetryCountHeader mirrors Metadata.RetryCount on the dead-lettered message.
	RetryCountHeader = "x-retry-count"
)

type (
	MessageWriter interface {
		WriteMessages(ctx context.Context, msgs ...kafka.Message) error
		Close() error
	}

	Metadata struct {
		OriginalTopic string `json:"original_topic"`
		Partition     int    `json:"partition"`
		Offset        int64  `json:"offset"`
		RetryCount    int    `json:"retry_count"`
		Error         string `json:"error"`
		Timestamp     string `json:"timestamp"`
	}

	// Message is the dead-letter envelope. Payload holds the original value
	// and is base64 encoded on the wire.
	Message struct {
		Metadata Metadata `json:"metadata"`
		Payload  []byte   `json:"payload"`
	}

	DLQ struct {
		writer  MessageWriter
		topic   string
		log     logger.Logger
		metrics metric.DLQ
		now     func() time.Time

		MaxAttempts    int
		baseRetryDelay time.Duration
		maxRetryDelay  time.Duration
	}

	permanentError struct {
		err error
	}
)

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying; ProcessWithRetry dead-letters
// it on the first failure.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

func NewDLQ(cfg pkgkafka.WriterConfig, log logger.Logger, metrics metric.DLQ, opts ...Option) (*DLQ, error) {
	dlq := &DLQ{
		topic:   cfg.Topic,
		log:     log,
		metrics: metrics,
		now:     time.Now,

		MaxAttempts:    _defaultMaxAttempts,
		baseRetryDelay: _defaultBaseRetryDelay,
		maxRetryDelay:  _defaultMaxRetryDelay,
	}

	for _, opt := range opts {
		opt(dlq)
	}

	if err := dlq.validate(); err != nil {
		return nil, fmt.Errorf("kafka.dlq.NewDLQ: validation: %w", err)
	}

	if dlq.writer == nil {
		dlq.writer = pkgkafka.NewWriter(cfg, log)
	}

	return dlq, nil
}

func (d *DLQ) Topic() string {
	return d.topic
}

func (d *DLQ) Close() error {
	if err := d.writer.Close(); err != nil {
		return fmt.Errorf("kafka.dlq.Close: %w", err)
	}
	return nil
}

// Send wraps originalMsg with failure metadata and writes it to the DLQ
// topic, keyed by the original key.
func (d *DLQ) Send(
	ctx context.Context,
	originalMsg kafka.Message,
	cause error,
	retryCount int,
) error {
	const op = "kafka.dlq.Send"

	reason := "unknown"
	if cause != nil {
		reason = cause.Error()
	}

	value, err := json.Marshal(Message{
		Metadata: Metadata{
			OriginalTopic: originalMsg.Topic,
			Partition:     originalMsg.Partition,
			Offset:        originalMsg.Offset,
			RetryCount:    retryCount,
			Error:         reason,
			Timestamp:     d.now().UTC().Format(time.RFC3339),
		},
		Payload: originalMsg.Value,
	})
	if err != nil {
		d.metrics.DLError(d.topic, "marshal_failed")
		return fmt.Errorf("%s: marshal: %w", op, err)
	}

	err = d.writer.WriteMessages(ctx, kafka.Message{
		Key:   originalMsg.Key,
		Value: value,
		Headers: []kafka.Header{
			{Key: pkgkafka.FingerprintHeader, Value: []byte(pkgkafka.Fingerprint(originalMsg.Value))},
			{Key: RetryCountHeader, Value: []byte(strconv.Itoa(retryCount))},
		},
	})
	if err != nil {
		d.log.LogAttrs(ctx, logger.ErrorLevel, "failed to send message to dlq",
			logger.String("op", op),
			logger.Int64("offset", originalMsg.Offset),
			logger.Err(err),
		)
		d.metrics.DLError(d.topic, "write_failed")

		return fmt.Errorf("%s: send message: %w", op, err)
	}

	d.metrics.DLSent(d.topic, originalMsg.Topic, retryCount)
	d.log.LogAttrs(ctx, logger.InfoLevel, "message sent to dlq",
		logger.String("op", op),
		logger.String("topic", d.topic),
		logger.String("original_topic", originalMsg.Topic),
		logger.Int64("offset", originalMsg.Offset),
		logger.Int("retry_count", retryCount),
		logger.String("error", reason),
	)

	return nil
}

// Decode parses a dead-letter envelope.
func Decode(value []byte) (*Message, error) {
	const op = "kafka.dlq.Decode"

	var m Message
	if err := json.Unmarshal(value, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}

// ProcessWithRetry runs handler until it succeeds, fails permanently or
// exhausts MaxAttempts, waiting a jittered exponential backoff between
// attempts. Failed messages are dead-lettered with retryCount plus the
// number of attempts made.
func ProcessWithRetry(
	ctx context.Context,
	msg kafka.Message,
	handler func(context.Context, kafka.Message) error,
	dlq *DLQ,
	log logger.Logger,
	retryCount int,
) error {
	const op = "kafka.dlq.ProcessWithRetry"

	var err error
	attempt := 0
	currentBackoff := dlq.baseRetryDelay

	for attempt < dlq.MaxAttempts {
		if attempt > 0 {
			jitter := time.Duration(rand.Int64N(int64(currentBackoff * _backoffMultiplier)))
			if jitter > dlq.maxRetryDelay {
				jitter = dlq.maxRetryDelay
			}

			log.LogAttrs(ctx, logger.InfoLevel, "retrying message processing",
				logger.String("operation", op),
				logger.Int("attempt", attempt+1),
				logger.Duration("retry_after", jitter),
			)

			select {
			case <-time.After(jitter):
			case <-ctx.Done():
				return fmt.Errorf("%s: context done: %w", op, ctx.Err())
			}

			currentBackoff = min(currentBackoff*_backoffMultiplier, dlq.maxRetryDelay)
		}

		attempt++
		err = handler(ctx, msg)
		if err == nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: context: %w", op, ctxErr)
		}

		log.LogAttrs(ctx, logger.ErrorLevel, "message processing failed",
			logger.String("operation", op),
			logger.Int64("offset", msg.Offset),
			logger.Int("attempt", attempt),
			logger.Bool("permanent", IsPermanent(err)),
			logger.Err(err),
		)

		if IsPermanent(err) {
			break
		}
	}

	return dlq.Send(ctx, msg, err, retryCount+attempt)
}
