package kafkat

import (
	"context"
	"fmt"
	"time"

	"freightqa/pkg/kafka/dlq"
	"freightqa/pkg/logger"

	"github.com/segmentio/kafka-go"
)

const (
	_defaultDLQHandleTimeout = 5 * time.Second
	_dlqSendAttempts         = 3
	_dlqSendBackoff          = 100 * time.Millisecond
)

type (
	MessageHandler interface {
		HandleMessage(ctx context.Context, msg kafka.Message) error
	}

	DLQProcessor struct {
		reader     Reader
		dlq        *dlq.DLQ
		handler    MessageHandler
		maxRetries int
		log        logger.Logger
	}
)

func NewDLQProcessor(
	reader Reader,
	dlq *dlq.DLQ,
	handler MessageHandler,
	maxRetries int,
	log logger.Logger,
) *DLQProcessor {
	return &DLQProcessor{
		reader:     reader,
		dlq:        dlq,
		handler:    handler,
		maxRetries: maxRetries,
		log:        log.With("component", "dlq_processor", "dlq_topic", dlq.Topic()),
	}
}

func (p *DLQProcessor) Start(ctx context.Context) error {
	defer func() {
		if err := p.reader.Close(); err != nil {
			p.log.Warn("close dlq reader", "error", err)
		}
	}()

	for {
		msg, err := p.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				p.log.Info("dlq processor shutting down")
				return nil
			}
			p.log.LogAttrs(ctx, logger.ErrorLevel, "read dlq message", logger.Err(err))
			continue
		}

		p.Process(ctx, msg)
	}
}

// Process re-runs one dead-lettered message. Messages at the retry limit and
// permanent failures stay in the DLQ topic; other failures are dead-lettered
// again with an incremented retry count.
func (p *DLQProcessor) Process(ctx context.Context, msg kafka.Message) {
	dead, err := dlq.Decode(msg.Value)
	if err != nil {
		p.log.LogAttrs(ctx, logger.ErrorLevel, "unmarshal dlq message",
			logger.Int64("offset", msg.Offset),
			logger.Err(err),
		)
		return
	}

	meta := dead.Metadata
	if meta.RetryCount >= p.maxRetries {
		p.log.LogAttrs(ctx, logger.WarnLevel, "skipping dlq message after max retries",
			logger.Int64("offset", msg.Offset),
			logger.Int("retry_count", meta.RetryCount),
			logger.String("error", meta.Error),
		)
		return
	}

	original := kafka.Message{
		Topic:     meta.OriginalTopic,
		Partition: meta.Partition,
		Offset:    meta.Offset,
		Key:       msg.Key,
		Value:     dead.Payload,
	}

	handleCtx, cancel := context.WithTimeout(ctx, _defaultDLQHandleTimeout)
	defer cancel()

	err = p.handler.HandleMessage(handleCtx, original)
	if err == nil {
		p.log.LogAttrs(ctx, logger.InfoLevel, "dlq message processed successfully",
			logger.String("original_topic", meta.OriginalTopic),
			logger.Int64("original_offset", meta.Offset),
			logger.Int("retry_count", meta.RetryCount),
		)
		return
	}

	if dlq.IsPermanent(err) {
		p.log.LogAttrs(ctx, logger.WarnLevel, "dlq message cannot be processed",
			logger.Int64("offset", msg.Offset),
			logger.Err(err),
		)
		return
	}

	p.log.LogAttrs(ctx, logger.ErrorLevel, "retry dlq message",
		logger.Int64("offset", msg.Offset),
		logger.Int("retry_count", meta.RetryCount),
		logger.Err(err),
	)

	if sendErr := p.resend(ctx, original, err, meta.RetryCount+1); sendErr != nil {
		p.log.LogAttrs(ctx, logger.ErrorLevel, "failed to send to DLQ after retries",
			logger.Int64("offset", msg.Offset),
			logger.Int("retry_count", meta.RetryCount+1),
			logger.Err(sendErr),
		)
	}
}

func (p *DLQProcessor) resend(ctx context.Context, msg kafka.Message, cause error, retryCount int) error {
	var err error
	for i := range _dlqSendAttempts {
		if err = p.dlq.Send(ctx, msg, cause, retryCount); err == nil {
			return nil
		}

		p.log.Warn("failed to send to DLQ, retrying", "retry", i+1, "error", err)

		select {
		case <-time.After(_dlqSendBackoff * time.Duration(i+1)):
		case <-ctx.Done():
			return fmt.Errorf("transport.kafka.dlq_processor.resend: %w", ctx.Err())
		}
	}
	return err
}
