package kafkat

import (
	"context"
	"errors"
	"fmt"

	"freightqa/internal/entity"
	"freightqa/internal/service"
	pkgkafka "freightqa/pkg/kafka"
	"freightqa/pkg/kafka/dlq"
	"freightqa/pkg/logger"
	"freightqa/pkg/metric"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

//go:generate mockgen -source=consumer.go -destination=mock/service.go -package=mock_kafkat

const _lagReportInterval = 100

type (
	ValidationService interface {
		ValidateRecord(ctx context.Context, req service.Request, kind entity.Kind, rec any) (*entity.Report, error)
		ValidateBatch(ctx context.Context, req service.Request, batch *entity.BatchRequest) (*entity.BatchReport, error)
	}

	Reader interface {
		ReadMessage(ctx context.Context) (kafka.Message, error)
		Stats() kafka.ReaderStats
		Close() error
	}

	Publisher interface {
		WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	}

	RecordConsumer struct {
		reader        Reader
		dlq           *dlq.DLQ
		svc           ValidationService
		rejected      Publisher
		rejectedTopic string
		lang          language.Tag
		metric        metric.Kafka
		log           logger.Logger
	}
)

// NewRecordConsumer builds the consumer of the input topic. rejected may be
// nil, in which case invalid records are only stored.
func NewRecordConsumer(
	reader Reader,
	dlq *dlq.DLQ,
	svc ValidationService,
	rejected Publisher,
	rejectedTopic string,
	lang language.Tag,
	metric metric.Kafka,
	log logger.Logger,
) *RecordConsumer {
	return &RecordConsumer{
		reader:        reader,
		dlq:           dlq,
		svc:           svc,
		rejected:      rejected,
		rejectedTopic: rejectedTopic,
		lang:          lang,
		metric:        metric,
		log:           log,
	}
}

func (c *RecordConsumer) Start(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return c.run(ctx)
	})

	eg.Go(func() error {
		<-ctx.Done()
		c.log.Info("shutting down consumer")
		return c.reader.Close()
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("transport.kafka.consumer.Start: %w", err)
	}
	return nil
}

func (c *RecordConsumer) run(ctx context.Context) error {
	var processed int
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.log.LogAttrs(ctx, logger.ErrorLevel, "kafka read failed", logger.Err(err))
			continue
		}

		c.processMessage(ctx, msg)

		processed++
		if processed%_lagReportInterval == 0 {
			c.metric.ConsumerGroupLag(msg.Topic, c.reader.Stats().Lag)
		}
	}
}

func (c *RecordConsumer) processMessage(ctx context.Context, msg kafka.Message) {
	c.log.LogAttrs(ctx, logger.DebugLevel, "processing kafka message",
		logger.String("topic", msg.Topic),
		logger.Int("partition", msg.Partition),
		logger.Int64("offset", msg.Offset),
	)

	var failed bool
	err := dlq.ProcessWithRetry(ctx, msg, func(ctx context.Context, msg kafka.Message) error {
		err := c.HandleMessage(ctx, msg)
		failed = err != nil
		return err
	}, c.dlq, c.log, 0)

	switch {
	case err != nil:
		c.log.LogAttrs(ctx, logger.ErrorLevel, "critical: failed to send to DLQ",
			logger.Int64("offset", msg.Offset),
			logger.String("fingerprint", pkgkafka.Fingerprint(msg.Value)),
			logger.Err(err),
		)
		c.metric.MessageFailed(msg.Topic, msg.Partition, "dlq_failed")
	case failed:
		c.metric.MessageFailed(msg.Topic, msg.Partition, "dead_lettered")
	default:
		c.metric.MessageProcessed(msg.Topic, msg.Partition)
	}
}

// HandleMessage validates one envelope and publishes a rejection for every
// invalid record. Malformed envelopes fail permanently.
func (c *RecordConsumer) HandleMessage(ctx context.Context, msg kafka.Message) error {
	const op = "transport.kafka.consumer.HandleMessage"

	kind, rec, err := DecodeEnvelope(msg.Value)
	if err != nil {
		return dlq.Permanent(fmt.Errorf("%s: %w", op, err))
	}

	req := service.Request{
		ReportID: ReportID(msg.Topic, msg.Partition, msg.Offset),
		Source:   entity.SourceKafka,
		Language: c.lang,
	}

	var rejections []Rejection
	if kind == entity.KindBatch {
		batch := rec.(*entity.BatchRequest)
		res, err := c.svc.ValidateBatch(ctx, req, batch)
		if err != nil {
			return fmt.Errorf("%s: validate batch: %w", op, err)
		}
		rejections, err = batchRejections(batch, res)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	} else {
		report, err := c.svc.ValidateRecord(ctx, req, kind, rec)
		if err != nil {
			if errors.Is(err, entity.ErrUnknownKind) || errors.Is(err, entity.ErrConflictingData) {
				return dlq.Permanent(fmt.Errorf("%s: %w", op, err))
			}
			return fmt.Errorf("%s: validate %s: %w", op, kind, err)
		}
		if !report.Result.IsValid {
			raw, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("%s: marshal record: %w", op, err)
			}
			rejections = append(rejections, Rejection{
				ReportID: report.ID,
				Kind:     kind,
				Record:   raw,
				Result:   report.Result,
			})
		}
	}

	if err = c.publishRejections(ctx, msg.Key, rejections); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.log.LogAttrs(ctx, logger.InfoLevel, "kafka message validated",
		logger.String("report_id", req.ReportID.String()),
		logger.String("kind", kind.String()),
		logger.Int64("offset", msg.Offset),
		logger.Int("rejected", len(rejections)),
	)

	return nil
}

func (c *RecordConsumer) publishRejections(ctx context.Context, key []byte, rejections []Rejection) error {
	if c.rejected == nil || len(rejections) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(rejections))
	for _, r := range rejections {
		value, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal rejection %s: %w", r.ReportID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   key,
			Value: value,
			Headers: []kafka.Header{
				{Key: pkgkafka.FingerprintHeader, Value: []byte(pkgkafka.Fingerprint(r.Record))},
			},
		})
	}

	if err := c.rejected.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish rejections: %w", err)
	}
	for range msgs {
		c.metric.MessagePublished(c.rejectedTopic)
	}
	return nil
}

func batchRejections(batch *entity.BatchRequest, res *entity.BatchReport) ([]Rejection, error) {
	var (
		rejections []Rejection
		err        error
	)
	res.Result.Each(func(kind entity.Kind, index int, result *entity.ValidationResult) {
		if err != nil || result.IsValid {
			return
		}

		var raw []byte
		raw, err = json.Marshal(batchElement(batch, kind, index))
		if err != nil {
			err = fmt.Errorf("marshal %s %d: %w", kind, index, err)
			return
		}
		rejections = append(rejections, Rejection{
			ReportID: service.ElementReportID(res.BatchID, kind, index),
			Kind:     kind,
			Record:   raw,
			Result:   result,
		})
	})
	return rejections, err
}

func batchElement(b *entity.BatchRequest, kind entity.Kind, index int) any {
	switch kind {
	case entity.KindShipper:
		return b.Shippers[index]
	case entity.KindBooking:
		return b.Bookings[index]
	case entity.KindPrediction:
		return b.Predictions[index]
	default:
		return b.Routes[index]
	}
}
