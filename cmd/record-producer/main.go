//nolint:mnd
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"freightqa/internal/entity"
	"freightqa/internal/fake"
	kafkat "freightqa/internal/transport/kafka"
	pkgkafka "freightqa/pkg/kafka"
	"freightqa/pkg/logger"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/segmentio/kafka-go"
)

func main() {
	brokers := flag.String(
		"brokers",
		"kafka:29092",
		"Kafka bootstrap brokers to connect to, as a comma separated list",
	)
	topic := flag.String("topic", "freight-records", "Kafka topic to write records to")
	count := flag.Int("count", 1, "Number of messages to send")
	interval := flag.Duration("interval", 1*time.Second, "Interval between sending messages")
	kinds := flag.String("kinds", "shipper,booking,prediction,route", "Comma separated record kinds to pick from, batch included")
	invalidRatio := flag.Float64("invalid-ratio", 0.2, "Share of records corrupted to fail validation, 0..1")
	seed := flag.Uint64("seed", 0, "Seed of the record generator, 0 for random")

	flag.Parse()

	log, err := logger.NewAdapter(logger.Service("record-producer"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	picked, err := parseKinds(*kinds)
	if err != nil {
		log.Error("invalid kinds", "error", err)
		return
	}
	if *invalidRatio < 0 || *invalidRatio > 1 {
		log.Error("invalid-ratio must be within 0..1", "value", *invalidRatio)
		return
	}

	writer := pkgkafka.NewWriter(pkgkafka.WriterConfig{
		Brokers:      strings.Split(*brokers, ","),
		Topic:        *topic,
		BatchSize:    1,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 5 * time.Second,
		ReadTimeout:  5 * time.Second,
	}, log)
	defer writer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := &producer{
		writer:       writer,
		gen:          fake.New(*seed, time.Now),
		faker:        gofakeit.New(*seed),
		kinds:        picked,
		invalidRatio: *invalidRatio,
		log:          log,
	}

	log.Info("starting record producer",
		"count", *count, "topic", *topic, "brokers", *brokers, "interval", interval.String())

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for sent := 0; sent < *count; sent++ {
		if sent > 0 {
			select {
			case <-ctx.Done():
				log.Info("shutting down producer", "sent", sent)
				return
			case <-ticker.C:
			}
		}
		p.send(ctx)
	}

	log.Info("sent all messages", "count", *count)
}

type producer struct {
	writer       *kafka.Writer
	gen          *fake.Generator
	faker        *gofakeit.Faker
	kinds        []entity.Kind
	invalidRatio float64
	log          logger.Logger
}

func (p *producer) send(ctx context.Context) {
	kind := p.kinds[p.faker.Number(0, len(p.kinds)-1)]

	rec, err := p.gen.Record(kind)
	if err != nil {
		p.log.Error("generate record", "kind", kind, "error", err)
		return
	}

	invalid := p.faker.Float64() < p.invalidRatio
	if invalid {
		fake.Corrupt(rec)
	}

	value, err := kafkat.EncodeEnvelope(kind, rec)
	if err != nil {
		p.log.Error("encode envelope", "kind", kind, "error", err)
		return
	}

	key := string(kind)
	if s, ok := rec.(interface{ SubjectKey() string }); ok {
		key = s.SubjectKey()
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = p.writer.WriteMessages(writeCtx, kafka.Message{Key: []byte(key), Value: value}); err != nil {
		p.log.Error("failed to write message to kafka", "kind", kind, "error", err)
		return
	}

	p.log.Info("record sent", "kind", kind, "key", key, "corrupted", invalid)
}

func parseKinds(s string) ([]entity.Kind, error) {
	var kinds []entity.Kind
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		kind, err := entity.ParseKind(part)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: no kinds given", entity.ErrUnknownKind)
	}
	return kinds, nil
}
