package dlq_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	pkgkafka "freightqa/pkg/kafka"
	"freightqa/pkg/kafka/dlq"
	"freightqa/pkg/logger"
	mock_metric "freightqa/pkg/metric/mock"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingWriter struct {
	mu   sync.Mutex
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDLQ(t *testing.T, w *recordingWriter, metrics *mock_metric.MockDLQ) *dlq.DLQ {
	t.Helper()

	d, err := dlq.NewDLQ(
		pkgkafka.WriterConfig{Topic: "records-dlq"},
		logger.NewAdapterFromZap(zap.NewNop()),
		metrics,
		dlq.WithWriter(w),
		dlq.WithClock(func() time.Time { return fixedNow }),
		dlq.MaxAttemptsCount(3),
		dlq.RetryDelays(time.Millisecond, 2*time.Millisecond),
	)
	require.NoError(t, err)
	return d
}

func TestNewDLQ_Validation(t *testing.T) {
	testCases := []struct {
		desc string
		opts []dlq.Option
	}{
		{desc: "ZeroAttempts", opts: []dlq.Option{dlq.MaxAttemptsCount(0)}},
		{desc: "NegativeBaseDelay", opts: []dlq.Option{dlq.RetryDelays(-time.Second, time.Second)}},
		{desc: "ZeroMaxDelay", opts: []dlq.Option{dlq.RetryDelays(time.Millisecond, 0)}},
		{desc: "BaseAboveMax", opts: []dlq.Option{dlq.RetryDelays(time.Minute, time.Second)}},
		{desc: "NilClock", opts: []dlq.Option{dlq.WithClock(nil)}},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			opts := append([]dlq.Option{dlq.WithWriter(&recordingWriter{})}, tC.opts...)
			_, err := dlq.NewDLQ(pkgkafka.WriterConfig{}, logger.NewAdapterFromZap(zap.NewNop()), nil, opts...)
			require.Error(t, err)
		})
	}
}

func TestDLQ_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mock_metric.NewMockDLQ(ctrl)
	w := &recordingWriter{}
	d := newDLQ(t, w, metrics)
	require.Equal(t, "records-dlq", d.Topic())

	original := kafka.Message{
		Topic:     "records",
		Partition: 2,
		Offset:    41,
		Key:       []byte("BK0000000001"),
		Value:     []byte(`{"kind":"booking"`),
	}

	metrics.EXPECT().DLSent("records-dlq", "records", 3).Times(1)

	require.NoError(t, d.Send(context.Background(), original, errors.New("db down"), 3))
	require.Len(t, w.msgs, 1)

	sent := w.msgs[0]
	require.Equal(t, original.Key, sent.Key)

	fp, ok := pkgkafka.Header(sent, pkgkafka.FingerprintHeader)
	require.True(t, ok)
	require.Equal(t, pkgkafka.Fingerprint(original.Value), fp)

	retries, ok := pkgkafka.Header(sent, dlq.RetryCountHeader)
	require.True(t, ok)
	require.Equal(t, "3", retries)

	decoded, err := dlq.Decode(sent.Value)
	require.NoError(t, err)
	require.Equal(t, dlq.Metadata{
		OriginalTopic: "records",
		Partition:     2,
		Offset:        41,
		RetryCount:    3,
		Error:         "db down",
		Timestamp:     "2026-03-01T12:00:00Z",
	}, decoded.Metadata)
	require.Equal(t, original.Value, decoded.Payload)
}

func TestDLQ_SendWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mock_metric.NewMockDLQ(ctrl)
	d := newDLQ(t, &recordingWriter{err: errors.New("broker unavailable")}, metrics)

	metrics.EXPECT().DLError("records-dlq", "write_failed").Times(1)

	err := d.Send(context.Background(), kafka.Message{Topic: "records"}, errors.New("x"), 0)
	require.ErrorContains(t, err, "broker unavailable")
}

func TestProcessWithRetry(t *testing.T) {
	errTransient := errors.New("transient")

	testCases := []struct {
		desc      string
		failures  int
		permanent bool
		wantCalls int
		wantDLQ   bool
		wantRetry string
	}{
		{desc: "FirstAttemptSucceeds", failures: 0, wantCalls: 1},
		{desc: "SucceedsAfterRetries", failures: 2, wantCalls: 3},
		{desc: "ExhaustedGoesToDLQ", failures: 10, wantCalls: 3, wantDLQ: true, wantRetry: "3"},
		{desc: "PermanentSkipsRetries", failures: 10, permanent: true, wantCalls: 1, wantDLQ: true, wantRetry: "2"},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			metrics := mock_metric.NewMockDLQ(ctrl)
			metrics.EXPECT().DLSent(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

			w := &recordingWriter{}
			d := newDLQ(t, w, metrics)

			calls := 0
			handler := func(context.Context, kafka.Message) error {
				calls++
				if calls <= tC.failures {
					if tC.permanent {
						return dlq.Permanent(errTransient)
					}
					return errTransient
				}
				return nil
			}

			retryCount := 0
			if tC.permanent {
				retryCount = 1
			}

			err := dlq.ProcessWithRetry(
				context.Background(),
				kafka.Message{Topic: "records", Value: []byte("x")},
				handler,
				d,
				logger.NewAdapterFromZap(zap.NewNop()),
				retryCount,
			)
			require.NoError(t, err)
			require.Equal(t, tC.wantCalls, calls)

			if !tC.wantDLQ {
				require.Empty(t, w.msgs)
				return
			}
			require.Len(t, w.msgs, 1)
			retries, _ := pkgkafka.Header(w.msgs[0], dlq.RetryCountHeader)
			require.Equal(t, tC.wantRetry, retries)
		})
	}
}

func TestProcessWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	d := newDLQ(t, &recordingWriter{}, nil)

	err := dlq.ProcessWithRetry(ctx, kafka.Message{}, func(context.Context, kafka.Message) error {
		cancel()
		return errors.New("interrupted")
	}, d, logger.NewAdapterFromZap(zap.NewNop()), 0)

	require.ErrorIs(t, err, context.Canceled)
}

func TestPermanent(t *testing.T) {
	base := errors.New("bad envelope")

	require.Nil(t, dlq.Permanent(nil))
	require.True(t, dlq.IsPermanent(dlq.Permanent(base)))
	require.ErrorIs(t, dlq.Permanent(base), base)
	require.False(t, dlq.IsPermanent(base))
}
