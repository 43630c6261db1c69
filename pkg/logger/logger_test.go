package logger_test

import (
	"context"
	"errors"
	"testing"

	"freightqa/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected logger.Level
		err      bool
	}{
		{desc: "Debug", input: "debug", expected: logger.DebugLevel},
		{desc: "UpperInfo", input: "INFO", expected: logger.InfoLevel},
		{desc: "EmptyIsInfo", input: "", expected: logger.InfoLevel},
		{desc: "Warning", input: "warning", expected: logger.WarnLevel},
		{desc: "Error", input: "error", expected: logger.ErrorLevel},
		{desc: "Unknown", input: "verbose", expected: logger.InfoLevel, err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			level, err := logger.ParseLevel(tc.input)
			if tc.err {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expected, level)
		})
	}
}

func TestAdapter_LogAttrsCarriesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.NewAdapterFromZap(zap.New(core))

	ctx := log.WithRequestID(context.Background(), "req-1")
	log.LogAttrs(ctx, logger.InfoLevel, "validated",
		logger.String("kind", "route"),
		logger.Err(errors.New("boom")),
	)
	log.LogAttrs(ctx, logger.DebugLevel, "dropped")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "validated", entries[0].Message)
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "route", fields["kind"])
	assert.Equal(t, "boom", fields["error"])
}

func TestAdapter_LogRequestLevelByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewAdapterFromZap(zap.New(core))

	log.LogRequest(context.Background(), "POST", "/api/v1/validate/routes", 200, 0)
	log.LogRequest(context.Background(), "POST", "/api/v1/validate/routes", 400, 0)
	log.LogRequest(context.Background(), "GET", "/api/v1/reports", 500, 0)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestNewAdapter_InvalidOptions(t *testing.T) {
	_, err := logger.NewAdapter(logger.MaxSize(0))

	require.Error(t, err)
}
