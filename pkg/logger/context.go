package logger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"

	_httpStatusClassDiv = 100
)

func (l *ZapLogger) WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the id stored by WithRequestID, or "".
func (l *ZapLogger) GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}

// NewContextLogger tags entries with the request id carried by ctx, if any.
func (l *ZapLogger) NewContextLogger(ctx context.Context) *zap.Logger {
	requestID := l.GetRequestID(ctx)
	if requestID == "" {
		return l.logger
	}
	return l.logger.With(zap.String("request_id", requestID))
}

// LogRequest writes one access log entry; 5xx at error level, 4xx at warn.
func (l *ZapLogger) LogRequest(
	ctx context.Context,
	method, path string,
	status int,
	duration time.Duration,
) {
	ce := l.NewContextLogger(ctx).Check(requestLevel(status), "request")
	if ce == nil {
		return
	}
	ce.Write(
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Int("status_class", status/_httpStatusClassDiv),
		zap.Duration("duration", duration),
	)
}

func requestLevel(status int) zapcore.Level {
	switch status / _httpStatusClassDiv {
	case 5:
		return zapcore.ErrorLevel
	case 4:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *ZapLogger) GenerateRequestID() string {
	return uuid.NewString()
}
