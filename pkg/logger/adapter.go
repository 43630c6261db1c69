package logger

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	_argPairs = 2
)

// Adapter implements Logger on top of zap.
type Adapter struct {
	zapLogger *ZapLogger
}

func NewAdapter(opts ...Option) (*Adapter, error) {
	l, err := NewZapLogger(opts...)
	if err != nil {
		return nil, fmt.Errorf("logger.NewAdapter: %w", err)
	}
	return &Adapter{
		zapLogger: l,
	}, nil
}

// NewAdapterFromZap wraps an existing zap logger, e.g. zap.NewNop() in tests.
func NewAdapterFromZap(z *zap.Logger) *Adapter {
	return &Adapter{
		zapLogger: &ZapLogger{logger: z, level: fromZapLevel(z.Level())},
	}
}

func (a *Adapter) derive(z *zap.Logger) *Adapter {
	return &Adapter{zapLogger: &ZapLogger{logger: z, level: a.zapLogger.level}}
}

// Zap exposes the underlying logger for libraries that need a *zap.Logger.
func (a *Adapter) Zap() *zap.Logger {
	return a.zapLogger.Zap()
}

func (a *Adapter) Debug(msg string, args ...any) {
	a.zapLogger.Zap().Debug(msg, toZapFields(args)...)
}

func (a *Adapter) Info(msg string, args ...any) {
	a.zapLogger.Zap().Info(msg, toZapFields(args)...)
}

func (a *Adapter) Warn(msg string, args ...any) {
	a.zapLogger.Zap().Warn(msg, toZapFields(args)...)
}

func (a *Adapter) Error(msg string, args ...any) {
	a.zapLogger.Zap().Error(msg, toZapFields(args)...)
}

func (a *Adapter) Ctx(ctx context.Context) Logger {
	return a.derive(a.zapLogger.NewContextLogger(ctx))
}

func (a *Adapter) With(args ...any) Logger {
	return a.derive(a.zapLogger.Zap().With(toZapFields(args)...))
}

func (a *Adapter) WithGroup(name string) Logger {
	return a.derive(a.zapLogger.Zap().With(zap.Namespace(name)))
}

func (a *Adapter) Log(level Level, msg string, attrs ...Attr) {
	zapLevel := toZapLevel(level)
	if !a.zapLogger.Zap().Core().Enabled(zapLevel) {
		return
	}
	a.zapLogger.Zap().Log(zapLevel, msg, toZapFieldsFromAttrs(attrs)...)
}

func (a *Adapter) LogAttrs(ctx context.Context, level Level, msg string, attrs ...Attr) {
	logger := a.zapLogger.NewContextLogger(ctx)
	zapLevel := toZapLevel(level)

	if !logger.Core().Enabled(zapLevel) {
		return
	}

	logger.Log(zapLevel, msg, toZapFieldsFromAttrs(attrs)...)
}

func (a *Adapter) Level() Level {
	return a.zapLogger.level
}

func (a *Adapter) Sync() error {
	return a.zapLogger.Zap().Sync()
}

func (a *Adapter) GenerateRequestID() string {
	return a.zapLogger.GenerateRequestID()
}

func (a *Adapter) GetRequestID(ctx context.Context) string {
	return a.zapLogger.GetRequestID(ctx)
}

func (a *Adapter) WithRequestID(ctx context.Context, requestID string) context.Context {
	return a.zapLogger.WithRequestID(ctx, requestID)
}

func (a *Adapter) LogRequest(
	ctx context.Context,
	method, path string,
	status int,
	duration time.Duration,
) {
	a.zapLogger.LogRequest(ctx, method, path, status, duration)
}

func toZapLevel(level Level) zapcore.Level {
	switch {
	case level >= ErrorLevel:
		return zapcore.ErrorLevel
	case level >= WarnLevel:
		return zapcore.WarnLevel
	case level >= InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func fromZapLevel(level zapcore.Level) Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return ErrorLevel
	case level == zapcore.WarnLevel:
		return WarnLevel
	case level == zapcore.InfoLevel:
		return InfoLevel
	default:
		return DebugLevel
	}
}

func toZapFields(args []any) []zap.Field {
	if len(args)%2 != 0 {
		args = append(args, "<missing>")
	}
	fields := make([]zap.Field, 0, len(args)/_argPairs)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = "UNKNOWN"
		}
		fields = append(fields, zap.Any(key, args[i+1]))
	}
	return fields
}

func toZapFieldsFromAttrs(attrs []Attr) []zap.Field {
	fields := make([]zap.Field, 0, len(attrs))
	for _, a := range attrs {
		if err, ok := a.Value.(error); ok && a.Key == "error" {
			fields = append(fields, zap.Error(err))
			continue
		}
		fields = append(fields, zap.Any(a.Key, a.Value))
	}
	return fields
}
