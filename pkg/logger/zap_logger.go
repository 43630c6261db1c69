package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	_defaultMaxSize    = 100
	_defaultMaxBackups = 7
	_defaultMaxAge     = 30
)

type ZapLogger struct {
	logger *zap.Logger
	level  Level

	filename   string
	service    string
	env        string
	maxSize    int
	maxBackups int
	maxAge     int
}

func NewZapLogger(opts ...Option) (*ZapLogger, error) {
	const op = "logger.NewZapLogger"

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		FunctionKey:   zapcore.OmitKey,
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	l := &ZapLogger{
		maxSize:    _defaultMaxSize,
		maxBackups: _defaultMaxBackups,
		maxAge:     _defaultMaxAge,
		level:      InfoLevel,
	}

	for _, opt := range opts {
		opt(l)
	}

	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("%s: validation: %w", op, err)
	}

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if l.filename != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   l.filename,
			MaxSize:    l.maxSize,
			MaxBackups: l.maxBackups,
			MaxAge:     l.maxAge,
			Compress:   true,
		}))
	}

	minLevel := toZapLevel(l.level)
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(sinks...),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= minLevel
		}),
	)

	fields := make([]zap.Field, 0, 2)
	if l.service != "" {
		fields = append(fields, zap.String("service", l.service))
	}
	if l.env != "" {
		fields = append(fields, zap.String("env", l.env))
	}

	l.logger = zap.New(core,
		zap.Fields(fields...),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)

	return l, nil
}

func (l *ZapLogger) Zap() *zap.Logger {
	return l.logger
}
