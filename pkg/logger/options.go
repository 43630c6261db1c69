package logger

import (
	"errors"
)

type Option func(*ZapLogger)

// Filename enables the rotating file sink next to stdout.
func Filename(name string) Option {
	return func(cfg *ZapLogger) {
		cfg.filename = name
	}
}

func MaxSize(size int) Option {
	return func(cfg *ZapLogger) {
		cfg.maxSize = size
	}
}

func MaxBackups(backups int) Option {
	return func(cfg *ZapLogger) {
		cfg.maxBackups = backups
	}
}

func MaxAge(age int) Option {
	return func(cfg *ZapLogger) {
		cfg.maxAge = age
	}
}

func SetLevel(level Level) Option {
	return func(cfg *ZapLogger) {
		cfg.level = level
	}
}

// Service and Env are attached to every entry.
func Service(name string) Option {
	return func(cfg *ZapLogger) {
		cfg.service = name
	}
}

func Env(env string) Option {
	return func(cfg *ZapLogger) {
		cfg.env = env
	}
}

func (cfg *ZapLogger) validate() error {
	if cfg.maxSize <= 0 {
		return errors.New("invalid maxSize: must be > 0")
	}

	if cfg.maxBackups <= 0 {
		return errors.New("invalid maxBackups: must be > 0")
	}

	if cfg.maxAge <= 0 {
		return errors.New("invalid maxAge: must be > 0")
	}
	return nil
}
