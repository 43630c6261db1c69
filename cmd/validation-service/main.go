package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"freightqa/internal/app"
	"freightqa/internal/config"
	"freightqa/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("application starting", "env", cfg.Env, "version", cfg.App.Version)

	if err := app.Run(ctx, cfg, log); err != nil {
		log.Error("application failed", "error", err)
		cancel()
		_ = log.Sync()
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application exited normally")
}

func newLogger(cfg *config.Config) (*logger.Adapter, error) {
	level, err := logger.ParseLevel(cfg.Logger.Level)
	if err != nil {
		return nil, err
	}

	return logger.NewAdapter(
		logger.Filename(cfg.Logger.Filename),
		logger.MaxSize(cfg.Logger.MaxSize),
		logger.MaxBackups(cfg.Logger.MaxBackups),
		logger.MaxAge(cfg.Logger.MaxAge),
		logger.SetLevel(level),
		logger.Service(cfg.App.Name),
		logger.Env(cfg.Env),
	)
}
