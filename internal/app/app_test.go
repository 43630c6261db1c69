package app_test

import (
	"context"
	"net"
	"testing"
	"time"

	"freightqa/internal/app"
	"freightqa/internal/config"
	"freightqa/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func freeAddr(t *testing.T) (string, string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	return host, port
}

func TestRun_SetupFailureStopsMetricsServer(t *testing.T) {
	host, port := freeAddr(t)

	cfg := &config.Config{
		Metrics: config.Metrics{
			Host:              host,
			Port:              port,
			Namespace:         "freightqa_test",
			ReadTimeout:       time.Second,
			WriteTimeout:      time.Second,
			ReadHeaderTimeout: time.Second,
		},
		// a zero pool size is rejected before any connection attempt
		Postgres: config.Postgres{Host: host, Port: "1"},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := app.Run(ctx, cfg, logger.NewAdapterFromZap(zap.NewNop()))
	require.ErrorContains(t, err, "app.initDatabase")
	require.NoError(t, ctx.Err(), "Run returned only after the deadline")

	ln, err := net.Listen("tcp", net.JoinHostPort(host, port))
	require.NoError(t, err, "metrics listener still open after Run returned")
	require.NoError(t, ln.Close())
}
