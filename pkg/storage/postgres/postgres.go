package postgres

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"freightqa/pkg/logger"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	_defaultMaxPoolSize    = 20
	_defaultConnAttempts   = 10
	_defaultBaseRetryDelay = 100 * time.Millisecond
	_defaultMaxRetryDelay  = 5 * time.Second
	_defaultConnectTimeout = 5 * time.Second

	_backoffMultiplier = 2
)

type Postgres struct {
	Builder squirrel.StatementBuilderType
	Pool    *pgxpool.Pool

	connAttempts   int
	baseRetryDelay time.Duration
	maxRetryDelay  time.Duration
	connectTimeout time.Duration
	maxPoolSize    int32
	minPoolSize    int32
}

// NewPostgres connects to url, retrying with jittered exponential backoff
// until the pool answers a ping or the attempts run out.
func NewPostgres(ctx context.Context, url string, log logger.Logger, opts ...Option) (*Postgres, error) {
	const op = "storage.postgres.NewPostgres"

	pg := &Postgres{
		connAttempts:   _defaultConnAttempts,
		baseRetryDelay: _defaultBaseRetryDelay,
		maxRetryDelay:  _defaultMaxRetryDelay,
		connectTimeout: _defaultConnectTimeout,
		maxPoolSize:    _defaultMaxPoolSize,
	}

	for _, opt := range opts {
		opt(pg)
	}
	if err := pg.validate(); err != nil {
		return nil, fmt.Errorf("%s: validation: %w", op, err)
	}

	pg.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("%s: parse pool config: %w", op, err)
	}
	poolConfig.MaxConns = pg.maxPoolSize
	poolConfig.MinConns = pg.minPoolSize

	backoff := pg.baseRetryDelay
	for attempt := 1; attempt <= pg.connAttempts; attempt++ {
		pg.Pool, err = connect(ctx, poolConfig, pg.connectTimeout)
		if err == nil {
			return pg, nil
		}

		wait := time.Duration(rand.Int64N(int64(backoff * _backoffMultiplier)))
		if wait > pg.maxRetryDelay {
			wait = pg.maxRetryDelay
		}

		log.LogAttrs(ctx, logger.WarnLevel, "postgres connection attempt failed",
			logger.String("op", op),
			logger.Int("attempt", attempt),
			logger.Duration("retry_after", wait),
			logger.Err(err),
		)

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		}

		backoff = min(backoff*_backoffMultiplier, pg.maxRetryDelay)
	}

	return nil, fmt.Errorf("%s: create new pool: %w", op, err)
}

func connect(ctx context.Context, cfg *pgxpool.Config, timeout time.Duration) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Executer returns the pool as a QueryExecuter for statements that do not
// need a transaction.
func (p *Postgres) Executer() QueryExecuter {
	return p.Pool
}

// Healthcheck pings the pool.
func (p *Postgres) Healthcheck(ctx context.Context) error {
	if p == nil || p.Pool == nil {
		return fmt.Errorf("storage.postgres.Healthcheck: pool is not initialized")
	}
	return p.Pool.Ping(ctx)
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
