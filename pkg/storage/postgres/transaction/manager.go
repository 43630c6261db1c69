package transaction

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"freightqa/pkg/logger"
	"freightqa/pkg/metric"
	"freightqa/pkg/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=manager.go -destination=mock/manager.go -package=mock_transaction

const (
	_defaultMaxAttempts    = 3
	_defaultBaseRetryDelay = 10 * time.Millisecond
	_defaultMaxRetryDelay  = 100 * time.Millisecond

	_backoffMultiplier = 2
)

type Manager interface {
	ExecuteInTransaction(
		ctx context.Context,
		operation string,
		fn func(tx postgres.QueryExecuter) error,
	) error
}

type manager struct {
	pool    *postgres.Postgres
	log     logger.Logger
	metrics metric.Transaction

	maxAttempts    int
	baseRetryDelay time.Duration
	maxRetryDelay  time.Duration
	isoLevel       pgx.TxIsoLevel
}

func NewManager(
	pool *postgres.Postgres,
	log logger.Logger,
	metrics metric.Transaction,
	opts ...Option,
) (Manager, error) {
	tm := &manager{
		pool:    pool,
		log:     log,
		metrics: metrics,

		maxAttempts:    _defaultMaxAttempts,
		baseRetryDelay: _defaultBaseRetryDelay,
		maxRetryDelay:  _defaultMaxRetryDelay,
		isoLevel:       pgx.ReadCommitted,
	}

	for _, opt := range opts {
		opt(tm)
	}
	if err := tm.validate(); err != nil {
		return nil, fmt.Errorf("storage.postgres.transaction.NewManager: %w", err)
	}

	return tm, nil
}

// ExecuteInTransaction runs fn in a transaction and retries
// the whole transaction on serialization failures, deadlocks and lost
// connections.
func (tm *manager) ExecuteInTransaction(
	ctx context.Context,
	operation string,
	fn func(tx postgres.QueryExecuter) error,
) error {
	const op = "storage.postgres.transaction.ExecuteInTransaction"

	start := time.Now()
	defer func() {
		tm.metrics.ObserveDuration(operation, time.Since(start))
	}()

	return tm.withRetry(ctx, operation, func() error {
		tx, err := tm.pool.Pool.BeginTx(ctx, pgx.TxOptions{
			IsoLevel:   tm.isoLevel,
			AccessMode: pgx.ReadWrite,
		})
		if err != nil {
			return fmt.Errorf("%s: begin tx: %w", op, err)
		}
		defer tm.safelyRollback(ctx, tx, operation)

		if err = fn(&postgres.TxQueryExecuter{Tx: tx}); err != nil {
			return fmt.Errorf("%s: %s: %w", op, operation, err)
		}

		if err = tx.Commit(ctx); err != nil {
			return fmt.Errorf("%s: commit: %w", op, err)
		}
		return nil
	})
}

func (tm *manager) safelyRollback(ctx context.Context, tx pgx.Tx, operation string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		tm.log.LogAttrs(ctx, logger.ErrorLevel, "rollback failed",
			logger.String("transaction", operation),
			logger.Err(err),
		)
	}
}

func (tm *manager) withRetry(ctx context.Context, operation string, fn func() error) error {
	const op = "storage.postgres.transaction.withRetry"

	var lastErr error
	backoff := tm.baseRetryDelay

	for attempt := 1; attempt <= tm.maxAttempts; attempt++ {
		if attempt > 1 {
			wait := time.Duration(rand.Int64N(int64(backoff * _backoffMultiplier)))
			if wait > tm.maxRetryDelay {
				wait = tm.maxRetryDelay
			}

			tm.log.LogAttrs(ctx, logger.WarnLevel, "retrying transaction",
				logger.String("transaction", operation),
				logger.Int("attempt", attempt),
				logger.Int("max_attempts", tm.maxAttempts),
				logger.Duration("retry_after", wait),
				logger.Err(lastErr),
			)

			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				tm.metrics.IncrementFailures(operation)
				return fmt.Errorf("%s: %w", op, ctx.Err())
			}

			backoff = min(backoff*_backoffMultiplier, tm.maxRetryDelay)
		}

		err := fn()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			tm.metrics.IncrementFailures(operation)
			return err
		}

		tm.metrics.IncrementRetries(operation)
		lastErr = err
	}

	tm.metrics.IncrementFailures(operation)
	return fmt.Errorf("%s: max attempts (%d) exceeded for %s: %w", op, tm.maxAttempts, operation, lastErr)
}

// IsRetryable reports whether err is a transient PostgreSQL failure.
func IsRetryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40P01", "40001", "08000", "08003", "08006", "08001", "08004", "08007", "08P01":
			return true
		}
		return false
	}

	return pgconn.SafeToRetry(err)
}
