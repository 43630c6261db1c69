package transaction

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type Option func(*manager)

// MaxAttempts bounds how often a transaction runs, the first run included.
func MaxAttempts(attempts int) Option {
	return func(m *manager) {
		m.maxAttempts = attempts
	}
}

// RetryDelays sets the range of the jittered backoff between attempts.
func RetryDelays(base, maxDelay time.Duration) Option {
	return func(m *manager) {
		m.baseRetryDelay = base
		m.maxRetryDelay = maxDelay
	}
}

// Isolation sets the isolation level of every transaction.
func Isolation(level pgx.TxIsoLevel) Option {
	return func(m *manager) {
		m.isoLevel = level
	}
}

func (m *manager) validate() error {
	var errs []error

	if m.maxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("max attempts %d: must be > 0", m.maxAttempts))
	}
	if m.baseRetryDelay <= 0 || m.maxRetryDelay < m.baseRetryDelay {
		errs = append(errs, fmt.Errorf("retry delays %s..%s: need 0 < base <= max", m.baseRetryDelay, m.maxRetryDelay))
	}

	switch m.isoLevel {
	case pgx.ReadCommitted, pgx.RepeatableRead, pgx.Serializable:
	default:
		errs = append(errs, fmt.Errorf("isolation level %q is not supported", m.isoLevel))
	}

	return errors.Join(errs...)
}
