package postgres

import (
	"errors"
	"fmt"
	"time"
)

type Option func(*Postgres)

func MaxPoolSize(size int32) Option {
	return func(p *Postgres) {
		p.maxPoolSize = size
	}
}

// MinPoolSize keeps size connections open while the pool is idle.
func MinPoolSize(size int32) Option {
	return func(p *Postgres) {
		p.minPoolSize = size
	}
}

func MaxConnAttempts(attempts int) Option {
	return func(p *Postgres) {
		p.connAttempts = attempts
	}
}

// RetryDelays sets the range of the jittered backoff between connection attempts.
func RetryDelays(base, maxDelay time.Duration) Option {
	return func(p *Postgres) {
		p.baseRetryDelay = base
		p.maxRetryDelay = maxDelay
	}
}

// ConnectTimeout bounds every single connection attempt.
func ConnectTimeout(timeout time.Duration) Option {
	return func(p *Postgres) {
		p.connectTimeout = timeout
	}
}

func (p *Postgres) validate() error {
	var errs []error

	if p.maxPoolSize <= 0 {
		errs = append(errs, fmt.Errorf("max pool size %d: must be > 0", p.maxPoolSize))
	}
	if p.minPoolSize < 0 || p.minPoolSize > p.maxPoolSize {
		errs = append(errs, fmt.Errorf("min pool size %d: must be within 0..%d", p.minPoolSize, p.maxPoolSize))
	}
	if p.connAttempts <= 0 {
		errs = append(errs, fmt.Errorf("connection attempts %d: must be > 0", p.connAttempts))
	}
	if p.baseRetryDelay <= 0 || p.maxRetryDelay < p.baseRetryDelay {
		errs = append(errs, fmt.Errorf("retry delays %s..%s: need 0 < base <= max", p.baseRetryDelay, p.maxRetryDelay))
	}
	if p.connectTimeout <= 0 {
		errs = append(errs, errors.New("connect timeout must be > 0"))
	}

	return errors.Join(errs...)
}
