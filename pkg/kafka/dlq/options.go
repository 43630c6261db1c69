package dlq

import (
	"errors"
	"fmt"
	"time"
)

type Option func(*DLQ)

// MaxAttemptsCount bounds the handler runs of ProcessWithRetry before a
// message is dead-lettered.
func MaxAttemptsCount(count int) Option {
	return func(d *DLQ) {
		d.MaxAttempts = count
	}
}

// RetryDelays sets the range of the jittered backoff between handler runs.
func RetryDelays(base, maxDelay time.Duration) Option {
	return func(d *DLQ) {
		d.baseRetryDelay = base
		d.maxRetryDelay = maxDelay
	}
}

// WithWriter replaces the kafka writer, mostly for tests.
func WithWriter(w MessageWriter) Option {
	return func(d *DLQ) {
		d.writer = w
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *DLQ) {
		d.now = now
	}
}

func (d *DLQ) validate() error {
	var errs []error

	if d.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("max attempts %d: must be > 0", d.MaxAttempts))
	}
	if d.baseRetryDelay <= 0 || d.maxRetryDelay < d.baseRetryDelay {
		errs = append(errs, fmt.Errorf("retry delays %s..%s: need 0 < base <= max", d.baseRetryDelay, d.maxRetryDelay))
	}
	if d.now == nil {
		errs = append(errs, errors.New("clock must not be nil"))
	}

	return errors.Join(errs...)
}
