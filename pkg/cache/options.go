package cache

import (
	"errors"
	"time"
)

const _defaultName = "default"

type Option func(*options)

type options struct {
	name string
	now  func() time.Time
}

// WithName sets the "type" label used for this cache's metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func (o *options) validate() error {
	if o.name == "" {
		return errors.New("cache name must not be empty")
	}
	if o.now == nil {
		return errors.New("clock must not be nil")
	}
	return nil
}
