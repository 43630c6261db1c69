package httpt

import (
	"time"

	"golang.org/x/text/language"
)

type Option func(*Handler)

func DefaultLanguage(tag language.Tag) Option {
	return func(h *Handler) {
		h.defaultLanguage = tag
	}
}

func RequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.requestTimeout = d
		}
	}
}

func MaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}
