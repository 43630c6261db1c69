package cache

import (
	"time"
)

//go:generate mockgen -source=cache.go -destination=mock/cache.go -package=mock_cache

type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V, ttl time.Duration)
	Delete(key K) bool
	Has(key K) bool
	Len() int
	Capacity() int
	Purge()
	StartCleanup(interval time.Duration)
	StopCleanup()
	SetOnEvicted(onEvicted func(key K, value V))
}

// Eviction reasons reported to metrics.
const (
	ReasonCapacity = "capacity"
	ReasonExpired  = "expired"
	ReasonDeleted  = "deleted"
	ReasonPurged   = "purged"
)
