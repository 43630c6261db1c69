package cache

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"freightqa/pkg/logger"
	"freightqa/pkg/metric"
)

var _ Cache[string, int] = (*LRUCache[string, int])(nil)

// LRUCache is a fixed-capacity cache with optional per-entry TTL. Expired
// entries are dropped lazily on access and by the background cleanup.
type LRUCache[K comparable, V any] struct {
	mutex   sync.Mutex
	items   map[K]*list.Element
	order   *list.List
	log     logger.Logger
	metrics metric.Cache
	opts    options

	capacity    int
	cleanupStop chan struct{}
	onEvicted   func(key K, value V)
}

type entry[K comparable, V any] struct {
	key     K
	value   V
	expires time.Time
}

func (e *entry[K, V]) expired(now time.Time) bool {
	return !e.expires.IsZero() && now.After(e.expires)
}

func NewLRUCache[K comparable, V any](
	capacity int,
	log logger.Logger,
	metrics metric.Cache,
	opts ...Option,
) (*LRUCache[K, V], error) {
	const op = "cache.NewLRUCache"

	if capacity <= 0 {
		return nil, fmt.Errorf("%s: capacity must be positive, got %d", op, capacity)
	}

	o := options{name: _defaultName, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
		log:      log,
		metrics:  metrics,
		opts:     o,
	}, nil
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mutex.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mutex.Unlock()
		c.metrics.Miss(c.opts.name)
		return zero, false
	}

	e := elem.Value.(*entry[K, V])
	if e.expired(c.opts.now()) {
		evicted := c.remove(elem)
		c.mutex.Unlock()
		c.evicted([]*entry[K, V]{evicted}, ReasonExpired)
		c.metrics.Miss(c.opts.name)
		return zero, false
	}

	c.order.MoveToFront(elem)
	c.mutex.Unlock()

	c.metrics.Hit(c.opts.name)
	return e.value, true
}

// Put stores value under key. A ttl of zero or less never expires.
func (c *LRUCache[K, V]) Put(key K, value V, ttl time.Duration) {
	var expires time.Time
	if ttl > 0 {
		expires = c.opts.now().Add(ttl)
	}

	c.mutex.Lock()
	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*entry[K, V])
		e.value = value
		e.expires = expires
		c.order.MoveToFront(elem)
		c.mutex.Unlock()
		return
	}

	var evicted []*entry[K, V]
	for c.order.Len() >= c.capacity {
		evicted = append(evicted, c.remove(c.order.Back()))
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{
		key:     key,
		value:   value,
		expires: expires,
	})
	size := c.order.Len()
	c.mutex.Unlock()

	c.evicted(evicted, ReasonCapacity)
	c.metrics.Size(c.opts.name, size)
}

func (c *LRUCache[K, V]) Delete(key K) bool {
	c.mutex.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mutex.Unlock()
		return false
	}
	e := c.remove(elem)
	c.mutex.Unlock()

	c.evicted([]*entry[K, V]{e}, ReasonDeleted)
	return true
}

func (c *LRUCache[K, V]) Has(key K) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return false
	}
	return !elem.Value.(*entry[K, V]).expired(c.opts.now())
}

func (c *LRUCache[K, V]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.order.Len()
}

func (c *LRUCache[K, V]) Capacity() int {
	return c.capacity
}

func (c *LRUCache[K, V]) Purge() {
	c.mutex.Lock()
	evicted := make([]*entry[K, V], 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		evicted = append(evicted, elem.Value.(*entry[K, V]))
	}
	c.order.Init()
	clear(c.items)
	c.mutex.Unlock()

	c.evicted(evicted, ReasonPurged)
}

// StartCleanup drops expired entries every interval until StopCleanup.
// Calling it again restarts the loop with the new interval.
func (c *LRUCache[K, V]) StartCleanup(interval time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.cleanupStop != nil {
		close(c.cleanupStop)
	}

	stop := make(chan struct{})
	c.cleanupStop = stop
	go c.runCleanup(interval, stop)
}

func (c *LRUCache[K, V]) StopCleanup() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.cleanupStop != nil {
		close(c.cleanupStop)
		c.cleanupStop = nil
	}
}

func (c *LRUCache[K, V]) SetOnEvicted(onEvicted func(key K, value V)) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.onEvicted = onEvicted
}

func (c *LRUCache[K, V]) runCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanupExpired()
		case <-stop:
			return
		}
	}
}

func (c *LRUCache[K, V]) cleanupExpired() {
	now := c.opts.now()

	c.mutex.Lock()
	var evicted []*entry[K, V]
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*entry[K, V]).expired(now) {
			evicted = append(evicted, c.remove(elem))
		}
		elem = prev
	}
	remaining := c.order.Len()
	c.mutex.Unlock()

	if len(evicted) == 0 {
		return
	}

	c.evicted(evicted, ReasonExpired)
	c.log.Debug("cache cleanup completed",
		"cache", c.opts.name,
		"removed", len(evicted),
		"remaining", remaining,
	)
}

// remove unlinks elem; c.mutex must be held.
func (c *LRUCache[K, V]) remove(elem *list.Element) *entry[K, V] {
	e := c.order.Remove(elem).(*entry[K, V])
	delete(c.items, e.key)
	return e
}

// evicted runs the callback and metrics outside the lock.
func (c *LRUCache[K, V]) evicted(entries []*entry[K, V], reason string) {
	if len(entries) == 0 {
		return
	}

	c.mutex.Lock()
	onEvicted := c.onEvicted
	size := c.order.Len()
	c.mutex.Unlock()

	for _, e := range entries {
		if onEvicted != nil {
			onEvicted(e.key, e.value)
		}
		c.metrics.Eviction(c.opts.name, reason)
	}
	c.metrics.Size(c.opts.name, size)
}
