// Package cache memoizes expensive loads per key for a fixed TTL.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type Entry[V any] struct {
	Value     V
	FetchedAt time.Time
}

// TTLCache stores one entry per key. Expired entries are replaced by the next
// GetOrLoad; concurrent misses for the same key share a single load.
type TTLCache[V any] struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]Entry[V]
	group   singleflight.Group
}

type Option[V any] func(*TTLCache[V])

// WithClock replaces time.Now, for tests.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *TTLCache[V]) { c.now = now }
}

func New[V any](ttl time.Duration, opts ...Option[V]) *TTLCache[V] {
	c := &TTLCache[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]Entry[V]),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *TTLCache[V]) TTL() time.Duration {
	return c.ttl
}

// Fresh reports whether e is still inside the validity window.
func (c *TTLCache[V]) Fresh(e Entry[V]) bool {
	return c.now().Sub(e.FetchedAt) < c.ttl
}

// Get returns the entry for key when it is present and fresh.
func (c *TTLCache[V]) Get(key string) (Entry[V], bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.Fresh(e) {
		return Entry[V]{}, false
	}
	return e, true
}

func (c *TTLCache[V]) Set(key string, v V) Entry[V] {
	e := Entry[V]{Value: v, FetchedAt: c.now()}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return e
}

func (c *TTLCache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// GetOrLoad returns the fresh entry for key, or runs load once for all
// concurrent callers and stores its result. Failed loads are not cached.
// load keeps ctx's values but not its cancellation; bound it with its own timeout.
// hit is true when no load was needed.
func (c *TTLCache[V]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (e Entry[V], hit bool, err error) {
	if e, ok := c.Get(key); ok {
		return e, true, nil
	}

	res, err, _ := c.group.Do(key, func() (any, error) {
		// another flight may have finished between Get and Do
		if e, ok := c.Get(key); ok {
			return e, nil
		}
		// the flight is shared, so one caller going away must not fail the others
		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		return c.Set(key, v), nil
	})
	if err != nil {
		return Entry[V]{}, false, err
	}
	return res.(Entry[V]), false, nil
}
