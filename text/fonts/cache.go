package fonts

import (
	"slices"
	"sync"
)

// lru is a thread-safe cache with a soft size limit.
// When it grows past the limit the least recently used quarter is evicted.
type lru[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*lruEntry[V]
	limit   int
	tick    uint64
}

type lruEntry[V any] struct {
	value V
	atime uint64
}

// newLRU creates a cache holding about limit entries. Zero means unlimited.
func newLRU[K comparable, V any](limit int) *lru[K, V] {
	return &lru[K, V]{
		entries: make(map[K]*lruEntry[V]),
		limit:   limit,
	}
}

func (c *lru[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

func (c *lru[K, V]) set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &lruEntry[V]{value: value, atime: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
}

func (c *lru[K, V]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*lruEntry[V])
	c.tick = 0
}

func (c *lru[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// evict drops the oldest entries until three quarters of the limit remain.
// Caller must hold c.mu.
func (c *lru[K, V]) evict() {
	target := max(c.limit*3/4, 1)
	drop := len(c.entries) - target
	if drop <= 0 {
		return
	}

	type aged struct {
		key   K
		atime uint64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.atime < b.atime:
			return -1
		case a.atime > b.atime:
			return 1
		}
		return 0
	})
	for _, a := range all[:drop] {
		delete(c.entries, a.key)
	}
}
