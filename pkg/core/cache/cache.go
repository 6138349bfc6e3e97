// ============================================================================
// fixstr - Fixed-length immutable strings
// ============================================================================
//
// Package:     cache
// Description: Bounded thread-safe memo for computed string properties
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package cache

import "sync"

// Cache is a thread-safe in-memory cache holding at most MaxItems entries.
// When full, the oldest inserted entry is evicted.
type Cache[V any] struct {
	mu       sync.RWMutex
	items    map[string]V
	order    []string
	maxItems int

	// Metrics
	hits   int64
	misses int64
}

// Config holds cache configuration
type Config struct {
	MaxItems int
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{MaxItems: 4096}
}

// New creates a new cache instance
func New[V any](cfg Config) *Cache[V] {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	return &Cache[V]{
		items:    make(map[string]V),
		maxItems: cfg.MaxItems,
	}
}

// Get retrieves a value from the cache
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Set stores a value, replacing any previous value for key
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// set must be called with the lock held
func (c *Cache[V]) set(key string, value V) {
	if _, exists := c.items[key]; !exists {
		if len(c.items) >= c.maxItems {
			c.evictOldest()
		}
		c.order = append(c.order, key)
	}
	c.items[key] = value
}

// evictOldest removes the first inserted entry (must be called with lock held)
func (c *Cache[V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	delete(c.items, c.order[0])
	// the slot stays in the backing array until append reallocates
	c.order[0] = ""
	c.order = c.order[1:]
}

// Delete removes a value from the cache
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok {
		return
	}
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear removes all items from the cache
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]V)
	c.order = nil
}

// Size returns the number of items in the cache
func (c *Cache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns cache statistics
func (c *Cache[V]) Stats() (hits, misses int64, hitRate float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hits = c.hits
	misses = c.misses
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// GetOrSet returns the cached value for key, computing and storing it with
// fn on a miss. fn runs under the write lock, so concurrent callers for the
// same key compute it once.
func (c *Cache[V]) GetOrSet(key string, fn func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.items[key]; ok {
		c.hits++
		return v
	}
	c.misses++
	v := fn()
	c.set(key, v)
	return v
}
