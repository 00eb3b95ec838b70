// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

// Package cache provides a small thread-safe TTL cache for read-mostly
// dashboard data such as the dropdown option lists.
//
//	options := cache.New[*models.DropdownOptions]("dropdown_options", 5*time.Minute)
//	if v, ok := options.Get("all"); ok {
//	    return v, nil
//	}
//
// Expired entries are dropped lazily on Get and swept on Set, so the cache
// runs no goroutine of its own.
package cache

import (
	"sync"
	"time"

	"github.com/tomtom215/academicworld/internal/metrics"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Stats is a point-in-time view of cache activity.
type Stats struct {
	Hits   int64
	Misses int64
	Keys   int
}

// Cache maps string keys to values of type V for a fixed TTL.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	name    string
	now     func() time.Time
	hits    int64
	misses  int64
}

// New creates a cache whose hits and misses are exported under the
// cache_type label name.
func New[V any](name string, ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		name:    name,
		now:     time.Now,
	}
}

// Get returns the live value for key.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.now().Before(e.expiresAt) {
		c.record(true)
		return e.value, true
	}
	if ok {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if cur, still := c.entries[key]; still && !c.now().Before(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
	}
	c.record(false)
	var zero V
	return zero, false
}

// Set stores value under key for the cache TTL.
func (c *Cache[V]) Set(key string, value V) {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = entry[V]{value: value, expiresAt: now.Add(c.ttl)}
}

// Stats returns the counters and the number of stored keys, expired ones
// included until they are swept.
func (c *Cache[V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{Hits: c.hits, Misses: c.misses, Keys: len(c.entries)}
}

func (c *Cache[V]) record(hit bool) {
	c.mu.Lock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
	c.mu.Unlock()

	if hit {
		metrics.CacheHits.WithLabelValues(c.name).Inc()
	} else {
		metrics.CacheMisses.WithLabelValues(c.name).Inc()
	}
}
