// Package cache implements the process-local TTL cache (spec §4.1, C1).
// A single map protected by one RWMutex is sufficient here: the workload is
// read-heavy (scraper/trends lookups keyed by request params) and the
// teacher's own APICache equivalent (original_source app/cache.py) made the
// same single-dict-with-lock tradeoff.
package cache

import (
	"sync"
	"time"
)

// entry is owned exclusively by Cache; callers never see it directly.
type entry struct {
	value      any
	insertedAt time.Time
}

// Stats are monotonic counters, safe to read concurrently with Get/Set.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int64
}

// HitRate returns hits/(hits+misses), or 0 if there have been no lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Cache is a single-TTL process-local key->value store with hit/miss
// accounting. Per spec §4.1 this is a non-goal: per-entry TTL is not
// supported, and the "temp_cache shares storage with a different TTL"
// artefact from the source (§9) is deliberately not reproduced — callers
// that need a different effective TTL for one concern construct a second
// *Cache instance (see platform/trends, which runs its own Cache with a
// longer TTL than the scraper gateway's).
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	data    map[string]entry
	hits    int64
	misses  int64
}

// DefaultTTL matches spec §4.1's default of one hour.
const DefaultTTL = time.Hour

// New constructs a Cache with the given TTL. A non-positive ttl falls back
// to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:  ttl,
		data: make(map[string]entry),
	}
}

// Get returns the cached value for key if present and fresh. A stale entry
// is evicted on read (lazy expiry) and counted as a miss, matching the
// source's is_valid/get semantics.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		return nil, false
	}

	if time.Since(e.insertedAt) >= c.ttl {
		c.mu.Lock()
		// Re-check under the write lock: another goroutine may have
		// refreshed this key between the RUnlock above and here.
		if cur, still := c.data[key]; still && time.Since(cur.insertedAt) >= c.ttl {
			delete(c.data, key)
		}
		c.misses++
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return e.value, true
}

// Set unconditionally writes value under key with the current time as its
// insertion timestamp. Concurrent Set calls on the same key are last-writer-
// wins; no ordering across keys is promised (spec §5).
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = entry{value: value, insertedAt: time.Now()}
}

// Sweep removes all stale entries and returns the count removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	now := time.Now()
	for k, e := range c.data {
		if now.Sub(e.insertedAt) >= c.ttl {
			delete(c.data, k)
			removed++
		}
	}
	return removed
}

// Stats returns a point-in-time snapshot of the counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Hits:    c.hits,
		Misses:  c.misses,
		Entries: int64(len(c.data)),
	}
}

// StartSweeper launches a background goroutine that sweeps stale entries
// every interval until stop is closed. Supplements spec §4.1: the source's
// clear_expired() is only ever called on demand; a long-lived HTTP process
// needs a periodic sweep so memory doesn't grow unbounded between requests
// for niches nobody re-queries.
func (c *Cache) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		interval = 2 * c.ttl
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				c.Sweep()
			case <-stop:
				return
			}
		}
	}()
}
