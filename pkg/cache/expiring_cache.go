// Package cache provides the time-bounded memoization primitive used for
// resolved keyword dictionaries.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

const (
	defaultNumCounters = 1e5
	defaultMaxCost     = 1e4
	defaultBufferItems = 64

	// DefaultTTL bounds how long a cached keyword dictionary may be
	// served before it is recomputed.
	DefaultTTL = 30 * time.Second
)

// ExpiringCache is a string-keyed cache whose entries expire after a
// fixed TTL.  Entries are admitted synchronously: a Get immediately
// following a Put observes the entry.
type ExpiringCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewExpiringCache constructs a cache with the given TTL.  A
// non-positive TTL selects DefaultTTL.
func NewExpiringCache(ttl time.Duration) (*ExpiringCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: defaultNumCounters,
		MaxCost:     defaultMaxCost,
		BufferItems: defaultBufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &ExpiringCache{cache: cache, ttl: ttl}, nil
}

// Get returns the live entry for key, if any.
func (c *ExpiringCache) Get(key string) (any, bool) {
	return c.cache.Get(key)
}

// Put stores value under key with the cache's TTL.
func (c *ExpiringCache) Put(key string, value any) {
	c.cache.SetWithTTL(key, value, 1, c.ttl)
	c.cache.Wait()
}

// Del drops the entry for key, if present.
func (c *ExpiringCache) Del(key string) {
	c.cache.Del(key)
}

// Clear drops every entry.
func (c *ExpiringCache) Clear() {
	c.cache.Clear()
}

// TTL returns the configured entry lifetime.
func (c *ExpiringCache) TTL() time.Duration {
	return c.ttl
}
