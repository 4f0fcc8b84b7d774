package gate

import (
	"sync"
	"sync/atomic"
	"time"
)

// GrantCache is a TTL-based in-memory cache with stale-while-revalidate.
// Uses sync.Map for lock-free reads on the hot path.
type GrantCache struct {
	store sync.Map // map[string]*cacheEntry
	ttl   time.Duration
}

type cacheEntry struct {
	grant      *GrantContext
	expiresAt  time.Time
	refreshing atomic.Bool
}

// GrantCacheGetResult holds the result of a cache lookup.
type GrantCacheGetResult struct {
	Grant        *GrantContext
	Hit          bool
	NeedsRefresh bool
}

// NewGrantCache creates a cache with the given TTL.
func NewGrantCache(ttl time.Duration) *GrantCache {
	return &GrantCache{ttl: ttl}
}

// Get performs a non-blocking cache lookup.
func (c *GrantCache) Get(key string) GrantCacheGetResult {
	val, ok := c.store.Load(key)
	if !ok {
		return GrantCacheGetResult{Hit: false}
	}

	entry := val.(*cacheEntry)
	now := time.Now()

	if now.Before(entry.expiresAt) {
		return GrantCacheGetResult{
			Grant: entry.grant,
			Hit:   true,
		}
	}

	needsRefresh := entry.refreshing.CompareAndSwap(false, true)
	return GrantCacheGetResult{
		Grant:        entry.grant,
		Hit:          true,
		NeedsRefresh: needsRefresh,
	}
}

// Set stores a grant context with a fresh TTL.
func (c *GrantCache) Set(key string, grant *GrantContext) {
	c.store.Store(key, &cacheEntry{
		grant:     grant,
		expiresAt: time.Now().Add(c.ttl),
	})
}

// Delete removes an entry from the cache.
func (c *GrantCache) Delete(key string) {
	c.store.Delete(key)
}
