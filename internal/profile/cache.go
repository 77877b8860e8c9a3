package profile

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ryanmello/devboard/internal/domain"
	"github.com/ryanmello/devboard/internal/metrics"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedUserEntry wraps a base user record with version metadata
type cachedUserEntry struct {
	Version  string
	User     *domain.User
	CachedAt time.Time
}

// userCache is a time-bounded LRU for base user lookups keyed by username.
// Entries expire rather than being mutated in place; mutations (follow,
// account updates) invalidate the affected usernames instead.
type userCache struct {
	lru *expirable.LRU[string, *cachedUserEntry]
}

func newUserCache(size int, ttl time.Duration) *userCache {
	return &userCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](size, nil, ttl),
	}
}

// Get retrieves a user from the cache.
// Returns (nil, false) if not cached, expired, or version mismatch.
func (c *userCache) Get(username string) (*domain.User, bool) {
	entry, found := c.lru.Get(username)
	if !found {
		metrics.ProfileCacheMisses.Inc()
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(username)
		metrics.ProfileCacheMisses.Inc()
		return nil, false
	}
	metrics.ProfileCacheHits.Inc()
	return entry.User, true
}

// Set stores a user in the cache with the current schema version
func (c *userCache) Set(username string, user *domain.User) {
	c.lru.Add(username, &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     user,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a user from the cache after a mutation
func (c *userCache) Invalidate(username string) {
	c.lru.Remove(username)
}

// Clear removes all entries from the cache
func (c *userCache) Clear() {
	c.lru.Purge()
}
