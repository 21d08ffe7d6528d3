// Package cache provides a typed in-memory read-through cache used to
// memoize name-grammar searches over the particle table.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/hepkit/pdg/internal/log"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// Cache is a typed wrapper over an expiring in-memory store.
type Cache[V any] struct {
	useCase string
	store   *gocache.Cache
}

// New initializes a cache with the given expiration and cleanup
// interval.
func New[V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *Cache[V] {
	return &Cache[V]{
		useCase: useCase,
		store:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves an item from the cache by its key.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	value, found := c.store.Get(key)
	if !found {
		return zero, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "useCase", c.useCase, "key", key)
		return zero, false
	}

	log.Debug(log.CatCache, "cache hit", "useCase", c.useCase, "key", key)
	return v, true
}

// Set stores an item under the key with the default expiration.
func (c *Cache[V]) Set(key string, value V) {
	c.store.SetDefault(key, value)
}

// GetOrCompute returns the cached value for key, computing and storing
// it on a miss.
func (c *Cache[V]) GetOrCompute(key string, compute func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute()
	c.Set(key, v)
	return v
}

// Flush discards every cached entry. Called when the underlying table
// is replaced.
func (c *Cache[V]) Flush() {
	c.store.Flush()
}
