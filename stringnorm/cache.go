package stringnorm

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// DefaultCacheSize is the number of results a Cached normalizer keeps when
// no size is given.
const DefaultCacheSize = 1024

// Cached memoizes the results of another Normalizer. It is safe for
// concurrent use. Failed normalizations are not cached.
type Cached struct {
	norm Normalizer

	mu    sync.Mutex
	cache *lru.Cache
}

// NewCached wraps norm in an LRU cache of up to size entries. A size <= 0
// selects DefaultCacheSize.
func NewCached(norm Normalizer, size int) *Cached {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cached{norm: norm, cache: lru.New(size)}
}

// Normalize returns the cached result for text, normalizing and caching it
// on a miss.
func (c *Cached) Normalize(text string) (string, error) {
	c.mu.Lock()
	if res, ok := c.cache.Get(text); ok {
		c.mu.Unlock()
		return res.(string), nil
	}
	c.mu.Unlock()

	res, err := c.norm.Normalize(text)
	if err != nil && err != ErrNormalizeComplete {
		return res, err
	}

	c.mu.Lock()
	c.cache.Add(text, res)
	c.mu.Unlock()
	return res, err
}

// Len reports the number of cached results.
func (c *Cached) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Clear drops every cached result.
func (c *Cached) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Clear()
}
