/*
Package memoize provides a per-argument result cache for the detection
functions. Results are computed lazily on the first call for a key and
never evicted, so for a fixed environment every lookup is stable for the
lifetime of the process.
*/
package memoize

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

type result[V any] struct {
	value V
	err   error
}

// Cache memoizes the result of a computation by string key. The zero
// value is ready to use. It is safe for concurrent use; concurrent first
// calls for the same key run the computation only once.
type Cache[V any] struct {
	group   singleflight.Group
	mu      sync.RWMutex
	results map[string]result[V]
}

// Do returns the cached result for key, computing and storing it on the
// first call. Errors are cached just like values: a computation that
// failed once fails the same way on every later call.
func (c *Cache[V]) Do(key string, compute func() (V, error)) (V, error) {
	c.mu.RLock()
	r, ok := c.results[key]
	c.mu.RUnlock()

	if ok {
		return r.value, r.err
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		value, err := compute()

		c.mu.Lock()
		if c.results == nil {
			c.results = map[string]result[V]{}
		}
		c.results[key] = result[V]{value: value, err: err}
		c.mu.Unlock()

		return value, err
	})

	value, _ := v.(V)
	return value, err
}
