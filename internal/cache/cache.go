// Copyright 2023 Frederik Zipp. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements a fixed-capacity, open-addressed memo table:
// a lossy cache with no eviction policy beyond overwrite-on-collision.
// A miss is always safe, since the caller recomputes the value; the cache
// never grows past its initial capacity.
package cache

// Cache memoizes values of type V keyed by K, in a table of fixed size.
// It never grows past the capacity given to New.
type Cache[K comparable, V any] struct {
	capacity int
	used     []bool
	keys     []K
	values   []V
	hash     func(K) uint64
}

// New returns a Cache with room for capacity entries, hashing keys with
// hash. capacity should typically be sized to a small multiple of the
// expected number of distinct keys (the visibility-graph builders size it
// to 10x the point count).
func New[K comparable, V any](capacity int, hash func(K) uint64) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		capacity: capacity,
		used:     make([]bool, capacity),
		keys:     make([]K, capacity),
		values:   make([]V, capacity),
		hash:     hash,
	}
}

func (c *Cache[K, V]) slot(key K) int {
	return int(c.hash(key) % uint64(c.capacity))
}

// Find returns the cached value for key and true, or the zero value and
// false if it is not present (either never inserted, or evicted by a hash
// collision with a different key).
func (c *Cache[K, V]) Find(key K) (V, bool) {
	i := c.slot(key)
	if c.used[i] && c.keys[i] == key {
		return c.values[i], true
	}
	var zero V
	return zero, false
}

// Insert stores value under key, overwriting whatever (if anything)
// previously occupied that slot.
func (c *Cache[K, V]) Insert(key K, value V) {
	i := c.slot(key)
	c.used[i] = true
	c.keys[i] = key
	c.values[i] = value
}
