// Package lru implements a least-recently-used cache built from a hash
// table and the arena-backed list: the table maps keys to list handles, the
// list keeps elements in recency order with the most recent at the front.
// All operations are O(1).
package lru

import (
	"iter"

	"github.com/hupe1980/arenakit/arena"
	"github.com/hupe1980/arenakit/list"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a fixed-capacity LRU cache. The zero value is not usable; call
// New. Cache is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	table    map[K]arena.Handle
	list     *list.List[entry[K, V]]
	capacity int
}

// New creates an LRU cache holding at most capacity entries. Capacities
// below 1 are raised to 1.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		table:    make(map[K]arena.Handle, capacity),
		list:     list.New[entry[K, V]](arena.WithCapacity(capacity)),
		capacity: capacity,
	}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.list.Len()
}

// Cap returns the cache capacity.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Put inserts or updates the value for key and marks it most recently used.
// When the cache is full, the least recently used entry is evicted.
func (c *Cache[K, V]) Put(key K, value V) {
	if h, ok := c.table[key]; ok {
		// Existing key: drop the old entry and reinsert at the front.
		_, _ = c.list.Remove(h)
		c.pushFront(key, value)
		return
	}

	if c.list.Len() >= c.capacity {
		if evicted, err := c.list.PopBack(); err == nil {
			delete(c.table, evicted.key)
		}
	}
	c.pushFront(key, value)
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	h, ok := c.table[key]
	if !ok {
		var zero V
		return zero, false
	}

	e, err := c.list.Remove(h)
	if err != nil {
		var zero V
		return zero, false
	}
	c.pushFront(e.key, e.value)

	return e.value, true
}

// Peek returns the value for key without affecting recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	h, ok := c.table[key]
	if !ok {
		var zero V
		return zero, false
	}
	e, err := c.list.Get(h)
	if err != nil {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Remove drops key from the cache and returns its value.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	h, ok := c.table[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(c.table, key)
	e, err := c.list.Remove(h)
	if err != nil {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Clear empties the cache in O(1) list teardown plus table reset.
func (c *Cache[K, V]) Clear() {
	c.list.Clear()
	clear(c.table)
}

// All returns an iterator over the cached entries, most recently used
// first. The cache must not be modified during iteration.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range c.list.Values() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

func (c *Cache[K, V]) pushFront(key K, value V) {
	// Allocation cannot fail here: the list never outgrows capacity+1
	// slots and the arena has no slot ceiling configured.
	h, _ := c.list.PushFront(entry[K, V]{key: key, value: value})
	c.table[key] = h
}
