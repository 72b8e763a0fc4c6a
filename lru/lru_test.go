package lru

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys[K comparable, V any](c *Cache[K, V]) []K {
	var out []K
	for k := range c.All() {
		out = append(out, k)
	}
	return out
}

func TestCache_RecencyOrder(t *testing.T) {
	c := New[string, int](4)

	c.Put("a", 1)
	assert.Equal(t, []string{"a"}, keys(c))

	c.Put("b", 1)
	assert.Equal(t, []string{"b", "a"}, keys(c))

	c.Put("c", 1)
	assert.Equal(t, []string{"c", "b", "a"}, keys(c))

	c.Put("d", 1)
	assert.Equal(t, []string{"d", "c", "b", "a"}, keys(c))

	// Full: inserting e evicts the least recently used (a).
	c.Put("e", 1)
	assert.Equal(t, []string{"e", "d", "c", "b"}, keys(c))

	// Get promotes to the front.
	_, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "e", "d", "c"}, keys(c))

	_, ok = c.Get("c")
	require.True(t, ok)
	assert.Equal(t, []string{"c", "b", "e", "d"}, keys(c))
}

func TestCache_PutUpdatesExisting(t *testing.T) {
	c := New[string, int](4)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 10)

	require.Equal(t, 2, c.Len(), "updating a key must not insert a duplicate")
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, []string{"a", "b"}, keys(c))
}

func TestCache_GetMiss(t *testing.T) {
	c := New[string, int](2)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3) // evicts a

	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestCache_PeekDoesNotPromote(t *testing.T) {
	c := New[string, int](2)

	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Peek("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"b", "a"}, keys(c), "peek must not change recency")

	c.Put("c", 3) // still evicts a
	_, ok = c.Peek("a")
	assert.False(t, ok)
}

func TestCache_Remove(t *testing.T) {
	c := New[string, int](2)

	c.Put("a", 1)
	v, ok := c.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, c.Len())

	_, ok = c.Remove("a")
	assert.False(t, ok)
}

func TestCache_Clear(t *testing.T) {
	c := New[string, int](4)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)

	// Behaves like a fresh cache afterwards.
	c.Put("x", 9)
	v, ok := c.Get("x")
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestCache_SlotChurnStaysBounded(t *testing.T) {
	c := New[int, int](8)

	for i := 0; i < 1000; i++ {
		c.Put(i, i)
	}

	assert.Equal(t, 8, c.Len())
	// Eviction frees a slot before each insert, so the arena never grows
	// past the cache capacity.
	assert.LessOrEqual(t, c.list.Stats().Capacity, 8)
}
