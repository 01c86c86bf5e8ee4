// Package cache implements a small bounded cache that evicts the entry
// that was inserted first once the maximum size is reached.
package cache

type Cache[K comparable, V any] struct {
	max     int
	entries map[K]V
	order   []K
	next    int
}

func New[K comparable, V any](max int) *Cache[K, V] {
	if max < 1 {
		max = 1
	}
	return &Cache[K, V]{
		max:     max,
		entries: make(map[K]V, max),
		order:   make([]K, 0, max),
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Set stores val under key. Setting a key that is already present leaves
// the existing value in place, like the original insert-only behavior.
func (c *Cache[K, V]) Set(key K, val V) {
	if _, ok := c.entries[key]; ok {
		return
	}

	if len(c.order) < c.max {
		c.entries[key] = val
		c.order = append(c.order, key)
		return
	}

	// The order slice is full; reuse it as a ring.
	oldest := c.order[c.next]
	delete(c.entries, oldest)
	c.entries[key] = val
	c.order[c.next] = key
	c.next = (c.next + 1) % c.max
}

func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]V, c.max)
	c.order = c.order[:0]
	c.next = 0
}
