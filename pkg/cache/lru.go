package cache

import (
	"container/list"
	"fmt"
)

// DefaultCapacity is a reasonable capacity for general-purpose caches when
// the workload gives no better number.
const DefaultCapacity = 128

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRUCache is a bounded key-value store with least-recently-used eviction.
// Get and Set promote the touched key to most recently used; inserting a new
// key into a full cache evicts the least recently used entry. Updating an
// existing key never evicts.
//
// LRUCache is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own synchronization.
type LRUCache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	eviction *list.List // front is most recently used
	onEvict  func(key K, value V)
}

// NewLRUCache creates a new LRU cache with the specified capacity.
// The capacity must be positive, otherwise it panics.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	if capacity <= 0 {
		panic("LRU cache capacity must be positive")
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		eviction: list.New(),
	}
}

// SetEvictCallback sets a callback function that is called whenever an entry
// leaves the cache: capacity eviction, Remove, and Clear. This is useful for
// cleanup operations like closing resources.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.onEvict = fn
}

// Get retrieves the value stored under key and marks the key as most
// recently used. It returns ErrKeyNotFound when the key is absent, whether
// it was never written, removed, or already evicted.
func (c *LRUCache[K, V]) Get(key K) (V, error) {
	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	c.eviction.MoveToFront(elem)
	return elem.Value.(*lruEntry[K, V]).value, nil
}

// Set stores value under key and marks the key as most recently used.
// An existing key is updated in place and never triggers eviction. A new key
// written into a cache at capacity evicts exactly one entry, the least
// recently used.
func (c *LRUCache[K, V]) Set(key K, value V) {
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*lruEntry[K, V]).value = value
		return
	}

	c.items[key] = c.eviction.PushFront(&lruEntry[K, V]{key: key, value: value})

	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}
}

// Peek retrieves the value stored under key without touching recency order.
// Returns the value and true if found, zero value and false otherwise.
func (c *LRUCache[K, V]) Peek(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		return elem.Value.(*lruEntry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Contains reports whether key is cached without touching recency order.
func (c *LRUCache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Remove removes an item from the cache.
// Returns the removed value and true if it existed, zero value and false
// otherwise.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*lruEntry[K, V])
		c.removeElement(elem)
		return entry.value, true
	}

	var zero V
	return zero, false
}

// Len returns the number of cached entries.
func (c *LRUCache[K, V]) Len() int {
	return c.eviction.Len()
}

// Keys returns the cached keys ordered from least to most recently used.
func (c *LRUCache[K, V]) Keys() []K {
	keys := make([]K, 0, c.eviction.Len())
	for elem := c.eviction.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, elem.Value.(*lruEntry[K, V]).key)
	}
	return keys
}

// Clear removes all items from the cache.
// If an evict callback is set, it's called for each item in eviction order,
// least recently used first.
func (c *LRUCache[K, V]) Clear() {
	if c.onEvict != nil {
		for elem := c.eviction.Back(); elem != nil; elem = elem.Prev() {
			entry := elem.Value.(*lruEntry[K, V])
			c.onEvict(entry.key, entry.value)
		}
	}

	c.items = make(map[K]*list.Element, c.capacity)
	c.eviction.Init()
}

func (c *LRUCache[K, V]) evictOldest() {
	if elem := c.eviction.Back(); elem != nil {
		c.removeElement(elem)
	}
}

func (c *LRUCache[K, V]) removeElement(elem *list.Element) {
	entry := elem.Value.(*lruEntry[K, V])
	c.eviction.Remove(elem)
	delete(c.items, entry.key)

	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}
