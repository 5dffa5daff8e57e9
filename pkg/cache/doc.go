// Package cache provides a generic LRU (Least Recently Used) cache for
// keeping a bounded working set of key-value data in memory.
//
// The cache automatically evicts the least recently used entry when a new
// key is written at capacity, making it ideal for scenarios where you need
// to cache data but want to prevent unbounded memory growth.
//
// # Key Features
//
//   - Generic implementation supporting any comparable key type and any value type
//   - Automatic LRU eviction when capacity is exceeded
//   - Reads and writes promote the touched key to most recently used
//   - Peek and Contains for recency-neutral inspection
//   - Optional eviction callbacks for resource cleanup (e.g., closing files, connections)
//   - O(1) operations for Get, Set, and Remove
//
// # Usage
//
// Create a cache with a specified capacity, or fall back to DefaultCapacity:
//
//	c := cache.NewLRUCache[string, []byte](cache.DefaultCapacity)
//
// Basic operations:
//
//	// Add items to the cache
//	c.Set("user:123", userData)
//	c.Set("session:abc", sessionData)
//
//	// Retrieve items (marks as recently used)
//	data, err := c.Get("user:123")
//	if errors.Is(err, cache.ErrKeyNotFound) {
//		// Never written, removed, or evicted
//	}
//
//	// Inspect without disturbing the eviction order
//	data, found := c.Peek("user:123")
//	if c.Contains("session:abc") {
//		// Still cached
//	}
//
//	// Remove specific items
//	removed, existed := c.Remove("user:123")
//
//	// Clear all items
//	c.Clear()
//
// # Eviction Semantics
//
// When a new key is written into a cache at capacity:
//
//  1. The least recently used entry is identified
//  2. If an eviction callback is set, it's called with the entry's key and value
//  3. The entry is removed
//  4. The new entry is added as most recently used
//
// Updating an existing key never evicts, no matter how full the cache is.
// Entries are considered recently used when they are:
//   - Retrieved with Get
//   - Added or updated with Set
//
// Peek and Contains deliberately leave the order untouched, so monitoring
// code can inspect the cache without protecting entries from eviction.
//
// # Resource Cleanup
//
// For resources that need cleanup when dropped (like file handles or
// network connections), use eviction callbacks:
//
//	c := cache.NewLRUCache[string, *os.File](10)
//	c.SetEvictCallback(func(path string, f *os.File) {
//		f.Close()
//	})
//
// The callback runs for entries dropped by capacity eviction, by Remove, and
// by Clear.
//
// # Concurrency
//
// LRUCache is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own synchronization.
//
// # Performance Characteristics
//
//   - Get: O(1) average case
//   - Set: O(1) average case
//   - Remove: O(1) average case
//   - Keys: O(n)
//   - Memory overhead: Approximately 3x the size of stored values due to
//     internal bookkeeping structures
package cache
