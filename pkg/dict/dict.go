package dict

import (
	"fmt"
	"strings"
)

// Storage is the contract a storage strategy implements. Dict derives the
// entire dictionary API from these five operations, so a strategy only
// decides how entries are held and in which order they come back out:
// HashDict keeps them in a hash map, SortedDict in a key-ordered slice, and
// callers may plug in strategies of their own via New.
//
// Insert and Remove state preconditions instead of checking them: Dict
// always performs the corresponding Lookup first, and a custom caller
// driving a Storage directly must do the same.
type Storage[K comparable, V any] interface {
	// Lookup returns the entry stored under key.
	Lookup(key K) (Entry[K, V], bool)

	// Insert adds entry to the storage. The caller guarantees that no
	// entry with entry.Key is currently stored.
	Insert(entry Entry[K, V])

	// Remove deletes the entry stored under entry.Key. The caller
	// guarantees that such an entry exists.
	Remove(entry Entry[K, V])

	// Entries returns a snapshot of all stored entries, each exactly once,
	// in the strategy's natural order. Mutating the returned slice must
	// not affect the storage.
	Entries() []Entry[K, V]

	// Len returns the number of stored entries.
	Len() int
}

// Dict derives the full dictionary API from a Storage strategy. It owns the
// one-entry-per-key invariant and the replace-on-write semantics, while the
// strategy decides lookup mechanics and iteration order.
//
// Dict is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own synchronization.
type Dict[K comparable, V any] struct {
	storage Storage[K, V]
}

// New returns a dictionary deriving its API from storage.
// It panics if storage is nil.
func New[K comparable, V any](storage Storage[K, V]) *Dict[K, V] {
	if storage == nil {
		panic("dict: storage must not be nil")
	}
	return &Dict[K, V]{storage: storage}
}

// Set stores value under key. An existing entry is removed before the new
// one is inserted, so strategies that attach meaning to insertion observe a
// replacement rather than an in-place mutation.
func (d *Dict[K, V]) Set(key K, value V) {
	if entry, ok := d.storage.Lookup(key); ok {
		d.storage.Remove(entry)
	}
	d.storage.Insert(NewEntry(key, value))
}

// Update stores value under key. It is an alias of Set kept for parity with
// the classic dictionary surface.
func (d *Dict[K, V]) Update(key K, value V) {
	d.Set(key, value)
}

// Get returns the value stored under key.
// It returns ErrKeyNotFound when the key is absent.
func (d *Dict[K, V]) Get(key K) (V, error) {
	entry, ok := d.storage.Lookup(key)
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return entry.Value, nil
}

// Lookup returns the value stored under key and whether the key is present.
func (d *Dict[K, V]) Lookup(key K) (V, bool) {
	entry, ok := d.storage.Lookup(key)
	return entry.Value, ok
}

// GetOrDefault returns the value stored under key, or fallback when the key
// is absent. The dictionary is never modified.
func (d *Dict[K, V]) GetOrDefault(key K, fallback V) V {
	if entry, ok := d.storage.Lookup(key); ok {
		return entry.Value
	}
	return fallback
}

// SetDefault returns the value stored under key. When the key is absent it
// first inserts fallback and then returns it.
func (d *Dict[K, V]) SetDefault(key K, fallback V) V {
	if entry, ok := d.storage.Lookup(key); ok {
		return entry.Value
	}
	d.storage.Insert(NewEntry(key, fallback))
	return fallback
}

// Pop removes the entry stored under key and returns its value.
// It returns ErrKeyNotFound when the key is absent.
func (d *Dict[K, V]) Pop(key K) (V, error) {
	entry, ok := d.storage.Lookup(key)
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	d.storage.Remove(entry)
	return entry.Value, nil
}

// PopOrDefault removes the entry stored under key and returns its value.
// When the key is absent it returns fallback and leaves the dictionary
// untouched.
func (d *Dict[K, V]) PopOrDefault(key K, fallback V) V {
	entry, ok := d.storage.Lookup(key)
	if !ok {
		return fallback
	}
	d.storage.Remove(entry)
	return entry.Value
}

// Contains reports whether an entry is stored under key.
func (d *Dict[K, V]) Contains(key K) bool {
	_, ok := d.storage.Lookup(key)
	return ok
}

// Len returns the number of stored entries.
func (d *Dict[K, V]) Len() int {
	return d.storage.Len()
}

// Items returns all entries in the storage's iteration order.
func (d *Dict[K, V]) Items() []Entry[K, V] {
	return d.storage.Entries()
}

// Keys returns all keys in the storage's iteration order.
func (d *Dict[K, V]) Keys() []K {
	entries := d.storage.Entries()
	keys := make([]K, len(entries))
	for i, entry := range entries {
		keys[i] = entry.Key
	}
	return keys
}

// Values returns all values in the storage's iteration order.
func (d *Dict[K, V]) Values() []V {
	entries := d.storage.Entries()
	values := make([]V, len(entries))
	for i, entry := range entries {
		values[i] = entry.Value
	}
	return values
}

// ForEach visits entries in the storage's iteration order until fn returns
// false.
func (d *Dict[K, V]) ForEach(fn func(key K, value V) bool) {
	for _, entry := range d.storage.Entries() {
		if !fn(entry.Key, entry.Value) {
			return
		}
	}
}

// Clear removes every entry.
func (d *Dict[K, V]) Clear() {
	for _, entry := range d.storage.Entries() {
		d.storage.Remove(entry)
	}
}

// String renders the dictionary as {'k1': v1, 'k2': v2} in the storage's
// iteration order. For hash-backed storage the order is not stable between
// calls.
func (d *Dict[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, entry := range d.storage.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(entry.String())
	}
	b.WriteByte('}')
	return b.String()
}
