package dict

import "fmt"

// Entry is a single key/value pair held by a dictionary. Identity is defined
// by the key alone: storage strategies locate and remove entries by Key and
// never consult Value, so two entries with equal keys denote the same slot
// regardless of their values.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// NewEntry returns an entry pairing key with value.
func NewEntry[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// String renders the entry as 'key': value.
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("'%v': %v", e.Key, e.Value)
}
