package dict

import (
	"fmt"
	"slices"
	"sort"

	"golang.org/x/exp/constraints"
)

// SortedDict is the ordered dictionary. Entries are kept in a slice sorted
// by key in strictly increasing order, positioned by binary search on every
// access. Iteration, Keys, Values, Items, and String always observe
// ascending key order, and the order statistics BisectLeft, BisectRight,
// and PeekItem come with the layout.
type SortedDict[K constraints.Ordered, V any] struct {
	Dict[K, V]
	sorted *sortedStorage[K, V]
}

// NewSortedDict returns an empty sorted dictionary.
func NewSortedDict[K constraints.Ordered, V any]() *SortedDict[K, V] {
	s := &sortedStorage[K, V]{}
	return &SortedDict[K, V]{Dict: Dict[K, V]{storage: s}, sorted: s}
}

// BisectLeft returns the number of stored keys strictly less than key: the
// leftmost position at which key could be inserted without breaking order.
func (d *SortedDict[K, V]) BisectLeft(key K) int {
	return d.sorted.bisectLeft(key)
}

// BisectRight returns the number of stored keys less than or equal to key:
// the position just past key if it is stored, BisectLeft(key) otherwise.
func (d *SortedDict[K, V]) BisectRight(key K) int {
	return d.sorted.bisectRight(key)
}

// PeekItem returns the entry at index in ascending key order without
// removing it. Negative indexes count from the end, -1 addressing the last
// entry. Indexes outside [-Len(), Len()) return ErrIndexOutOfRange.
func (d *SortedDict[K, V]) PeekItem(index int) (Entry[K, V], error) {
	size := len(d.sorted.entries)
	if index < -size || index >= size {
		return Entry[K, V]{}, fmt.Errorf("%w: %d outside [%d, %d)", ErrIndexOutOfRange, index, -size, size)
	}
	if index < 0 {
		index += size
	}
	return d.sorted.entries[index], nil
}

// sortedStorage holds entries ascending by key, one entry per key.
type sortedStorage[K constraints.Ordered, V any] struct {
	entries []Entry[K, V]
}

func (s *sortedStorage[K, V]) bisectLeft(key K) int {
	return sort.Search(len(s.entries), func(i int) bool { return s.entries[i].Key >= key })
}

func (s *sortedStorage[K, V]) bisectRight(key K) int {
	return sort.Search(len(s.entries), func(i int) bool { return s.entries[i].Key > key })
}

func (s *sortedStorage[K, V]) Lookup(key K) (Entry[K, V], bool) {
	if i := s.bisectLeft(key); i < len(s.entries) && s.entries[i].Key == key {
		return s.entries[i], true
	}
	return Entry[K, V]{}, false
}

func (s *sortedStorage[K, V]) Insert(entry Entry[K, V]) {
	s.entries = slices.Insert(s.entries, s.bisectLeft(entry.Key), entry)
}

func (s *sortedStorage[K, V]) Remove(entry Entry[K, V]) {
	if i := s.bisectLeft(entry.Key); i < len(s.entries) && s.entries[i].Key == entry.Key {
		s.entries = slices.Delete(s.entries, i, i+1)
	}
}

func (s *sortedStorage[K, V]) Entries() []Entry[K, V] {
	return slices.Clone(s.entries)
}

func (s *sortedStorage[K, V]) Len() int {
	return len(s.entries)
}
