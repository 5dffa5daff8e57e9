package dict

// HashDict is the unordered dictionary. Entries live in a hash map indexed
// by key, giving constant-time lookup, insert, and remove on average.
// Iteration order is whatever map traversal yields and may differ between
// snapshots.
type HashDict[K comparable, V any] struct {
	Dict[K, V]
}

// NewHashDict returns an empty hash-backed dictionary.
func NewHashDict[K comparable, V any]() *HashDict[K, V] {
	return &HashDict[K, V]{Dict: Dict[K, V]{storage: &hashStorage[K, V]{
		entries: make(map[K]Entry[K, V]),
	}}}
}

type hashStorage[K comparable, V any] struct {
	entries map[K]Entry[K, V]
}

func (s *hashStorage[K, V]) Lookup(key K) (Entry[K, V], bool) {
	entry, ok := s.entries[key]
	return entry, ok
}

func (s *hashStorage[K, V]) Insert(entry Entry[K, V]) {
	s.entries[entry.Key] = entry
}

func (s *hashStorage[K, V]) Remove(entry Entry[K, V]) {
	delete(s.entries, entry.Key)
}

func (s *hashStorage[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	return entries
}

func (s *hashStorage[K, V]) Len() int {
	return len(s.entries)
}
