// Package dict provides generic dictionary containers built around a small
// storage contract.
//
// A Storage strategy supplies five primitives (Lookup, Insert, Remove,
// Entries, Len) and the Dict core derives the entire dictionary API from
// them: reads, writes, conditional writes, removal, membership, iteration,
// and rendering. Two strategies ship with the package and custom ones can be
// plugged in through New.
//
// # Key Features
//
//   - Generic implementation supporting any comparable key type and any value type
//   - One shared API across storage strategies via the Storage contract
//   - HashDict for constant-time access with no ordering guarantees
//   - SortedDict for ascending key order with binary-search positioning
//   - Order statistics on SortedDict: BisectLeft, BisectRight, PeekItem
//   - Sentinel errors (ErrKeyNotFound, ErrIndexOutOfRange) for errors.Is checks
//
// # Usage
//
// Create a dictionary with the strategy that fits the access pattern:
//
//	users := dict.NewHashDict[string, User]()
//	scores := dict.NewSortedDict[string, int]()
//
// Basic operations:
//
//	// Writes replace silently, like a classic dictionary
//	scores.Set("alice", 10)
//	scores.Set("alice", 20)
//
//	// Reads distinguish absence from a stored zero value
//	score, err := scores.Get("alice")
//	score, ok := scores.Lookup("alice")
//	score = scores.GetOrDefault("bob", 0)
//
//	// Conditional insert returns the winning value
//	score = scores.SetDefault("carol", 5)
//
//	// Removal, with and without a fallback
//	score, err = scores.Pop("alice")
//	score = scores.PopOrDefault("alice", 0)
//
// Iteration follows the strategy's natural order:
//
//	for _, entry := range scores.Items() {
//		fmt.Println(entry.Key, entry.Value)
//	}
//
//	scores.ForEach(func(name string, score int) bool {
//		return score < 100 // stop once a score reaches 100
//	})
//
// # Choosing a Strategy
//
// HashDict is the default choice: lookups, writes, and removals run in O(1)
// on average, and iteration order is arbitrary. SortedDict trades write
// speed (O(n) worst case for the slice shift) for ordered iteration and
// positional queries:
//
//	ranks := dict.NewSortedDict[string, int]()
//	ranks.Set("alice", 1)
//	ranks.Set("bob", 2)
//
//	pos := ranks.BisectLeft("bob")        // keys strictly below "bob"
//	last, err := ranks.PeekItem(-1)       // entry with the greatest key
//
// # Custom Storage Strategies
//
// Any type implementing Storage gains the full dictionary API through New:
//
//	type auditedStorage[K comparable, V any] struct {
//		inner dict.Storage[K, V]
//		log   func(string)
//	}
//
//	func (s *auditedStorage[K, V]) Insert(entry dict.Entry[K, V]) {
//		s.log(entry.String())
//		s.inner.Insert(entry)
//	}
//
//	// ... remaining Storage methods delegate to inner ...
//
//	d := dict.New[string, int](&auditedStorage[string, int]{...})
//
// Insert and Remove carry preconditions (key absent, key present) that Dict
// upholds by always looking up first; code driving a Storage directly must
// do the same.
//
// # Error Handling
//
// Get and Pop return errors wrapping ErrKeyNotFound; PeekItem returns errors
// wrapping ErrIndexOutOfRange. Check with errors.Is:
//
//	if _, err := users.Get("ghost"); errors.Is(err, dict.ErrKeyNotFound) {
//		// handle the missing key
//	}
//
// The fallback variants (GetOrDefault, PopOrDefault, SetDefault) never fail.
//
// # Concurrency
//
// Dictionaries are not safe for concurrent use. Callers sharing one across
// goroutines must provide their own synchronization.
package dict
