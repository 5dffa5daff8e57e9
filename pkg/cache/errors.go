package cache

import "errors"

// ErrKeyNotFound is returned by Get when the key is not cached. A key may be
// absent because it was never written, was removed, or was evicted to make
// room for newer entries.
var ErrKeyNotFound = errors.New("key not found")
