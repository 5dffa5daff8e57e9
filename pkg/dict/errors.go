package dict

import "errors"

var (
	// ErrKeyNotFound is returned by Get and Pop when no entry is stored
	// under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfRange is returned by SortedDict.PeekItem when the index
	// falls outside [-Len(), Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)
