package syncstate

import "context"

// Store specifies the remote key-value backend consumed by synchronized
// properties and the flush machinery. Implementations own durability and
// consistency; this package only asks them to get and put by key.
type Store interface {
	// Fetch reads the value stored under key. found is false when the key is
	// absent, which is a normal outcome and not an error.
	Fetch(ctx context.Context, key string) (found bool, value []byte, err error)
	// Put writes value under key.
	Put(ctx context.Context, key string, value []byte) error
}

// Flusher is the optional flush capability consumed by the transactional
// boundary. An object exposing it gets its pending writes applied when an
// enclosing transaction completes successfully.
type Flusher interface {
	// Flush applies all buffered writes to the remote store, clearing them
	// only when every write succeeds.
	Flush(ctx context.Context) error
}

// KeyValuePair is a tuple, 'used to carry a key together with its value
// (e.g. when seeding a store).
type KeyValuePair[TK any, TV any] struct {
	Key   TK
	Value TV
}
