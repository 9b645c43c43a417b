package syncstate

import (
	"context"
	"sync"

	"github.com/syncstate/syncstate/encoding"
)

// Property is the synchronized wrapper for one field: a lazy read-through
// cache over the entity's store plus write buffering through the entity's
// pending-write queue. Values cross the store boundary via
// encoding.BlobMarshaler.
type Property[T any] struct {
	key   string
	owner *Entity

	// fetchMu serializes the read-through fetch path only, so concurrent
	// first reads share one fetch while Write stays free of remote I/O.
	fetchMu sync.Mutex

	mu     sync.Mutex
	loaded bool
	value  T
}

// Field declares a synchronized field on e, backed by the store value under
// key. Conventionally key is the host struct's field name.
func Field[T any](e *Entity, key string) *Property[T] {
	return &Property[T]{key: key, owner: e}
}

// Key returns the store key this property is bound to.
func (p *Property[T]) Key() string {
	return p.key
}

// Read returns the property's value. The first read fetches from the store
// and memoizes the outcome for the entity's lifetime, absent keys included
// (those memoize the zero value). A failed fetch memoizes nothing, so the
// next read fetches again. Concurrent first reads share a single fetch.
func (p *Property[T]) Read(ctx context.Context) (T, error) {
	if v, ok := p.cached(); ok {
		return v, nil
	}

	p.fetchMu.Lock()
	defer p.fetchMu.Unlock()
	// A write, or the fetch this read was waiting behind, may have landed.
	if v, ok := p.cached(); ok {
		return v, nil
	}

	var v T
	found, ba, err := p.owner.store.Fetch(ctx, p.key)
	if err != nil {
		return v, Error{Code: FetchFailure, Err: err, UserData: p.key}
	}
	if found {
		if err := encoding.Unmarshal(ba, &v); err != nil {
			return v, Error{Code: MarshalFailure, Err: err, UserData: p.key}
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// A write that raced the fetch wins over the fetched value.
	if !p.loaded {
		p.value = v
		p.loaded = true
	}
	return p.value, nil
}

func (p *Property[T]) cached() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.loaded
}

// Write caches value so any later read through this property observes it,
// transaction or not, then buffers a deferred put of (key, value) on the
// owning entity. Write never fails; encoding or store errors surface when
// the queue is flushed.
func (p *Property[T]) Write(value T) {
	p.mu.Lock()
	p.value = value
	p.loaded = true
	p.mu.Unlock()

	p.owner.enqueue(pendingWrite{
		key: p.key,
		apply: func(ctx context.Context, store Store) error {
			ba, err := encoding.Marshal(value)
			if err != nil {
				return Error{Code: MarshalFailure, Err: err, UserData: p.key}
			}
			return store.Put(ctx, p.key, ba)
		},
	})
}
