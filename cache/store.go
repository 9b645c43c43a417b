package cache

import (
	"context"
	"sync"

	"github.com/syncstate/syncstate"
)

// readThroughStore layers an in-process MRU cache over a remote store. Reads
// hit the cache first; writes go through to the remote and refresh the cache
// on success. Absent keys are not cached, so a value put by somebody else
// becomes visible on the next miss.
type readThroughStore struct {
	mu    sync.Mutex
	cache Cache[string, []byte]
	inner syncstate.Store
}

// NewStore decorates inner with an MRU cache of the given capacity bounds.
func NewStore(inner syncstate.Store, minCapacity, maxCapacity int) syncstate.Store {
	return &readThroughStore{
		cache: NewCache[string, []byte](minCapacity, maxCapacity),
		inner: inner,
	}
}

func (s *readThroughStore) Fetch(ctx context.Context, key string) (bool, []byte, error) {
	s.mu.Lock()
	ba, ok := s.cache.Get(key)
	s.mu.Unlock()
	if ok {
		return true, ba, nil
	}
	found, ba, err := s.inner.Fetch(ctx, key)
	if err != nil || !found {
		return found, ba, err
	}
	s.mu.Lock()
	s.cache.Set(key, ba)
	s.mu.Unlock()
	return true, ba, nil
}

func (s *readThroughStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.inner.Put(ctx, key, value); err != nil {
		return err
	}
	s.mu.Lock()
	s.cache.Set(key, value)
	s.mu.Unlock()
	return nil
}
