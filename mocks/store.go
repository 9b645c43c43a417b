// Package mocks provides an in-memory Store for tests, with failure
// injection hooks and operation counters.
package mocks

import (
	"context"
	"sync"

	"github.com/syncstate/syncstate"
)

// Store is an in-memory syncstate.Store. Safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	lookup map[string][]byte

	fetchErr error
	putErr   error

	fetchCount int
	putCount   int
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{
		lookup: make(map[string][]byte),
	}
}

// NewSeededStore returns a store pre-populated with the given pairs.
func NewSeededStore(items ...syncstate.KeyValuePair[string, []byte]) *Store {
	m := NewStore()
	for _, item := range items {
		m.lookup[item.Key] = item.Value
	}
	return m
}

func (m *Store) Fetch(ctx context.Context, key string) (bool, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchCount++
	if m.fetchErr != nil {
		return false, nil, m.fetchErr
	}
	ba, ok := m.lookup[key]
	return ok, ba, nil
}

func (m *Store) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCount++
	if m.putErr != nil {
		return m.putErr
	}
	m.lookup[key] = value
	return nil
}

// Seed stores value under key without counting as a Put.
func (m *Store) Seed(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookup[key] = value
}

// Value returns the raw stored bytes for key.
func (m *Store) Value(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ba, ok := m.lookup[key]
	return ba, ok
}

// FetchCount returns how many Fetch calls the store has served.
func (m *Store) FetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchCount
}

// PutCount returns how many Put calls the store has served.
func (m *Store) PutCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.putCount
}

// FailFetch makes subsequent Fetch calls return err (nil to heal).
func (m *Store) FailFetch(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchErr = err
}

// FailPut makes subsequent Put calls return err (nil to heal).
func (m *Store) FailPut(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putErr = err
}

var _ syncstate.Store = (*Store)(nil)
