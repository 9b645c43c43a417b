package cache

import (
	"context"
	"testing"

	"github.com/syncstate/syncstate"
	"github.com/syncstate/syncstate/mocks"
)

func TestReadThroughStoreCachesFetches(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewSeededStore(syncstate.KeyValuePair[string, []byte]{Key: "name", Value: []byte(`"John"`)})
	s := NewStore(inner, 2, 10)

	for i := 0; i < 3; i++ {
		found, ba, err := s.Fetch(ctx, "name")
		if err != nil || !found {
			t.Fatalf("Fetch() failed, got = (%v, %v), want = (true, nil)", found, err)
		}
		if string(ba) != `"John"` {
			t.Errorf("Fetch() failed, got = %s, want = \"John\"", ba)
		}
	}
	if inner.FetchCount() != 1 {
		t.Errorf("inner fetch count failed, got = %d, want = 1", inner.FetchCount())
	}
}

func TestReadThroughStoreDoesNotCacheAbsence(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewStore()
	s := NewStore(inner, 2, 10)

	if found, _, _ := s.Fetch(ctx, "name"); found {
		t.Fatalf("Fetch() of absent key failed, got = true, want = false")
	}

	// A value appearing remotely becomes visible on the next miss.
	inner.Seed("name", []byte(`"John"`))
	found, ba, err := s.Fetch(ctx, "name")
	if err != nil || !found || string(ba) != `"John"` {
		t.Errorf("Fetch() after remote write failed, got = (%v, %s, %v), want = (true, \"John\", nil)", found, ba, err)
	}
}

func TestReadThroughStoreWriteThrough(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewStore()
	s := NewStore(inner, 2, 10)

	if err := s.Put(ctx, "name", []byte(`"Jane"`)); err != nil {
		t.Fatalf("Put() failed, got = %v, want = nil", err)
	}
	if ba, ok := inner.Value("name"); !ok || string(ba) != `"Jane"` {
		t.Errorf("inner value failed, got = (%s, %v), want = (\"Jane\", true)", ba, ok)
	}
	// Served from cache afterwards.
	if _, _, err := s.Fetch(ctx, "name"); err != nil {
		t.Fatalf("Fetch() failed, got = %v, want = nil", err)
	}
	if inner.FetchCount() != 0 {
		t.Errorf("inner fetch count failed, got = %d, want = 0", inner.FetchCount())
	}
}
