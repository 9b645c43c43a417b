package redis

import (
	"context"
	"testing"
)

// Exercises a live Redis server; skipped when none is reachable on the
// default address.
func TestStoreBasicUse(t *testing.T) {
	ctx := context.Background()
	s := NewConnectionStore(DefaultOptions())
	defer s.Close()

	if err := s.(*store).Ping(ctx); err != nil {
		t.Skipf("no Redis server available: %v", err)
	}

	if err := s.Put(ctx, "syncstate_test_name", []byte(`"John"`)); err != nil {
		t.Fatalf("Put() failed, got = %v, want = nil", err)
	}
	found, ba, err := s.Fetch(ctx, "syncstate_test_name")
	if err != nil || !found {
		t.Fatalf("Fetch() failed, got = (%v, %v), want = (true, nil)", found, err)
	}
	if string(ba) != `"John"` {
		t.Errorf("Fetch() failed, got = %s, want = \"John\"", ba)
	}

	if found, _, err := s.Fetch(ctx, "syncstate_test_never_written"); err != nil || found {
		t.Errorf("Fetch() of absent key failed, got = (%v, %v), want = (false, nil)", found, err)
	}
}
