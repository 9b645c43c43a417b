package cache

import "testing"

func TestCacheSetGet(t *testing.T) {
	c := NewCache[string, int](2, 5)

	c.Set("a", 1)
	c.Set("b", 2)

	if got, ok := c.Get("a"); !ok || got != 1 {
		t.Errorf("Get(a) failed, got = (%d, %v), want = (1, true)", got, ok)
	}
	if _, ok := c.Get("zz"); ok {
		t.Errorf("Get(zz) failed, got = true, want = false")
	}
	if c.Count() != 2 {
		t.Errorf("Count() failed, got = %d, want = 2", c.Count())
	}

	c.Set("a", 10)
	if got, _ := c.Get("a"); got != 10 {
		t.Errorf("Get(a) after update failed, got = %d, want = 10", got)
	}
	if c.Count() != 2 {
		t.Errorf("Count() after update failed, got = %d, want = 2", c.Count())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache[int, int](2, 3)

	c.Set(1, 1)
	c.Set(2, 2)
	// Touch 1 so 2 becomes the eviction candidate.
	c.Get(1)
	c.Set(3, 3)
	c.Set(4, 4)

	if _, ok := c.Get(2); ok {
		t.Errorf("Get(2) failed, got = true, want = evicted")
	}
	if _, ok := c.Get(4); !ok {
		t.Errorf("Get(4) failed, got = false, want = retained")
	}
	if _, ok := c.Get(3); !ok {
		t.Errorf("Get(3) failed, got = false, want = retained")
	}
	if c.Count() >= 3 {
		t.Errorf("Count() after eviction failed, got = %d, want < 3", c.Count())
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := NewCache[string, string](2, 5)
	c.Set("a", "x")
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Errorf("Get(a) after Delete failed, got = true, want = false")
	}

	c.Set("b", "y")
	c.Set("c", "z")
	c.Clear()
	if c.Count() != 0 {
		t.Errorf("Count() after Clear failed, got = %d, want = 0", c.Count())
	}
}
