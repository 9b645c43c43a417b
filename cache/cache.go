// Package cache contains an in-process MRU cache and a read-through store
// decorator built on it, letting hot keys skip remote fetches across entity
// instances.
package cache

// Cache is a generic MRU cache interface. Implementations maintain recency
// ordering and evict least-recently-used entries past capacity.
type Cache[TK comparable, TV any] interface {
	// Clear removes all entries from the cache.
	Clear()
	// Set inserts or updates the value under key.
	Set(key TK, value TV)
	// Get looks up the value for key, refreshing its recency.
	Get(key TK) (TV, bool)
	// Delete removes key from the cache, if present.
	Delete(key TK)
	// Count returns the number of items currently stored in the cache.
	Count() int
	// IsFull reports whether the cache has reached its maximum capacity.
	IsFull() bool
	// Evict removes least-recently-used entries until capacity constraints are satisfied.
	Evict()
}

type cacheEntry[TK, TV any] struct {
	data    TV
	mruNode *node[TK]
}

type cache[TK comparable, TV any] struct {
	lookup map[TK]*cacheEntry[TK, TV]
	mru    *mru[TK, TV]
}

// NewCache creates a new generic cache with MRU-based eviction.
func NewCache[TK comparable, TV any](minCapacity, maxCapacity int) Cache[TK, TV] {
	c := cache[TK, TV]{
		lookup: make(map[TK]*cacheEntry[TK, TV], maxCapacity),
	}
	c.mru = newMru(&c, minCapacity, maxCapacity)
	return &c
}

func (c *cache[TK, TV]) Clear() {
	c.lookup = make(map[TK]*cacheEntry[TK, TV], c.mru.maxCapacity)
	c.mru = newMru(c, c.mru.minCapacity, c.mru.maxCapacity)
}

func (c *cache[TK, TV]) Set(key TK, value TV) {
	if v, ok := c.lookup[key]; ok {
		v.data = value
		c.mru.remove(v.mruNode)
		v.mruNode = c.mru.add(key)
	} else {
		c.lookup[key] = &cacheEntry[TK, TV]{
			data:    value,
			mruNode: c.mru.add(key),
		}
	}
	c.Evict()
}

func (c *cache[TK, TV]) Get(key TK) (TV, bool) {
	if v, ok := c.lookup[key]; ok {
		c.mru.remove(v.mruNode)
		v.mruNode = c.mru.add(key)
		return v.data, true
	}
	var zero TV
	return zero, false
}

func (c *cache[TK, TV]) Delete(key TK) {
	if v, ok := c.lookup[key]; ok {
		c.mru.remove(v.mruNode)
		v.mruNode = nil
		delete(c.lookup, key)
	}
}

// Count returns the number of items currently stored in this cache.
func (c *cache[TK, TV]) Count() int {
	return len(c.lookup)
}

func (c *cache[TK, TV]) IsFull() bool {
	return c.mru.isFull()
}

// Evict removes least-recently-used entries until the cache size is within capacity.
func (c *cache[TK, TV]) Evict() {
	c.mru.evict()
}
