package cache

// node tracks one key's position in the recency list.
type node[TK any] struct {
	key  TK
	prev *node[TK]
	next *node[TK]
}

// mru manages recency ordering and eviction for the generic cache type. The
// doubly linked recency list is embedded here, head being most recent.
type mru[TK comparable, TV any] struct {
	minCapacity int
	maxCapacity int
	head        *node[TK]
	tail        *node[TK]
	size        int
	cache       *cache[TK, TV]
}

func newMru[TK comparable, TV any](c *cache[TK, TV], minCapacity, maxCapacity int) *mru[TK, TV] {
	return &mru[TK, TV]{
		cache:       c,
		minCapacity: minCapacity,
		maxCapacity: maxCapacity,
	}
}

// add inserts the key at the head of the recency list and returns its node handle.
func (m *mru[TK, TV]) add(key TK) *node[TK] {
	n := &node[TK]{key: key, next: m.head}
	if m.head != nil {
		m.head.prev = n
	} else {
		m.tail = n
	}
	m.head = n
	m.size++
	return n
}

// remove unchains the node from the recency list.
func (m *mru[TK, TV]) remove(n *node[TK]) {
	if n == nil {
		return
	}
	if n == m.head {
		m.head = n.next
	}
	if n == m.tail {
		m.tail = n.prev
	}
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
	m.size--
}

// evict removes entries from the tail while the cache exceeds its capacity, updating the index.
func (m *mru[TK, TV]) evict() {
	for m.isFull() && m.tail != nil {
		t := m.tail
		m.remove(t)
		if v, found := m.cache.lookup[t.key]; found {
			v.mruNode = nil
			delete(m.cache.lookup, t.key)
		}
	}
}

// isFull reports whether the cache has reached its maximum capacity.
func (m *mru[TK, TV]) isFull() bool {
	return m.size >= m.maxCapacity
}
