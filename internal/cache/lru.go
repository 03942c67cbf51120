package cache

// entry is a node in the recency list. Head is the most recently used.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// LRU is a map that holds at most limit entries and evicts the least
// recently used one on overflow.
//
// LRU is not safe for concurrent use.
type LRU[K comparable, V any] struct {
	limit   int
	entries map[K]*entry[K, V]
	head    *entry[K, V]
	tail    *entry[K, V]

	onEvict func(K, V)
}

// New creates an LRU holding at most limit entries. A limit below 1 is
// treated as 1. onEvict, when non-nil, sees every entry that leaves the
// cache through eviction or Clear.
func New[K comparable, V any](limit int, onEvict func(K, V)) *LRU[K, V] {
	if limit < 1 {
		limit = 1
	}
	return &LRU[K, V]{
		limit:   limit,
		entries: make(map[K]*entry[K, V], limit),
		onEvict: onEvict,
	}
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int { return len(c.entries) }

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToFront(e)
	return e.value, true
}

// Put stores value under key, evicting the oldest entry when full.
func (c *LRU[K, V]) Put(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}
	e := &entry[K, V]{key: key, value: value}
	c.entries[key] = e
	c.pushFront(e)
	if len(c.entries) > c.limit {
		c.evict(c.tail)
	}
}

// Oldest returns the least recently used key.
func (c *LRU[K, V]) Oldest() (K, bool) {
	if c.tail == nil {
		var zero K
		return zero, false
	}
	return c.tail.key, true
}

// Clear evicts every entry.
func (c *LRU[K, V]) Clear() {
	for c.tail != nil {
		c.evict(c.tail)
	}
}

func (c *LRU[K, V]) evict(e *entry[K, V]) {
	c.unlink(e)
	delete(c.entries, e.key)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}

func (c *LRU[K, V]) pushFront(e *entry[K, V]) {
	e.prev, e.next = nil, c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *LRU[K, V]) moveToFront(e *entry[K, V]) {
	if e == c.head {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

func (c *LRU[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}
