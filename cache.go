package readex

import (
	"container/list"
	"sync"

	"go.dw1.io/readex/regexp"
)

const defaultCacheCapacity = 256

type cacheEntry struct {
	key string
	re  *regexp.Regexp
}

// Cache is an LRU cache of compiled patterns keyed by source and flags.
// Once the capacity is reached, the least recently used entry is evicted.
//
// Composition still runs on every call; only engine compilation is
// skipped. Safe for concurrent use by multiple goroutines.
type Cache struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

// NewCache creates a cache holding up to capacity patterns. A capacity <= 0
// selects a default of 256.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}

	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// ReadEx is [ReadEx] backed by the cache. Errors are never cached.
func (c *Cache) ReadEx(expressions []any, flags any) (*regexp.Regexp, error) {
	source, flagString, err := assemble(expressions, flags)
	if err != nil {
		return nil, err
	}

	key := source + "\x00" + flagString
	if re, ok := c.get(key); ok {
		return re, nil
	}

	re, err := compile(source, flagString)
	if err != nil {
		return nil, err
	}
	c.set(key, re)

	return re, nil
}

func (c *Cache) get(key string) (*regexp.Regexp, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)

	return el.Value.(*cacheEntry).re, true
}

func (c *Cache) set(key string, re *regexp.Regexp) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*cacheEntry).re = re
		c.ll.MoveToFront(el)
		return
	}

	if c.ll.Len() >= c.capacity {
		if oldest := c.ll.Back(); oldest != nil {
			c.ll.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}

	c.items[key] = c.ll.PushFront(&cacheEntry{key: key, re: re})
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ll.Len()
}

// Capacity returns the maximum number of patterns the cache holds.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Clear removes every cached pattern.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.items = make(map[string]*list.Element, c.capacity)
}
