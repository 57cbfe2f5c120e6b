package migrate

import (
	"sort"
	"sync"

	"github.com/mogaika/material_fixer/material"
)

// Cache maps a source bag, by pointer, to its migrated bag. Two sources with
// equal values are still migrated separately.
type Cache struct {
	mu      sync.Mutex
	entries map[*material.Bag]*material.Bag
}

type CacheEntry struct {
	Source *material.Bag
	Target *material.Bag
}

func NewCache() *Cache {
	return &Cache{entries: make(map[*material.Bag]*material.Bag)}
}

func (c *Cache) Get(src *material.Bag) (*material.Bag, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	dst, ok := c.entries[src]
	return dst, ok
}

// GetOrCreate returns the cached target of src, calling create on a miss.
// Lookup, create and insert happen under one lock, so create runs at most
// once per source even with concurrent callers.
func (c *Cache) GetOrCreate(src *material.Bag, create func() *material.Bag) (*material.Bag, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dst, ok := c.entries[src]; ok {
		return dst, false
	}
	dst := create()
	c.entries[src] = dst
	return dst, true
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry at once and returns how many there were.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[*material.Bag]*material.Bag)
	return n
}

// Entries returns a snapshot ordered by source name, then source id.
func (c *Cache) Entries() []CacheEntry {
	c.mu.Lock()
	list := make([]CacheEntry, 0, len(c.entries))
	for src, dst := range c.entries {
		list = append(list, CacheEntry{Source: src, Target: dst})
	}
	c.mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		a, b := list[i].Source, list[j].Source
		if a.Name() != b.Name() {
			return a.Name() < b.Name()
		}
		return a.ID().String() < b.ID().String()
	})
	return list
}
