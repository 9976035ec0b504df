// Package cache provides the concurrent keyed store that backs the
// per-kind entity caches. Each cache owns the entities stored in it for
// the lifetime of the process; everything else in the client refers to
// them by snowflake ID and resolves through Fetch.
package cache

import (
	"sync"

	"github.com/samber/mo"

	"github.com/parsascontentcorner/discordstate/pkg/snowflake"
)

// Keyed is anything addressable by its own snowflake ID.
type Keyed interface {
	EntityID() snowflake.ID
}

// Cache maps snowflake IDs to entities of a single kind. Store replaces
// any previous entry for the same ID; there are no merge semantics.
// All methods are safe for concurrent use.
type Cache[T Keyed] struct {
	mu      sync.RWMutex
	entries map[snowflake.ID]T
}

// New creates an empty cache.
func New[T Keyed]() *Cache[T] {
	return &Cache[T]{
		entries: make(map[snowflake.ID]T),
	}
}

// Store inserts or replaces the entity under its own ID. The cache takes
// ownership; callers must not retain another owning reference.
func (c *Cache[T]) Store(entity T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[entity.EntityID()] = entity
}

// Fetch returns the entity stored under id, or None on a miss. A miss is
// a normal outcome, not an error: under concurrent ingestion an entity
// referenced by ID may simply not have landed yet.
func (c *Cache[T]) Fetch(id snowflake.ID) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entity, ok := c.entries[id]
	if !ok {
		return mo.None[T]()
	}
	return mo.Some(entity)
}

// Remove erases the entry for id and reports whether one existed.
func (c *Cache[T]) Remove(id snowflake.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[id]
	delete(c.entries, id)
	return ok
}

// Len returns the number of stored entities.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Each calls fn for every stored entity until fn returns false.
// Iteration order is unspecified. The lock is held for the duration, so
// fn must not call back into the same cache.
func (c *Cache[T]) Each(fn func(T) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, entity := range c.entries {
		if !fn(entity) {
			return
		}
	}
}
