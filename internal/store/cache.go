package store

import (
	"encoding/json"
	"sync"
	"time"
)

// SectionCache is a short-lived in-memory cache over rendered section
// JSON, keyed by dotted section path ("hero", "resume.experience").
// It sits in front of full document reads so repeated section fetches
// do not touch disk or the network inside the TTL window.
type SectionCache struct {
	mu      sync.RWMutex
	entries map[string]sectionEntry
	ttl     time.Duration
}

type sectionEntry struct {
	value    json.RawMessage
	cachedAt time.Time
}

// NewSectionCache creates a cache with the given TTL; zero means the
// default five minutes.
func NewSectionCache(ttl time.Duration) *SectionCache {
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &SectionCache{
		entries: make(map[string]sectionEntry),
		ttl:     ttl,
	}
}

// Get returns the cached section JSON, or ok=false on a miss or an
// expired entry.
func (c *SectionCache) Get(key string) (json.RawMessage, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}
	if time.Since(entry.cachedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

// Set refreshes the entry for a section after a read or a write-through.
func (c *SectionCache) Set(key string, value json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = sectionEntry{value: value, cachedAt: time.Now()}
}

// Invalidate drops a single section entry.
func (c *SectionCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear drops every entry.
func (c *SectionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]sectionEntry)
}
