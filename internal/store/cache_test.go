package store

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

func TestSectionCacheMiss(t *testing.T) {
	c := NewSectionCache(0)

	if _, ok := c.Get("hero"); ok {
		t.Error("Get() expected miss on empty cache")
	}
}

func TestSectionCacheSetGet(t *testing.T) {
	c := NewSectionCache(0)
	value := json.RawMessage(`{"title":"Hello"}`)

	c.Set("hero", value)

	got, ok := c.Get("hero")
	if !ok {
		t.Fatal("Get() expected hit after Set()")
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get() = %s, want %s", got, value)
	}
}

func TestSectionCacheExpiry(t *testing.T) {
	c := NewSectionCache(10 * time.Millisecond)
	c.Set("hero", json.RawMessage(`{}`))

	time.Sleep(25 * time.Millisecond)

	if _, ok := c.Get("hero"); ok {
		t.Error("Get() expected miss after TTL elapsed")
	}
}

func TestSectionCacheInvalidate(t *testing.T) {
	c := NewSectionCache(0)
	c.Set("hero", json.RawMessage(`{}`))
	c.Set("about", json.RawMessage(`{}`))

	c.Invalidate("hero")

	if _, ok := c.Get("hero"); ok {
		t.Error("Get() expected miss after Invalidate()")
	}
	if _, ok := c.Get("about"); !ok {
		t.Error("Invalidate() must not drop other entries")
	}
}

func TestSectionCacheClear(t *testing.T) {
	c := NewSectionCache(0)
	c.Set("hero", json.RawMessage(`{}`))
	c.Set("about", json.RawMessage(`{}`))

	c.Clear()

	if _, ok := c.Get("hero"); ok {
		t.Error("Get() expected miss after Clear()")
	}
	if _, ok := c.Get("about"); ok {
		t.Error("Get() expected miss after Clear()")
	}
}

func TestSectionCacheDefaultTTL(t *testing.T) {
	c := NewSectionCache(0)
	if c.ttl != 5*time.Minute {
		t.Errorf("default ttl = %v, want 5m", c.ttl)
	}
}
