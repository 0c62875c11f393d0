// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func newTestCache[V any](capacity int, ttl time.Duration) (*Cache[V], *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[V](capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestCacheBasicOperations(t *testing.T) {
	c, _ := newTestCache[string](10, time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Get(key1) = %q, want value1", value)
	}

	if _, exists := c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	c, clock := newTestCache[int](10, 100*time.Millisecond)

	c.Set("key1", 1)
	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	clock.Advance(150 * time.Millisecond)

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after lazy expiry", c.Len())
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	c, clock := newTestCache[int](10, time.Hour)

	c.SetWithTTL("short", 1, time.Second)
	c.Set("long", 2)

	clock.Advance(2 * time.Second)

	if _, ok := c.Get("short"); ok {
		t.Error("Expected short to be expired")
	}
	if v, ok := c.Get("long"); !ok || v != 2 {
		t.Errorf("Get(long) = %d, %v, want 2, true", v, ok)
	}
}

func TestCacheEviction(t *testing.T) {
	c, _ := newTestCache[string](3, time.Minute)

	c.Set("a", "A")
	c.Set("b", "B")
	c.Set("c", "C")

	// Touch 'a' so 'b' becomes least recently used.
	c.Get("a")
	c.Set("d", "D")

	if _, found := c.Get("b"); found {
		t.Error("Expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, found := c.Get(key); !found {
			t.Errorf("Expected %q to be present", key)
		}
	}
	if got := c.GetStats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestCacheUpdateExisting(t *testing.T) {
	c, _ := newTestCache[string](2, time.Minute)

	c.Set("a", "old")
	c.Set("a", "new")

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if v, _ := c.Get("a"); v != "new" {
		t.Errorf("Get(a) = %q, want new", v)
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c, _ := newTestCache[int](10, time.Minute)

	c.Set("key1", 1)
	c.Set("key2", 2)

	if !c.Delete("key1") {
		t.Error("Delete(key1) = false, want true")
	}
	if c.Delete("key1") {
		t.Error("second Delete(key1) = true, want false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if _, ok := c.Get("key2"); ok {
		t.Error("Expected key2 to be cleared")
	}
}

func TestCacheStats(t *testing.T) {
	c, _ := newTestCache[int](10, time.Minute)

	c.Set("key1", 1)
	c.Get("key1")
	c.Get("key1")
	c.Get("missing")

	stats := c.GetStats()
	if stats.Hits != 2 {
		t.Errorf("Hits = %d, want 2", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.Size != 1 {
		t.Errorf("Size = %d, want 1", stats.Size)
	}

	hitRate := stats.HitRate()
	want := 2.0 / 3.0 * 100.0
	if hitRate < want-0.01 || hitRate > want+0.01 {
		t.Errorf("HitRate() = %.2f, want %.2f", hitRate, want)
	}

	if (Stats{}).HitRate() != 0 {
		t.Error("HitRate() on empty stats should be 0")
	}
}

func TestNewDefaults(t *testing.T) {
	c := New[int](0, 0)
	if c.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", c.capacity, DefaultCapacity)
	}
	if c.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultTTL)
	}
}

func TestGenerateKey(t *testing.T) {
	type params struct {
		Title string
		Type  string
		Limit int
	}

	key1 := GenerateKey("similar", params{"Naruto", "TV", 5})
	key2 := GenerateKey("similar", params{"Naruto", "TV", 5})
	key3 := GenerateKey("similar", params{"Naruto", "Movie", 5})
	key4 := GenerateKey("genre", params{"Naruto", "TV", 5})

	if key1 != key2 {
		t.Error("Same parameters should generate same key")
	}
	if key1 == key3 {
		t.Error("Different parameters should generate different keys")
	}
	if key1 == key4 {
		t.Error("Different methods should generate different keys")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New[int](100, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key%d", (id*100+j)%150)
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("Len() = %d, exceeds capacity 100", c.Len())
	}
}
