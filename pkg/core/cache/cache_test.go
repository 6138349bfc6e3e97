package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[int](DefaultConfig())

	if _, ok := c.Get("a"); ok {
		t.Fatal("Get() on empty cache should miss")
	}
	c.Set("a", 1)
	c.Set("a", 2)

	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v; want 2, true", v, ok)
	}
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1", c.Size())
	}

	hits, misses, rate := c.Stats()
	if hits != 1 || misses != 1 || rate != 50 {
		t.Errorf("Stats() = %d, %d, %v; want 1, 1, 50", hits, misses, rate)
	}
}

func TestCacheEviction(t *testing.T) {
	c := New[string](Config{MaxItems: 2})
	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")

	tests := []struct {
		key  string
		want bool
	}{
		{"a", false},
		{"b", true},
		{"c", true},
	}
	for _, tt := range tests {
		if _, ok := c.Get(tt.key); ok != tt.want {
			t.Errorf("Get(%q) present = %v, want %v", tt.key, ok, tt.want)
		}
	}
}

func TestCacheEvictionReleasesKeys(t *testing.T) {
	c := New[int](Config{MaxItems: 2})
	c.Set("a", 1)
	c.Set("b", 2)
	backing := c.order

	c.Set("c", 3)
	if backing[0] != "" {
		t.Errorf("evicted key %q still referenced by the order slice", backing[0])
	}
	if len(c.order) != 2 || c.order[0] != "b" || c.order[1] != "c" {
		t.Errorf("order = %v; want [b c]", c.order)
	}
}

func TestCacheDeleteClear(t *testing.T) {
	c := New[int](Config{MaxItems: 2})
	c.Set("a", 1)
	c.Set("b", 2)
	c.Delete("a")
	c.Delete("missing")
	c.Set("c", 3)

	if _, ok := c.Get("b"); !ok {
		t.Error("Delete should free a slot without evicting b")
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", c.Size())
	}
}

func TestCacheGetOrSet(t *testing.T) {
	c := New[int](DefaultConfig())
	calls := 0
	compute := func() int { calls++; return 42 }

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := c.GetOrSet("k", compute); got != 42 {
				t.Errorf("GetOrSet() = %d, want 42", got)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
}

func BenchmarkCacheGetOrSet(b *testing.B) {
	c := New[int](Config{MaxItems: 128})
	for i := 0; i < b.N; i++ {
		key := strconv.Itoa(i % 256)
		c.GetOrSet(key, func() int { return i })
	}
}
