package selection

import (
	"fmt"
	"sync"
	"testing"
)

func TestStrategyCache_RecordAndLookup(t *testing.T) {
	c := NewStrategyCache(10)

	if _, ok := c.Lookup("Foo"); ok {
		t.Fatal("Expected miss on empty cache")
	}

	c.Record("Foo", AccessibilitySucceeded)
	v, ok := c.Lookup("Foo")
	if !ok || v != AccessibilitySucceeded {
		t.Errorf("Expected AccessibilitySucceeded, got %v (ok=%v)", v, ok)
	}

	c.Record("Foo", AccessibilityFailed)
	if v, _ := c.Lookup("Foo"); v != AccessibilityFailed {
		t.Errorf("Expected overwrite to AccessibilityFailed, got %v", v)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}
}

func TestStrategyCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewStrategyCache(DefaultCacheCapacity)
	for i := 0; i < DefaultCacheCapacity; i++ {
		c.Record(fmt.Sprintf("app-%d", i), AccessibilityFailed)
	}

	// Querying app-0 makes app-1 the oldest entry.
	if _, ok := c.Lookup("app-0"); !ok {
		t.Fatal("Expected app-0 to be cached")
	}
	c.Record("app-new", AccessibilitySucceeded)

	if c.Len() != DefaultCacheCapacity {
		t.Errorf("Expected %d entries, got %d", DefaultCacheCapacity, c.Len())
	}
	if _, ok := c.Lookup("app-1"); ok {
		t.Error("Expected app-1 to be evicted")
	}
	if _, ok := c.Lookup("app-0"); !ok {
		t.Error("Expected recently queried app-0 to survive")
	}
	if _, ok := c.Lookup("app-new"); !ok {
		t.Error("Expected app-new to be cached")
	}
}

func TestStrategyCache_DefaultCapacity(t *testing.T) {
	c := NewStrategyCache(0)
	for i := 0; i < DefaultCacheCapacity+1; i++ {
		c.Record(fmt.Sprintf("app-%d", i), AccessibilityFailed)
	}
	if c.Len() != DefaultCacheCapacity {
		t.Errorf("Expected capacity to default to %d, got %d entries", DefaultCacheCapacity, c.Len())
	}
}

func TestStrategyCache_ConcurrentAccess(t *testing.T) {
	c := NewStrategyCache(8)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				app := fmt.Sprintf("app-%d", (g+i)%16)
				c.Record(app, Verdict(i%2))
				c.Lookup(app)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 8 {
		t.Errorf("Expected at most 8 entries, got %d", c.Len())
	}
}

func TestVerdictString(t *testing.T) {
	if AccessibilitySucceeded.String() != "accessibility" {
		t.Errorf("got %q", AccessibilitySucceeded.String())
	}
	if AccessibilityFailed.String() != "clipboard" {
		t.Errorf("got %q", AccessibilityFailed.String())
	}
}
