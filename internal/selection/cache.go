package selection

import (
	"log/slog"
	"sync"

	"github.com/golang/groupcache/lru"
)

// DefaultCacheCapacity is how many applications the strategy cache remembers.
const DefaultCacheCapacity = 100

// Verdict records which technique last produced text for an application.
type Verdict int

const (
	// AccessibilityFailed means the clipboard swap was needed.
	AccessibilityFailed Verdict = iota
	// AccessibilitySucceeded means the accessibility probe returned text.
	AccessibilitySucceeded
)

func (v Verdict) String() string {
	switch v {
	case AccessibilitySucceeded:
		return "accessibility"
	case AccessibilityFailed:
		return "clipboard"
	default:
		return "unknown"
	}
}

// StrategyCache is a bounded least-recently-used map from application id to
// Verdict. Every access, lookups included, holds the lock for the duration
// of that access only: a lookup reorders recency and so counts as a write.
type StrategyCache struct {
	mu    sync.Mutex
	cache *lru.Cache
}

// NewStrategyCache returns a cache holding at most capacity applications.
// A capacity below one falls back to DefaultCacheCapacity.
func NewStrategyCache(capacity int) *StrategyCache {
	if capacity < 1 {
		capacity = DefaultCacheCapacity
	}
	c := lru.New(capacity)
	c.OnEvicted = func(key lru.Key, value interface{}) {
		slog.Debug("strategy cache evicted application", "app", key, "verdict", value)
	}
	return &StrategyCache{cache: c}
}

// Lookup returns the verdict for app and marks it most recently used.
func (c *StrategyCache) Lookup(app string) (Verdict, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.cache.Get(app)
	if !ok {
		return 0, false
	}
	return v.(Verdict), true
}

// Record stores the verdict for app, evicting the least recently used entry
// when the cache is full.
func (c *StrategyCache) Record(app string, v Verdict) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(app, v)
}

// Len reports how many applications are remembered.
func (c *StrategyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}
