package takeoff

import "sync"

// CacheKey identifies one aggregation result. A struct key rather than a
// joined string: category and type names may contain any would-be separator.
type CacheKey struct {
	Category string
	TypeName string
	Unit     Unit
}

// MeasurementCache memoizes aggregation results. Entries are inserted whole
// and never updated in place; Clear drops everything at once.
type MeasurementCache interface {
	Get(key CacheKey) ([]MeasurementLine, bool)
	Put(key CacheKey, lines []MeasurementLine)
	Clear()
}

// NewMemoryCache returns the default in-memory MeasurementCache.
func NewMemoryCache() MeasurementCache {
	return &memoryCache{entries: make(map[CacheKey][]MeasurementLine)}
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[CacheKey][]MeasurementLine
}

func (c *memoryCache) Get(key CacheKey) ([]MeasurementLine, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	lines, ok := c.entries[key]
	return lines, ok
}

func (c *memoryCache) Put(key CacheKey, lines []MeasurementLine) {
	c.mu.Lock()
	c.entries[key] = lines
	c.mu.Unlock()
}

func (c *memoryCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[CacheKey][]MeasurementLine)
	c.mu.Unlock()
}
