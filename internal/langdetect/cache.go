package langdetect

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/etkecc/langfilter/internal/metrics"
)

const (
	cacheStatistical = "statistical"
	cacheWords       = "words"
)

// fifoCache is a bounded cache that evicts the oldest inserted entry first.
// Reads use Peek, so they never change the eviction order.
type fifoCache[V any] struct {
	name  string
	items *lru.Cache[string, V]
}

func newFIFOCache[V any](name string, size int) *fifoCache[V] {
	if size < 1 {
		size = 1
	}
	items, _ := lru.NewWithEvict(size, func(_ string, _ V) { //nolint:errcheck // size is always positive
		metrics.IncCache(name, "eviction")
	})

	return &fifoCache[V]{name: name, items: items}
}

// Get value by key
func (c *fifoCache[V]) Get(key string) (V, bool) {
	value, ok := c.items.Peek(key)
	if ok {
		metrics.IncCache(c.name, "hit")
	} else {
		metrics.IncCache(c.name, "miss")
	}
	return value, ok
}

// Add value, evicting the oldest entry when the cache is full.
// Existing entries keep their value and position
func (c *fifoCache[V]) Add(key string, value V) {
	c.items.ContainsOrAdd(key, value)
}

// Len returns the number of cached entries
func (c *fifoCache[V]) Len() int {
	return c.items.Len()
}

// Purge removes all entries
func (c *fifoCache[V]) Purge() {
	c.items.Purge()
}
