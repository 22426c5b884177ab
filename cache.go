package keypad

import (
	"fmt"
	"sync"

	"tailscale.com/util/singleflight"
)

// Query is the memoization key for a single button transition.
type Query struct {
	From, To rune
	Levels   int
	Pad      PadKind
}

func (q Query) String() string {
	return fmt.Sprintf("%v %q->%q@%d", q.Pad, q.From, q.To, q.Levels)
}

// Cache memoizes oracle results. Each key has exactly one correct value, so
// implementations never need to overwrite an entry.
type Cache interface {
	// Lookup returns the cost for q. On a miss it calls fill, stores the
	// result and reports hit=false.
	Lookup(q Query, fill func() int) (cost int, hit bool)
	// Store records a cost computed elsewhere, such as a persisted entry.
	// It is a no-op if q is already present.
	Store(q Query, cost int)
	// Len reports the number of entries.
	Len() int
	// Range calls f for each entry until f returns false.
	Range(f func(Query, int) bool)
}

// MapCache is a Cache for use by a single goroutine.
type MapCache struct {
	m map[Query]int
}

// NewMapCache returns an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{m: make(map[Query]int)}
}

func (c *MapCache) Lookup(q Query, fill func() int) (int, bool) {
	if v, ok := c.m[q]; ok {
		return v, true
	}
	v := fill()
	c.m[q] = v
	return v, false
}

func (c *MapCache) Store(q Query, cost int) {
	if _, ok := c.m[q]; !ok {
		c.m[q] = cost
	}
}

func (c *MapCache) Len() int { return len(c.m) }

func (c *MapCache) Range(f func(Query, int) bool) {
	for q, v := range c.m {
		if !f(q, v) {
			return
		}
	}
}

// SharedCache is a Cache that is safe for concurrent use. Concurrent misses
// on the same key share a single fill.
type SharedCache struct {
	sf singleflight.Group[Query, int]

	mu sync.RWMutex
	m  map[Query]int
}

// NewSharedCache returns an empty SharedCache.
func NewSharedCache() *SharedCache {
	return &SharedCache{m: make(map[Query]int)}
}

func (c *SharedCache) load(q Query) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[q]
	return v, ok
}

func (c *SharedCache) Lookup(q Query, fill func() int) (int, bool) {
	if v, ok := c.load(q); ok {
		return v, true
	}
	filled := false
	v, _, _ := c.sf.Do(q, func() (int, error) {
		// Another caller may have finished between load and Do.
		if v, ok := c.load(q); ok {
			return v, nil
		}
		v := fill()
		filled = true
		c.Store(q, v)
		return v, nil
	})
	return v, !filled
}

func (c *SharedCache) Store(q Query, cost int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.m[q]; !ok {
		c.m[q] = cost
	}
}

func (c *SharedCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Range iterates over a snapshot, so f may call back into c.
func (c *SharedCache) Range(f func(Query, int) bool) {
	c.mu.RLock()
	snap := make(map[Query]int, len(c.m))
	for q, v := range c.m {
		snap[q] = v
	}
	c.mu.RUnlock()
	for q, v := range snap {
		if !f(q, v) {
			return
		}
	}
}

// Snapshot copies the entries of c into a map.
func Snapshot(c Cache) map[Query]int {
	out := make(map[Query]int, c.Len())
	c.Range(func(q Query, v int) bool {
		out[q] = v
		return true
	})
	return out
}
