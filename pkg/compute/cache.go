package compute

import (
	"sync"

	"github.com/contfrac/reals/pkg/term"
)

// Cache is the shared append-only term store behind a Real. It is the only
// shared mutable object in the engine; its sole mutation is append. The
// mutex permits concurrent readers, though the core model is single-threaded
// pull.
type Cache struct {
	mu        sync.Mutex
	terms     []term.Term
	exhausted bool
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Len returns the number of cached terms.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.terms)
}

// Snapshot returns a copy of the cached prefix.
func (c *Cache) Snapshot() []term.Term {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]term.Term, len(c.terms))
	copy(out, c.terms)
	return out
}

// at returns term i, pulling from src to extend the cache when i is exactly
// the current frontier. Readers never skip ahead, so i <= len always holds.
func (c *Cache) at(i int, src Computation) (term.Term, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i > len(c.terms) {
		panic("compute: cache cursor ahead of frontier")
	}
	if i == len(c.terms) {
		if c.exhausted {
			return term.Term{}, false
		}
		t, ok := src.Next()
		if !ok {
			c.exhausted = true
			return term.Term{}, false
		}
		c.terms = append(c.terms, t)
	}
	return c.terms[i], true
}

// Cached is an indexed cursor over a shared cache. Multiple cursors over
// the same Real observe the same prefix; each advances at its own pace and
// every term of the underlying iterator is computed at most once.
type Cached struct {
	src   Computation
	cache *Cache
	index int
}

// NewCached returns a cursor at position 0.
func NewCached(src Computation, cache *Cache) *Cached {
	return &Cached{src: src, cache: cache}
}

// Index returns the cursor position.
func (c *Cached) Index() int {
	return c.index
}

func (c *Cached) Next() (term.Term, bool) {
	t, ok := c.cache.at(c.index, c.src)
	if !ok {
		return term.Term{}, false
	}
	c.index++
	return t, true
}
