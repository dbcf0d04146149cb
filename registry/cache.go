package registry

import lru "github.com/opencoff/golang-lru"

// Cache memoises ComputeVerification results, keyed by hash name + endian
// variant, so that a process checking the same hash + endian pair more
// than once through one Cache doesn't re-run the 257-round §8.1
// schedule for it. Grounded on DBReader's *lru.ARCCache record cache in
// dbreader.go, repurposed here from disk records to verification digests.
type Cache struct {
	arc *lru.ARCCache
}

type cacheKey struct {
	name   string
	endian Endianness
}

// NewCache builds a Cache retaining up to size entries. size <= 0 means
// "use a sensible default" matching NewDBReader's own convention.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = 128
	}
	arc, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	return &Cache{arc: arc}, nil
}

// Verify returns ComputeVerification(d, e), serving from cache when
// possible.
func (c *Cache) Verify(d *Descriptor, e Endianness) uint32 {
	key := cacheKey{d.Name, e}
	if v, ok := c.arc.Get(key); ok {
		return v.(uint32)
	}
	got := ComputeVerification(d, e)
	c.arc.Add(key, got)
	return got
}
