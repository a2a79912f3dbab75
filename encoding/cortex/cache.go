package cortex

import (
	"container/list"

	farm "github.com/dgryski/go-farm"
)

// RecordCache is a small fixed-capacity LRU cache in front of a
// RandomAccess, keyed by a farm hash of the canonical k-mer string. It
// answers the design note that an optimization over per-probe seeking is
// "to cache recently read records" — TraversalBranch and TraversalEngine
// repeatedly re-look-up the same handful of k-mers while probing neighbor
// orientations.
//
// RecordCache is not safe for concurrent use, matching RandomAccess's
// single-stream-ownership contract.
type RecordCache struct {
	ra       *RandomAccess
	capacity int
	entries  map[uint64]*list.Element
	order    *list.List // front = most recently used
}

type cacheEntry struct {
	hash   uint64
	kmer   string
	record KmerRecord
}

// NewRecordCache returns a cache of the given capacity in front of ra.
// capacity <= 0 disables caching (every Get delegates straight to ra).
func NewRecordCache(ra *RandomAccess, capacity int) *RecordCache {
	return &RecordCache{
		ra:       ra,
		capacity: capacity,
		entries:  make(map[uint64]*list.Element),
		order:    list.New(),
	}
}

// Get returns the record for kmerString's canonical form, from the cache
// if present, else from the underlying RandomAccess (inserting into the
// cache and evicting the least-recently-used entry if full).
func (c *RecordCache) Get(kmerString string) (KmerRecord, error) {
	if c.capacity <= 0 {
		return c.ra.Get(kmerString)
	}
	canon := Canonical(kmerString)
	h := farm.Hash64([]byte(canon))
	if el, ok := c.entries[h]; ok {
		entry := el.Value.(*cacheEntry)
		if entry.kmer == canon {
			c.order.MoveToFront(el)
			return entry.record, nil
		}
	}
	rec, err := c.ra.GetByCanonical(canon)
	if err != nil {
		return KmerRecord{}, err
	}
	c.insert(h, canon, rec)
	return rec, nil
}

func (c *RecordCache) insert(h uint64, canon string, rec KmerRecord) {
	if el, ok := c.entries[h]; ok {
		c.order.Remove(el)
		delete(c.entries, h)
	}
	el := c.order.PushFront(&cacheEntry{hash: h, kmer: canon, record: rec})
	c.entries[h] = el
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).hash)
	}
}
