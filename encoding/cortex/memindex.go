package cortex

import (
	"strings"

	"github.com/biogo/store/llrb"
	"github.com/pkg/errors"
)

// RecordSequence is an indexable view of "the sequence of records in a
// graph body", implemented by RandomAccess: something BuildMemoryIndex can
// walk once to slurp a whole graph into RAM. The sequential Scanner does not
// implement it.
type RecordSequence interface {
	Len() int
	At(index int) (KmerRecord, error)
}

// memIndexKey is the llrb.Comparable key type for MemoryIndex, ordering
// entries by k-mer string rather than by any bit-packed representation
// (bit layout does not preserve lexicographic order).
type memIndexKey struct {
	kmer   string
	record KmerRecord
}

// Compare implements llrb.Comparable.
func (k memIndexKey) Compare(other llrb.Comparable) int {
	o := other.(memIndexKey)
	return CompareKmerStrings(k.kmer, o.kmer)
}

// MemoryIndex is an in-memory alternative to RandomAccess, for callers that
// want to load a whole (typically small) graph once and then issue
// unboundedly many lookups without further file seeks. It is backed by an
// LLRB tree, the same structure the teacher codebase uses for its
// in-memory shard-offset index.
type MemoryIndex struct {
	tree *llrb.Tree
	n    int
}

// BuildMemoryIndex reads every record out of seq once and inserts it into
// an in-memory sorted index.
func BuildMemoryIndex(seq RecordSequence) (*MemoryIndex, error) {
	tree := &llrb.Tree{}
	n := seq.Len()
	for i := 0; i < n; i++ {
		rec, err := seq.At(i)
		if err != nil {
			return nil, err
		}
		tree.Insert(memIndexKey{kmer: rec.KmerString(), record: rec})
	}
	return &MemoryIndex{tree: tree, n: n}, nil
}

// Get looks up a k-mer by string, canonicalizing exactly as RandomAccess.Get
// does, so MemoryIndex and RandomAccess are interchangeable KmerAccessors.
func (m *MemoryIndex) Get(kmerString string) (KmerRecord, error) {
	canon := Canonical(strings.ToUpper(kmerString))
	found := m.tree.Get(memIndexKey{kmer: canon})
	if found == nil {
		return KmerRecord{}, errors.Wrapf(ErrNotFound, "kmer %q", kmerString)
	}
	return found.(memIndexKey).record, nil
}

// Len returns the number of records indexed.
func (m *MemoryIndex) Len() int { return m.n }
