package cortex

import (
	"encoding/binary"
)

// KmerRecord is one fixed-size record decoded from a CORTEX graph body: a
// k-mer string, a per-color coverage vector, and a per-color edge set.
// Decoding is lazy and memoized: each of KmerString, Coverage, and Edges is
// computed at most once.
type KmerRecord struct {
	raw               []byte
	kmerSize          int
	numColors         int
	kmerContainerSize int

	kmerString string
	haveKmer   bool
	coverage   []uint32
	haveCov    bool
	edges      []EdgeSet
	haveEdges  bool
}

// NewKmerRecord wraps a raw record-sized byte slice for lazy decoding.
// raw must have length exactly 8*kmerContainerSize + 5*numColors.
func NewKmerRecord(raw []byte, kmerSize, numColors, kmerContainerSize int) KmerRecord {
	return KmerRecord{
		raw:               raw,
		kmerSize:          kmerSize,
		numColors:         numColors,
		kmerContainerSize: kmerContainerSize,
	}
}

// KmerString returns the canonical k-mer string this record stores.
func (r *KmerRecord) KmerString() string {
	if !r.haveKmer {
		words := make([]uint64, r.kmerContainerSize)
		for i := range words {
			words[i] = binary.LittleEndian.Uint64(r.raw[i*8 : i*8+8])
		}
		r.kmerString = DecodeKmerBases(words, r.kmerSize, r.kmerContainerSize)
		r.haveKmer = true
	}
	return r.kmerString
}

// Coverage returns the per-color coverage vector.
func (r *KmerRecord) Coverage() []uint32 {
	if !r.haveCov {
		start := r.kmerContainerSize * 8
		cov := make([]uint32, r.numColors)
		for i := 0; i < r.numColors; i++ {
			off := start + i*4
			cov[i] = binary.LittleEndian.Uint32(r.raw[off : off+4])
		}
		r.coverage = cov
		r.haveCov = true
	}
	return r.coverage
}

// Edges returns the per-color edge sets. The byte at an odd color index is
// bit-reversed relative to an even color index, an alternating-orientation
// artifact of the on-disk format that is undone here.
func (r *KmerRecord) Edges() []EdgeSet {
	if !r.haveEdges {
		start := r.kmerContainerSize*8 + r.numColors*4
		edges := make([]EdgeSet, r.numColors)
		for c := 0; c < r.numColors; c++ {
			b := r.raw[start+c]
			if c%2 == 1 {
				b = reverseByte(b)
			}
			edges[c] = EdgeSet(b)
		}
		r.edges = edges
		r.haveEdges = true
	}
	return r.edges
}

// reverseByte reverses the bit order of a full byte.
func reverseByte(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

// Equal reports structural equality over (KmerString, kmerSize, numColors,
// Coverage, Edges).
func (r *KmerRecord) Equal(other *KmerRecord) bool {
	if r.KmerString() != other.KmerString() {
		return false
	}
	if r.kmerSize != other.kmerSize || r.numColors != other.numColors {
		return false
	}
	a, b := r.Coverage(), other.Coverage()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	ea, eb := r.Edges(), other.Edges()
	if len(ea) != len(eb) {
		return false
	}
	for i := range ea {
		if ea[i] != eb[i] {
			return false
		}
	}
	return true
}
