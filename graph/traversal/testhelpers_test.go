package traversal

import (
	"encoding/binary"

	"github.com/winni2k/go-cortex/encoding/cortex"
)

// reverseBits reverses the bit order of a byte, independently re-deriving
// the on-disk odd-color-index quirk KmerRecord.Edges undoes, so these
// tests build records the same way a real encoder would rather than
// relying on any internal helper.
func reverseBits(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

// recordFromMutableKmer encodes m into the on-disk record layout and
// decodes it back via cortex.NewKmerRecord, so tests can build small
// graphs with cortex.EmptyKmerBuilder/cortex.ConnectKmers and feed them to
// traversal code through the same KmerRecord type a real file produces.
func recordFromMutableKmer(m *cortex.MutableKmer, containerSize int) cortex.KmerRecord {
	words := cortex.EncodeKmerBases(m.Kmer, containerSize)
	raw := make([]byte, 8*containerSize+5*m.NumColors)
	for i, w := range words {
		binary.LittleEndian.PutUint64(raw[i*8:i*8+8], w)
	}
	covStart := containerSize * 8
	for i, c := range m.Coverage {
		binary.LittleEndian.PutUint32(raw[covStart+i*4:covStart+i*4+4], c)
	}
	edgeStart := covStart + m.NumColors*4
	for i, e := range m.Edges {
		b := byte(e)
		if i%2 == 1 {
			b = reverseBits(b)
		}
		raw[edgeStart+i] = b
	}
	return cortex.NewKmerRecord(raw, m.KmerSize, m.NumColors, containerSize)
}

// fakeAccessor is an in-memory cortex.KmerAccessor backed by
// cortex.MutableKmer values, for tests that build small graphs with
// cortex.ConnectKmers rather than parsing real graph files.
type fakeAccessor struct {
	containerSize int
	kmers         map[string]*cortex.MutableKmer
}

func newFakeAccessor(containerSize int) *fakeAccessor {
	return &fakeAccessor{containerSize: containerSize, kmers: make(map[string]*cortex.MutableKmer)}
}

func (f *fakeAccessor) Get(kmerString string) (cortex.KmerRecord, error) {
	canon := cortex.Canonical(kmerString)
	m, ok := f.kmers[canon]
	if !ok {
		return cortex.KmerRecord{}, cortex.ErrNotFound
	}
	return recordFromMutableKmer(m, f.containerSize), nil
}
