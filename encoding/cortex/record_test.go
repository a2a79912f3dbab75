package cortex

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildRecordBytes assembles a raw record buffer matching the on-disk
// layout KmerRecord decodes: the caller's logical edges are bit-reversed
// before being written for odd color indices, mirroring what a real
// encoder would have done, so that KmerRecord.Edges() undoes it back to
// the logical values.
func buildRecordBytes(kmerString string, containerSize, numColors int, coverage []uint32, edges []EdgeSet) []byte {
	words := EncodeKmerBases(kmerString, containerSize)
	raw := make([]byte, 8*containerSize+5*numColors)
	for i, w := range words {
		binary.LittleEndian.PutUint64(raw[i*8:i*8+8], w)
	}
	covStart := containerSize * 8
	for i, c := range coverage {
		binary.LittleEndian.PutUint32(raw[covStart+i*4:covStart+i*4+4], c)
	}
	edgeStart := covStart + numColors*4
	for i, e := range edges {
		b := byte(e)
		if i%2 == 1 {
			b = reverseByte(b)
		}
		raw[edgeStart+i] = b
	}
	return raw
}

func TestKmerRecordDecodesKmerString(t *testing.T) {
	raw := buildRecordBytes("ACGTA", 1, 1, []uint32{7}, []EdgeSet{EdgeSet(0x12)})
	rec := NewKmerRecord(raw, 5, 1, 1)
	assert.Equal(t, "ACGTA", rec.KmerString())
	// Calling twice exercises the memoized path.
	assert.Equal(t, "ACGTA", rec.KmerString())
}

func TestKmerRecordDecodesCoverage(t *testing.T) {
	raw := buildRecordBytes("ACGTA", 1, 3, []uint32{1, 200, 70000}, []EdgeSet{0, 0, 0})
	rec := NewKmerRecord(raw, 5, 3, 1)
	assert.Equal(t, []uint32{1, 200, 70000}, rec.Coverage())
}

func TestKmerRecordDecodesEdgesWithOddColorReversal(t *testing.T) {
	e0 := EdgeSet(0x12)
	e1 := EdgeSet(0x81)
	raw := buildRecordBytes("ACGTA", 1, 2, []uint32{0, 0}, []EdgeSet{e0, e1})
	rec := NewKmerRecord(raw, 5, 2, 1)
	assert.Equal(t, []EdgeSet{e0, e1}, rec.Edges())
}

func TestKmerRecordEqual(t *testing.T) {
	raw1 := buildRecordBytes("ACGTA", 1, 1, []uint32{5}, []EdgeSet{0x0f})
	raw2 := buildRecordBytes("ACGTA", 1, 1, []uint32{5}, []EdgeSet{0x0f})
	raw3 := buildRecordBytes("ACGTC", 1, 1, []uint32{5}, []EdgeSet{0x0f})
	r1 := NewKmerRecord(raw1, 5, 1, 1)
	r2 := NewKmerRecord(raw2, 5, 1, 1)
	r3 := NewKmerRecord(raw3, 5, 1, 1)
	assert.True(t, r1.Equal(&r2))
	assert.False(t, r1.Equal(&r3))
}
