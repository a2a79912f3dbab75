package cortex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMemoryIndexAndGet(t *testing.T) {
	ra := openSmallGraphRandomAccess(t)
	idx, err := BuildMemoryIndex(ra)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())

	rec, err := idx.Get("AAG")
	require.NoError(t, err)
	assert.Equal(t, "AAG", rec.KmerString())
	assert.Equal(t, []uint32{3}, rec.Coverage())
}

func TestMemoryIndexGetCanonicalizesQuery(t *testing.T) {
	ra := openSmallGraphRandomAccess(t)
	idx, err := BuildMemoryIndex(ra)
	require.NoError(t, err)

	rec, err := idx.Get("GTT") // reverse complement of AAC
	require.NoError(t, err)
	assert.Equal(t, "AAC", rec.KmerString())
}

func TestMemoryIndexGetMiss(t *testing.T) {
	ra := openSmallGraphRandomAccess(t)
	idx, err := BuildMemoryIndex(ra)
	require.NoError(t, err)
	_, err = idx.Get("CCC")
	assert.ErrorIs(t, err, ErrNotFound)
}
