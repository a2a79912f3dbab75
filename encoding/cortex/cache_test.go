package cortex

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSmallGraphRandomAccess(t *testing.T) *RandomAccess {
	t.Helper()
	ra, err := OpenRandomAccess(bytes.NewReader(smallGraphBytes()))
	require.NoError(t, err)
	return ra
}

func TestRecordCacheReturnsSameRecordsAsRandomAccess(t *testing.T) {
	ra := openSmallGraphRandomAccess(t)
	cache := NewRecordCache(ra, 2)

	for _, k := range []string{"AAA", "AAC", "AAG"} {
		want, err := ra.Get(k)
		require.NoError(t, err)
		got, err := cache.Get(k)
		require.NoError(t, err)
		assert.True(t, want.Equal(&got))
	}
}

func TestRecordCacheEvictsUnderCapacity(t *testing.T) {
	ra := openSmallGraphRandomAccess(t)
	cache := NewRecordCache(ra, 2)

	// Touch all three kmers in order, which with capacity 2 evicts "AAA"
	// before it is asked for again.
	_, err := cache.Get("AAA")
	require.NoError(t, err)
	_, err = cache.Get("AAC")
	require.NoError(t, err)
	_, err = cache.Get("AAG")
	require.NoError(t, err)

	// Still correct after eviction: re-fetch falls through to RandomAccess.
	rec, err := cache.Get("AAA")
	require.NoError(t, err)
	assert.Equal(t, "AAA", rec.KmerString())
}

func TestRecordCacheMiss(t *testing.T) {
	ra := openSmallGraphRandomAccess(t)
	cache := NewRecordCache(ra, 2)
	_, err := cache.Get("CCC")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordCacheDisabledPassesThrough(t *testing.T) {
	ra := openSmallGraphRandomAccess(t)
	cache := NewRecordCache(ra, 0)
	rec, err := cache.Get("AAC")
	require.NoError(t, err)
	assert.Equal(t, "AAC", rec.KmerString())
}
