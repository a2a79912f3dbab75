package cortex

import (
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// KmerAccessor is the interface traversal code uses to look up a k-mer by
// string. RandomAccess, RecordCache, and MemoryIndex all implement it, so
// any of them may back a TraversalEngine.
type KmerAccessor interface {
	Get(kmerString string) (KmerRecord, error)
}

// RandomAccess is a random-access, binary-searchable view of a CORTEX graph
// body: an immutable sorted array of fixed-size records backed by a
// seekable stream.
type RandomAccess struct {
	header    *Header
	stream    io.ReadSeeker
	bodyStart int64
	nRecords  int
}

// OpenRandomAccess parses the header from stream (which must be positioned
// at the start of the file and support seeking) and prepares it for binary
// search by k-mer string.
func OpenRandomAccess(stream io.ReadSeeker) (*RandomAccess, error) {
	if _, err := stream.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(ErrUnseekable, err.Error())
	}
	header, err := ParseHeader(stream)
	if err != nil {
		return nil, err
	}
	bodyStart, err := stream.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, errors.Wrap(ErrUnseekable, err.Error())
	}
	end, err := stream.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrap(ErrUnseekable, err.Error())
	}
	bodySize := end - bodyStart
	if header.RecordSize <= 0 || bodySize%int64(header.RecordSize) != 0 {
		return nil, errors.Wrapf(ErrTruncatedBody, "body size %d is not a multiple of record size %d", bodySize, header.RecordSize)
	}
	return &RandomAccess{
		header:    header,
		stream:    stream,
		bodyStart: bodyStart,
		nRecords:  int(bodySize / int64(header.RecordSize)),
	}, nil
}

// Header returns the parsed graph header.
func (ra *RandomAccess) Header() *Header { return ra.header }

// Len returns the number of records in the graph body.
func (ra *RandomAccess) Len() int { return ra.nRecords }

// At returns the record at the given 0-based index by seeking to its
// offset and reading RecordSize bytes.
func (ra *RandomAccess) At(index int) (KmerRecord, error) {
	if index < 0 || index >= ra.nRecords {
		return KmerRecord{}, errors.Wrapf(ErrIndexOutOfRange, "index %d, have %d records", index, ra.nRecords)
	}
	off := ra.bodyStart + int64(index)*int64(ra.header.RecordSize)
	if _, err := ra.stream.Seek(off, io.SeekStart); err != nil {
		return KmerRecord{}, errors.Wrap(err, "cortex: seeking to record")
	}
	buf := make([]byte, ra.header.RecordSize)
	if _, err := io.ReadFull(ra.stream, buf); err != nil {
		return KmerRecord{}, errors.Wrap(ErrTruncatedBody, err.Error())
	}
	return NewKmerRecord(buf, int(ra.header.KmerSize), int(ra.header.NumColors), int(ra.header.KmerContainerSize)), nil
}

// GetByCanonical looks up a record by its exact canonical k-mer string,
// using binary search over the sorted record body. It finds the smallest
// index i with records[i].KmerString() >= key, and returns that record iff
// it is an exact match; otherwise ErrNotFound.
func (ra *RandomAccess) GetByCanonical(kmerString string) (KmerRecord, error) {
	n := ra.nRecords
	i := sort.Search(n, func(i int) bool {
		rec, err := ra.At(i)
		if err != nil {
			// Propagate by treating as "at or past key"; the real error
			// surfaces again on the subsequent exact read below.
			return true
		}
		return CompareKmerStrings(rec.KmerString(), kmerString) >= 0
	})
	if i < n {
		rec, err := ra.At(i)
		if err != nil {
			return KmerRecord{}, err
		}
		if rec.KmerString() == kmerString {
			return rec, nil
		}
	}
	return KmerRecord{}, errors.Wrapf(ErrNotFound, "kmer %q", kmerString)
}

// Get looks up a k-mer by string, case-insensitively and regardless of
// orientation: it canonicalizes the query (comparing it to its reverse
// complement and keeping the lexicographically smaller) before searching.
// The returned record's KmerString is always the canonical form.
func (ra *RandomAccess) Get(kmerString string) (KmerRecord, error) {
	return ra.GetByCanonical(Canonical(strings.ToUpper(kmerString)))
}

// Iter returns a Scanner for sequential iteration over every record in the
// body, starting from the first.
func (ra *RandomAccess) Iter() (*Scanner, error) {
	if _, err := ra.stream.Seek(ra.bodyStart, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "cortex: seeking to body start")
	}
	return NewScanner(ra.stream, ra.header), nil
}
