package cortex

import "github.com/pkg/errors"

// Sentinel errors for the CORTEX graph format. Callers compare against these
// with errors.Is; call sites wrap them with errors.Wrapf to add context.
var (
	// ErrBadMagic is returned when a graph file's leading 6-byte magic word
	// is not "CORTEX".
	ErrBadMagic = errors.New("cortex: bad magic word")

	// ErrBadTrailingMagic is returned when the magic word repeated after the
	// per-color information blocks does not match.
	ErrBadTrailingMagic = errors.New("cortex: bad trailing magic word")

	// ErrUnsupportedVersion is returned when the header version is not 6.
	ErrUnsupportedVersion = errors.New("cortex: unsupported version")

	// ErrInvalidKmerSize is returned when kmer_size < 1.
	ErrInvalidKmerSize = errors.New("cortex: kmer size < 1")

	// ErrInvalidContainerSize is returned when kmer_container_size < 1.
	ErrInvalidContainerSize = errors.New("cortex: kmer container size < 1")

	// ErrInvalidNumColors is returned when num_colors < 1.
	ErrInvalidNumColors = errors.New("cortex: number of colors < 1")

	// ErrTruncatedBody is returned when the record body's length is not an
	// exact multiple of the record size, or a streaming read ends partway
	// through a record.
	ErrTruncatedBody = errors.New("cortex: truncated record body")

	// ErrIndexOutOfRange is returned by RandomAccess.At for an index
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("cortex: record index out of range")

	// ErrNotFound is returned when a queried k-mer is absent from the graph.
	// Traversal code treats this as "no edge", not as a fatal condition.
	ErrNotFound = errors.New("cortex: kmer not found")

	// ErrInvalidKmerString is returned when a caller-supplied k-mer string
	// contains characters outside {A,C,G,T,a,c,g,t} or has the wrong length.
	ErrInvalidKmerString = errors.New("cortex: invalid kmer string")

	// ErrUnseekable is returned when random access is requested over a
	// stream that cannot seek.
	ErrUnseekable = errors.New("cortex: stream is not seekable")
)
