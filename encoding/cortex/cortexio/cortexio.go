// Package cortexio opens CORTEX graph files for random access or
// streaming, hiding local-vs-remote path handling and optional
// sequential-mode compression the way encoding/fasta's NewIndexed hides
// FASTA-index details.
package cortexio

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/golang/snappy"
	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

var gzipMagic = [2]byte{0x1f, 0x8b}

// OpenForRandomAccess opens path (a local path or a grailbio/base/file URL
// such as "s3://bucket/key") and returns a seekable reader suitable for
// cortex.OpenRandomAccess, plus a Closer to release the underlying
// resource. If the opened file does not itself support seeking, its
// contents are read fully into memory — CORTEX graph headers plus bodies
// are bounded in size, so this is an acceptable fallback, the same
// tradeoff encoding/pam makes when it reads whole shards into memory.
func OpenForRandomAccess(ctx context.Context, path string) (io.ReadSeeker, io.Closer, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "cortexio: opening %s", path)
	}
	r := f.Reader(ctx)
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, f, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		_ = f.Close(ctx)
		return nil, nil, errors.Wrapf(err, "cortexio: reading %s into memory", path)
	}
	if err := f.Close(ctx); err != nil {
		return nil, nil, err
	}
	return bytes.NewReader(data), noopCloser{}, nil
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

// OpenForStreaming opens path for sequential access, transparently
// unwrapping a gzip or snappy-framed stream. Compression support is
// streaming-only: random access needs real seeks, which a compressed
// stream cannot provide without decompressing the whole body, defeating
// the purpose of random access.
func OpenForStreaming(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "cortexio: opening %s", path)
	}
	br := bufio.NewReader(f.Reader(ctx))
	peek, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "cortexio: peeking %s", path)
	}
	switch {
	case len(peek) == 2 && peek[0] == gzipMagic[0] && peek[1] == gzipMagic[1]:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrapf(err, "cortexio: opening gzip stream %s", path)
		}
		return &readCloser{Reader: gz, closeFn: func() error { return f.Close(ctx) }}, nil
	case looksLikeSnappyFramed(peek):
		return &readCloser{Reader: snappy.NewReader(br), closeFn: func() error { return f.Close(ctx) }}, nil
	default:
		return &readCloser{Reader: br, closeFn: func() error { return f.Close(ctx) }}, nil
	}
}

// looksLikeSnappyFramed reports whether the stream begins with the framed
// snappy format's magic chunk identifier byte (0xff), distinguishing it
// from an uncompressed CORTEX file, which always begins with 'C'.
func looksLikeSnappyFramed(peek []byte) bool {
	return len(peek) > 0 && peek[0] == 0xff
}

type readCloser struct {
	io.Reader
	closeFn func() error
}

func (r *readCloser) Close() error { return r.closeFn() }
