package cortex

import (
	"io"

	"github.com/pkg/errors"
)

// Scanner sequentially reads fixed-size records from a stream positioned
// immediately after a parsed Header, in the style of bufio.Scanner: call
// Scan in a loop, then Record after each successful Scan, and check Err
// once the loop ends.
type Scanner struct {
	r          io.Reader
	header     *Header
	recordSize int
	record     KmerRecord
	err        error
	done       bool
}

// NewScanner returns a Scanner reading records described by header from r.
// r must be positioned at the start of the record body.
func NewScanner(r io.Reader, header *Header) *Scanner {
	return &Scanner{r: r, header: header, recordSize: header.RecordSize}
}

// Scan reads the next record, returning false at end of stream or on
// error (distinguishable via Err).
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	buf := make([]byte, s.recordSize)
	n, err := io.ReadFull(s.r, buf)
	if err == io.EOF && n == 0 {
		s.done = true
		return false
	}
	if err != nil {
		s.done = true
		if err == io.ErrUnexpectedEOF {
			s.err = errors.Wrapf(ErrTruncatedBody, "partial record of %d bytes", n)
		} else {
			s.err = err
		}
		return false
	}
	s.record = NewKmerRecord(buf, int(s.header.KmerSize), int(s.header.NumColors), int(s.header.KmerContainerSize))
	return true
}

// Record returns the most recently scanned record.
func (s *Scanner) Record() KmerRecord { return s.record }

// Err returns the first non-EOF error encountered, if any.
func (s *Scanner) Err() error { return s.err }

// OpenStreaming parses the header from r (positioned at the start of the
// file) and returns a Scanner ready to read the body sequentially.
func OpenStreaming(r io.Reader) (*Header, *Scanner, error) {
	header, err := ParseHeader(r)
	if err != nil {
		return nil, nil, err
	}
	return header, NewScanner(r, header), nil
}
