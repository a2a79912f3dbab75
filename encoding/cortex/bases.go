package cortex

import (
	"strings"

	"github.com/pkg/errors"
)

// Letters holds the DNA alphabet in index order: A=0, C=1, G=2, T=3.
const Letters = "ACGT"

// baseToIndex maps an ASCII base (either case) to its 2-bit index, or -1 if
// the byte is not one of A/C/G/T (case-insensitive).
var baseToIndex [256]int8
var complementIndex = [4]byte{'T', 'G', 'C', 'A'}
var complementByte [256]byte

func init() {
	for i := range baseToIndex {
		baseToIndex[i] = -1
	}
	baseToIndex['A'], baseToIndex['a'] = 0, 0
	baseToIndex['C'], baseToIndex['c'] = 1, 1
	baseToIndex['G'], baseToIndex['g'] = 2, 2
	baseToIndex['T'], baseToIndex['t'] = 3, 3

	complementByte['A'], complementByte['a'] = 'T', 't'
	complementByte['C'], complementByte['c'] = 'G', 'g'
	complementByte['G'], complementByte['g'] = 'C', 'c'
	complementByte['T'], complementByte['t'] = 'A', 'a'
}

// Complement returns the complementary base of b (A<->T, C<->G), preserving
// case. It panics if b is not one of A/C/G/T in either case.
func Complement(b byte) byte {
	c := complementByte[b]
	if c == 0 {
		panic("cortex: Complement called with non-ACGT byte")
	}
	return c
}

// Revcomp returns the reverse complement of a DNA string, preserving the
// case of each letter. It is a pure function of Letters and panics if s
// contains a non-ACGT byte, following biosimd's "garbage in panics, not
// silently corrupts" convention.
func Revcomp(s string) string {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = Complement(s[i])
	}
	return string(out)
}

// Canonical returns the lexicographically smaller of s and its reverse
// complement.
func Canonical(s string) string {
	rc := Revcomp(s)
	if rc < s {
		return rc
	}
	return s
}

// CompareKmerStrings orders two kmer strings the way RandomAccess's binary
// search and MemoryIndex's LLRB tree both require: plain lexicographic
// string comparison, never bit-pattern comparison (bit layout does not
// preserve lexicographic order).
func CompareKmerStrings(a, b string) int {
	return strings.Compare(a, b)
}

// ValidateKmerString checks that s consists only of A/C/G/T (any case) and
// has exactly k bases, returning ErrInvalidKmerString otherwise.
func ValidateKmerString(s string, k int) error {
	if len(s) != k {
		return errors.Wrapf(ErrInvalidKmerString, "expected length %d, got %d", k, len(s))
	}
	for i := 0; i < len(s); i++ {
		if baseToIndex[s[i]] < 0 {
			return errors.Wrapf(ErrInvalidKmerString, "non-ACGT byte %q at position %d", s[i], i)
		}
	}
	return nil
}

// EncodeKmerBases packs a k-mer string into w little-endian uint64 words,
// MSB-first, with the k bases filling the low-order bits of the bit stream
// (the inverse of DecodeKmerBases).
func EncodeKmerBases(s string, w int) []uint64 {
	totalBases := 32 * w
	words := make([]uint64, w)
	// basePos counts 2-bit fields from the most-significant end of the
	// 8w-byte buffer.
	padding := totalBases - len(s)
	for i, ch := range []byte(s) {
		basePos := padding + i // position among the 32w 2-bit fields, MSB-first
		idx := uint64(baseToIndex[ch])
		wordIdx := basePos / 32
		withinWord := basePos % 32 // 0 = most-significant field within the word
		shift := uint((31 - withinWord) * 2)
		words[wordIdx] |= idx << shift
	}
	return words
}

// DecodeKmerBases decodes the k-mer string stored in w little-endian uint64
// words, keeping only the last (least-significant) k of the 32w 2-bit base
// fields found after byte-swapping each word to big-endian and concatenating
// them into one MSB-first bit stream.
func DecodeKmerBases(words []uint64, k, w int) string {
	totalBases := 32 * w
	out := make([]byte, k)
	start := totalBases - k
	for i := 0; i < k; i++ {
		basePos := start + i
		wordIdx := basePos / 32
		withinWord := basePos % 32
		shift := uint((31 - withinWord) * 2)
		idx := (words[wordIdx] >> shift) & 0x3
		out[i] = Letters[idx]
	}
	return string(out)
}
