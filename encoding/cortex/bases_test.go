package cortex

import "testing"

import "github.com/stretchr/testify/assert"

func TestRevcomp(t *testing.T) {
	cases := []struct{ in, want string }{
		{"A", "T"},
		{"AC", "GT"},
		{"ACGT", "ACGT"},
		{"AAAA", "TTTT"},
		{"GATTACA", "TGTAATC"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Revcomp(c.in), "Revcomp(%q)", c.in)
	}
}

func TestRevcompIsInvolution(t *testing.T) {
	s := "ACGTACGTAC"
	assert.Equal(t, s, Revcomp(Revcomp(s)))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "AAA", Canonical("AAA"))
	assert.Equal(t, "AAA", Canonical("TTT"))
	assert.Equal(t, "ACGT", Canonical("ACGT"))
}

func TestCompareKmerStrings(t *testing.T) {
	assert.True(t, CompareKmerStrings("AAA", "AAC") < 0)
	assert.Equal(t, 0, CompareKmerStrings("AAA", "AAA"))
	assert.True(t, CompareKmerStrings("AAC", "AAA") > 0)
}

func TestValidateKmerString(t *testing.T) {
	assert.NoError(t, ValidateKmerString("ACGT", 4))
	assert.Error(t, ValidateKmerString("ACG", 4))
	assert.Error(t, ValidateKmerString("ACGN", 4))
}

func TestEncodeDecodeKmerBasesRoundTrip(t *testing.T) {
	cases := []struct {
		s string
		w int
	}{
		{"A", 1},
		{"ACGT", 1},
		{"ACGTACGTACGTACGTACGTACGTACGTACGT", 2},
		{"TTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTT", 1},
	}
	for _, c := range cases {
		words := EncodeKmerBases(c.s, c.w)
		assert.Equal(t, c.s, DecodeKmerBases(words, len(c.s), c.w))
	}
}

func TestDecodeKmerBasesTailConvention(t *testing.T) {
	// A single base packed into 2 words (64 2-bit fields) must land in the
	// least-significant field: the last word, low 2 bits.
	words := EncodeKmerBases("C", 2)
	assert.Equal(t, uint64(0), words[0])
	assert.Equal(t, uint64(1), words[1])
	assert.Equal(t, "C", DecodeKmerBases(words, 1, 2))
}
