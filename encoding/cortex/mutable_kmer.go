package cortex

import "github.com/pkg/errors"

// MutableKmer is an in-memory k-mer that callers build up incrementally —
// for example test fixtures — as opposed to KmerRecord, which is
// a read-only lazy view over a record's raw bytes. Kmer is always stored
// canonical.
type MutableKmer struct {
	Kmer      string
	Coverage  []uint32
	Edges     []EdgeSet
	KmerSize  int
	NumColors int
}

// NewEmptyKmer returns a MutableKmer with the given (already canonical)
// kmer string, zero coverage, and empty edge sets for numColors colors.
func NewEmptyKmer(kmerString string, numColors int) *MutableKmer {
	return &MutableKmer{
		Kmer:      kmerString,
		Coverage:  make([]uint32, numColors),
		Edges:     make([]EdgeSet, numColors),
		KmerSize:  len(kmerString),
		NumColors: numColors,
	}
}

// EmptyKmerBuilder memoizes MutableKmers by their canonical string, so that
// repeated requests for the same k-mer (by either orientation) return the
// same object. It mirrors pycortex's EmptyKmerBuilder, used by test
// fixtures that build small graphs one k-mer at a time.
type EmptyKmerBuilder struct {
	NumColors int
	seen      map[string]*MutableKmer
}

// NewEmptyKmerBuilder returns a builder that will create kmers with
// numColors colors.
func NewEmptyKmerBuilder(numColors int) *EmptyKmerBuilder {
	return &EmptyKmerBuilder{NumColors: numColors, seen: make(map[string]*MutableKmer)}
}

// BuildOrGet returns the (possibly already built) MutableKmer for the
// canonical form of kmerString.
func (b *EmptyKmerBuilder) BuildOrGet(kmerString string) (*MutableKmer, error) {
	if len(kmerString) < 3 {
		return nil, errors.New("cortex: kmer_string needs to be length 3 or more")
	}
	if len(kmerString)%2 == 0 {
		return nil, errors.New("cortex: kmer_string needs to be odd length")
	}
	canon := Canonical(kmerString)
	if k, ok := b.seen[canon]; ok {
		return k, nil
	}
	k := NewEmptyKmer(canon, b.NumColors)
	b.seen[canon] = k
	return k, nil
}

// flipKmerStringToMatch finds the orientation of flip (itself or its
// reverse complement) whose "core" (all but the base nearest ref) matches
// ref's opposite-end core, returning the matching string and whether it
// was the reverse complement. It is the Go port of pycortex's
// flip_kmer_string_to_match.
func flipKmerStringToMatch(flip, ref string, flipIsAfterReference bool) (matched string, wasFlipped bool, err error) {
	flipRevcomp := Revcomp(flip)
	var refCore, flipCore, flipRevcompCore string
	if flipIsAfterReference {
		refCore = ref[1:]
		flipCore = flip[:len(flip)-1]
		flipRevcompCore = flipRevcomp[:len(flipRevcomp)-1]
	} else {
		refCore = ref[:len(ref)-1]
		flipCore = flip[1:]
		flipRevcompCore = flipRevcomp[1:]
	}
	switch refCore {
	case flipCore:
		return flip, false, nil
	case flipRevcompCore:
		return flipRevcomp, true, nil
	default:
		return "", false, errors.Errorf("cortex: kmers %q and %q do not overlap", flip, ref)
	}
}

// ConnectKmers determines the unique orientation in which first and second
// abut (first immediately followed by second, or the reverse complement
// thereof, in either order) and sets the corresponding edge bit on both
// kmers for the given color. It is the Go port of pycortex's
// connect_kmers, used by in-memory graph-building test fixtures.
func ConnectKmers(first, second *MutableKmer, color int) error {
	if first == second {
		return errors.New("cortex: cannot connect a kmer to itself")
	}
	var connected bool
	for _, flipIsAfterReference := range [2]bool{true, false} {
		for _, reverseFirstSecond := range [2]bool{true, false} {
			flipKmer, refKmer := first, second
			if reverseFirstSecond {
				flipKmer, refKmer = second, first
			}
			flipped, wasFlipped, err := flipKmerStringToMatch(flipKmer.Kmer, refKmer.Kmer, flipIsAfterReference)
			if err != nil {
				continue
			}
			connected = true
			var refLetter, flipLetter byte
			if flipIsAfterReference {
				refLetter = flipped[len(flipped)-1]
				flipLetter = lower(refKmer.Kmer[0])
			} else {
				refLetter = lower(flipped[0])
				flipLetter = refKmer.Kmer[len(refKmer.Kmer)-1]
			}
			if wasFlipped {
				flipLetter = swapCase(Complement(flipLetter))
			}
			refKmer.Edges[color] = refKmer.Edges[color].AddEdge(refLetter)
			flipKmer.Edges[color] = flipKmer.Edges[color].AddEdge(flipLetter)
		}
	}
	if !connected {
		return errors.Errorf("cortex: first kmer (%s) cannot be connected to second kmer (%s)", first.Kmer, second.Kmer)
	}
	return nil
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func swapCase(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
