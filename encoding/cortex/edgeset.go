package cortex

// EdgeTraversalOrientation is the per-step orientation used when computing
// a k-mer's neighbors: whether the k-mer is consumed in its stored
// (canonical) form, or in its reverse complement.
type EdgeTraversalOrientation int

const (
	// Original consumes a k-mer in its stored, canonical form.
	Original EdgeTraversalOrientation = iota
	// Reverse consumes a k-mer as the reverse complement of its stored form.
	Reverse
)

// Other returns the opposite orientation.
func (o EdgeTraversalOrientation) Other() EdgeTraversalOrientation {
	if o == Original {
		return Reverse
	}
	return Original
}

func (o EdgeTraversalOrientation) String() string {
	if o == Original {
		return "original"
	}
	return "reverse"
}

// EdgeSet is the 8-bit per-color edge descriptor: the low nibble (bits 0..3)
// records incoming edges (one bit per base A,C,G,T, prepended to the
// k-mer), and the high nibble (bits 4..7) records outgoing edges (one bit
// per base, appended to the k-mer).
type EdgeSet uint8

const (
	incomingAMask = 1 << 0
	incomingCMask = 1 << 1
	incomingGMask = 1 << 2
	incomingTMask = 1 << 3
	outgoingAMask = 1 << 4
	outgoingCMask = 1 << 5
	outgoingGMask = 1 << 6
	outgoingTMask = 1 << 7
)

// EmptyEdgeSet is an EdgeSet with no bits set.
const EmptyEdgeSet EdgeSet = 0

func baseMask(letter byte, outgoing bool) EdgeSet {
	idx := baseToIndex[letter]
	if idx < 0 {
		panic("cortex: EdgeSet letter must be one of acgtACGT")
	}
	shift := uint(idx)
	if outgoing {
		shift += 4
	}
	return 1 << shift
}

// isUpper reports whether letter is an uppercase ASCII letter.
func isUpper(letter byte) bool {
	return letter >= 'A' && letter <= 'Z'
}

// IsEdge reports whether the bit for letter is set. Uppercase letters
// (A,C,G,T) check the outgoing nibble; lowercase letters (a,c,g,t) check
// the incoming nibble.
func (e EdgeSet) IsEdge(letter byte) bool {
	return e&baseMask(letter, isUpper(letter)) != 0
}

// AddEdge sets the bit for letter, using the same case convention as IsEdge.
func (e EdgeSet) AddEdge(letter byte) EdgeSet {
	return e | baseMask(letter, isUpper(letter))
}

// RemoveEdge clears the bit for letter, using the same case convention as
// IsEdge.
func (e EdgeSet) RemoveEdge(letter byte) EdgeSet {
	return e &^ baseMask(letter, isUpper(letter))
}

// Incoming returns the low (incoming) nibble.
func (e EdgeSet) Incoming() uint8 {
	return uint8(e) & 0x0f
}

// Outgoing returns the high (outgoing) nibble, shifted down to bits 0..3.
func (e EdgeSet) Outgoing() uint8 {
	return uint8(e) >> 4
}

// GetIncomingKmers returns, in alphabetical order of the source base, the
// canonical form of each k-mer that can prepend its base onto
// kmerString[:len(kmerString)-1] according to the set incoming bits.
func (e EdgeSet) GetIncomingKmers(kmerString string) []string {
	var out []string
	core := kmerString[:len(kmerString)-1]
	for i := 0; i < 4; i++ {
		if e.Incoming()&(1<<uint(i)) != 0 {
			out = append(out, Canonical(string(Letters[i])+core))
		}
	}
	return out
}

// GetOutgoingKmers returns, in alphabetical order of the appended base, the
// canonical form of each k-mer formed by appending that base onto
// kmerString[1:] according to the set outgoing bits.
func (e EdgeSet) GetOutgoingKmers(kmerString string) []string {
	var out []string
	core := kmerString[1:]
	for i := 0; i < 4; i++ {
		if e.Outgoing()&(1<<uint(i)) != 0 {
			out = append(out, Canonical(core+string(Letters[i])))
		}
	}
	return out
}

// reverseNibble reverses the bit order of the low 4 bits of n.
func reverseNibble(n uint8) uint8 {
	n &= 0x0f
	var r uint8
	for i := 0; i < 4; i++ {
		r <<= 1
		r |= n & 1
		n >>= 1
	}
	return r
}

// Oriented returns a view of e as seen under orientation o. Under Reverse,
// the incoming and outgoing nibbles swap, and each nibble's bit order is
// reversed (remapping base positions through the complement permutation:
// reversing A,C,G,T bit order yields T,G,C,A order, i.e. complement-indexed
// bits). Applying Oriented(Reverse) twice is the identity.
func (e EdgeSet) Oriented(o EdgeTraversalOrientation) EdgeSet {
	if o == Original {
		return e
	}
	newIncoming := reverseNibble(e.Outgoing())
	newOutgoing := reverseNibble(e.Incoming())
	return EdgeSet(newIncoming) | EdgeSet(newOutgoing)<<4
}

// NeighborKmerStrings returns the canonical neighbors of kmerString under
// orientation o: outgoing neighbors under Original, incoming neighbors
// (relative to the reverse complement of kmerString) under Reverse.
func (e EdgeSet) NeighborKmerStrings(kmerString string, o EdgeTraversalOrientation) []string {
	if o == Original {
		return e.GetOutgoingKmers(kmerString)
	}
	return e.Oriented(Reverse).GetOutgoingKmers(Revcomp(kmerString))
}

// ToStr renders an 8-character display form: the incoming (lowercase)
// nibble first, then the outgoing (uppercase) nibble, with '.' for cleared
// bits. Under asRevcomp, the two nibbles swap and each is bit-reversed,
// matching Oriented(Reverse).
func (e EdgeSet) ToStr(asRevcomp bool) string {
	es := e
	// Under as_revcomp, the bits displayed in each slot swap banks (slot
	// 0..3 now holds the reverse-remapped outgoing bits, slot 4..7 the
	// reverse-remapped incoming bits, per Oriented), but the letter case
	// stays tied to the bank the bits originated from rather than the slot
	// they land in: slot 0..3 renders uppercase and slot 4..7 renders
	// lowercase, the opposite of the normal convention.
	lowerFirst := true
	if asRevcomp {
		es = e.Oriented(Reverse)
		lowerFirst = false
	}
	buf := make([]byte, 8)
	for i := 0; i < 4; i++ {
		if es.Incoming()&(1<<uint(i)) != 0 {
			if lowerFirst {
				buf[i] = Letters[i] + ('a' - 'A')
			} else {
				buf[i] = Letters[i]
			}
		} else {
			buf[i] = '.'
		}
	}
	for i := 0; i < 4; i++ {
		if es.Outgoing()&(1<<uint(i)) != 0 {
			if lowerFirst {
				buf[4+i] = Letters[i]
			} else {
				buf[4+i] = Letters[i] + ('a' - 'A')
			}
		} else {
			buf[4+i] = '.'
		}
	}
	return string(buf)
}
