package traversal

import "github.com/winni2k/go-cortex/encoding/cortex"

// Branch is the result of walking one maximal linear branch: a sub-path
// with in-degree <= 1 and out-degree <= 1 (in the walking orientation)
// between two branching or terminal vertices.
type Branch struct {
	// Kmers is the ordered list of k-mers visited on this branch.
	Kmers []string
	// FirstKmerString is the branch's starting k-mer, or "" if the start
	// k-mer was not found in the accessor (Found is false in that case).
	FirstKmerString string
	Found           bool
	// LastKmerString is the terminal node of the branch.
	LastKmerString string
	Orientation    cortex.EdgeTraversalOrientation
	// NeighborKmerStrings are the canonical neighbors of the last node in
	// the walking orientation.
	NeighborKmerStrings []string
	// ReverseNeighborKmerStrings are the canonical neighbors of the last
	// node in the opposite orientation.
	ReverseNeighborKmerStrings []string
}

// traverseBranch walks one branch starting at s in orientation o, stopping
// at a dead end, a branch point, a neighbor already present in parent, or
// once parent has reached maxNodes nodes.
func traverseBranch(accessor cortex.KmerAccessor, color int, s string, o cortex.EdgeTraversalOrientation, parent *Graph, maxNodes int) (*Branch, error) {
	startRecord, err := accessor.Get(s)
	if err != nil {
		return &Branch{Orientation: o}, nil
	}

	b := &Branch{
		Orientation:     o,
		Found:           true,
		FirstKmerString: startRecord.KmerString(),
	}
	inBranch := make(map[string]struct{})

	cur := startRecord.KmerString()
	b.Kmers = append(b.Kmers, cur)
	inBranch[cur] = struct{}{}

	var lastRecord cortex.KmerRecord = startRecord
	for {
		if parent.Len() >= maxNodes {
			break
		}
		neighbors := lastRecord.Edges()[color].NeighborKmerStrings(lastRecord.KmerString(), o)
		if len(neighbors) != 1 {
			break
		}
		next := neighbors[0]
		if _, ok := inBranch[next]; ok {
			break
		}
		if parent.HasNode(next) {
			break
		}
		nextRecord, err := accessor.Get(next)
		if err != nil {
			// The edge bit points at a k-mer the file does not contain;
			// treat it as no-edge and stop here rather than propagating
			// the lookup failure.
			break
		}
		cur = next
		b.Kmers = append(b.Kmers, cur)
		inBranch[cur] = struct{}{}
		lastRecord = nextRecord
	}

	b.LastKmerString = cur
	lastEdges := lastRecord.Edges()[color]
	b.NeighborKmerStrings = lastEdges.NeighborKmerStrings(lastRecord.KmerString(), o)
	b.ReverseNeighborKmerStrings = lastEdges.NeighborKmerStrings(lastRecord.KmerString(), o.Other())
	return b, nil
}
