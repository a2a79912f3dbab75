package traversal

import "github.com/winni2k/go-cortex/encoding/cortex"

// EngineOrientation controls an engine's overall search policy, as
// distinct from cortex.EdgeTraversalOrientation, which is the per-step
// orientation used while walking a single branch.
type EngineOrientation int

const (
	// EngineOriginal walks forward only, from the seed's stored form.
	EngineOriginal EngineOrientation = iota
	// EngineReverse walks backward only, from the seed's reverse
	// complement.
	EngineReverse
	// EngineBoth expands every frontier in both directions, and
	// additionally looks backward from the initial seed to catch a single
	// predecessor.
	EngineBoth
)

func (o EngineOrientation) edgeOrientation() cortex.EdgeTraversalOrientation {
	switch o {
	case EngineReverse:
		return cortex.Reverse
	default:
		return cortex.Original
	}
}

// seed is one pending branch traversal: where to start, which orientation
// to walk it in, and (if any) the node it should be connected to once
// traversed.
type seed struct {
	start             string
	orientation       cortex.EdgeTraversalOrientation
	hasConnectingNode bool
	connectingNode    string
}

// Engine is a FIFO breadth-first walker over branches of a CORTEX graph.
// It is reusable: each call to TraverseFrom resets its output graph and
// starts fresh.
type Engine struct {
	Accessor    cortex.KmerAccessor
	Color       int
	Orientation EngineOrientation
	MaxNodes    int

	graph *Graph
	queue []seed
}

// NewEngine returns an Engine with MaxNodes defaulting to 1000 if
// maxNodes <= 0, matching the teacher format's typical default traversal
// bound.
func NewEngine(accessor cortex.KmerAccessor, color int, orientation EngineOrientation, maxNodes int) *Engine {
	if maxNodes <= 0 {
		maxNodes = 1000
	}
	return &Engine{Accessor: accessor, Color: color, Orientation: orientation, MaxNodes: maxNodes}
}

// TraverseFrom runs a bounded BFS starting at start, returning the
// resulting directed multigraph. The returned graph is reproducible for a
// given seed, color, orientation, and underlying accessor.
func (e *Engine) TraverseFrom(start string) (*Graph, error) {
	e.graph = NewGraph()
	e.queue = nil

	if err := e.processInitialBranch(start); err != nil {
		return nil, err
	}
	for len(e.queue) > 0 && e.graph.Len() < e.MaxNodes {
		if err := e.traverseOneFromQueue(); err != nil {
			return nil, err
		}
	}
	return e.graph, nil
}

func (e *Engine) enqueue(start string, o cortex.EdgeTraversalOrientation, connectingNode string, hasConnectingNode bool) {
	e.queue = append(e.queue, seed{start: start, orientation: o, hasConnectingNode: hasConnectingNode, connectingNode: connectingNode})
}

func (e *Engine) processInitialBranch(start string) error {
	if e.Orientation == EngineBoth {
		e.enqueue(start, cortex.Original, "", false)
	} else {
		e.enqueue(start, e.Orientation.edgeOrientation(), "", false)
	}
	if err := e.traverseOneFromQueue(); err != nil {
		return err
	}
	if e.Orientation == EngineBoth {
		startRecord, err := e.Accessor.Get(start)
		if err != nil {
			// The seed itself is absent; the initial branch already
			// recorded that and there is nothing to look backward from.
			return nil
		}
		neighbors := startRecord.Edges()[e.Color].NeighborKmerStrings(startRecord.KmerString(), cortex.Reverse)
		if len(neighbors) == 1 {
			e.enqueue(neighbors[0], cortex.Reverse, start, true)
		}
	}
	return nil
}

func (e *Engine) traverseOneFromQueue() error {
	s := e.queue[0]
	e.queue = e.queue[1:]

	branch, err := traverseBranch(e.Accessor, e.Color, s.start, s.orientation, e.graph, e.MaxNodes)
	if err != nil {
		return err
	}
	if branch.Found {
		e.graph.AddNode(branch.Kmers[0])
		for i := 0; i+1 < len(branch.Kmers); i++ {
			e.addEdgeInOrientation(branch.Kmers[i], branch.Kmers[i+1], branch.Orientation)
		}
	}
	e.connectBranchToParent(branch, s)
	e.linkBranchAndQueueNeighbors(branch)
	return nil
}

func (e *Engine) connectBranchToParent(branch *Branch, s seed) {
	if s.hasConnectingNode && branch.Found {
		e.addEdgeInOrientation(s.connectingNode, branch.FirstKmerString, s.orientation)
	}
}

// neighborPair binds a set of branch-terminal neighbor k-mers to the
// orientation they should be walked in.
type neighborPair struct {
	orientation cortex.EdgeTraversalOrientation
	neighbors   []string
}

func (e *Engine) linkBranchAndQueueNeighbors(branch *Branch) {
	if !branch.Found {
		return
	}
	pairs := []neighborPair{{branch.Orientation, branch.NeighborKmerStrings}}
	if e.Orientation == EngineBoth {
		pairs = append(pairs, neighborPair{branch.Orientation.Other(), branch.ReverseNeighborKmerStrings})
	}
	for _, p := range pairs {
		for _, n := range p.neighbors {
			if e.graph.HasNode(n) {
				e.addEdgeInOrientation(branch.LastKmerString, n, p.orientation)
			} else {
				e.enqueue(n, p.orientation, branch.LastKmerString, true)
			}
		}
	}
}

func (e *Engine) addEdgeInOrientation(first, second string, o cortex.EdgeTraversalOrientation) {
	if o == cortex.Reverse {
		first, second = second, first
	}
	e.graph.AddEdge(first, second, e.Color)
}
