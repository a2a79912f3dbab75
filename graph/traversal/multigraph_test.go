package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphAddNodeIsIdempotent(t *testing.T) {
	g := NewGraph()
	g.AddNode("AAA")
	g.AddNode("AAA")
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, []string{"AAA"}, g.Nodes())
}

func TestGraphAddEdgeAddsEndpoints(t *testing.T) {
	g := NewGraph()
	g.AddEdge("AAA", "AAC", 0)
	assert.True(t, g.HasNode("AAA"))
	assert.True(t, g.HasNode("AAC"))
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []Edge{{Src: "AAA", Dst: "AAC", Color: 0}}, g.Edges())
}

func TestGraphAddEdgeDoesNotDuplicate(t *testing.T) {
	g := NewGraph()
	g.AddEdge("AAA", "AAC", 0)
	g.AddEdge("AAA", "AAC", 0)
	assert.Len(t, g.Edges(), 1)
}

func TestGraphNodesPreservesInsertionOrder(t *testing.T) {
	g := NewGraph()
	g.AddNode("C")
	g.AddNode("A")
	g.AddNode("B")
	assert.Equal(t, []string{"C", "A", "B"}, g.Nodes())
}
