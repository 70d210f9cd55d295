package graphdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/graphdata"
)

// TestWeightedSample verifies the canonical MST teaching graph shape.
func TestWeightedSample(t *testing.T) {
	g := graphdata.WeightedSample()

	require.Len(t, g.Nodes, 4)
	require.Len(t, g.Edges, 5)
	assert.False(t, g.Directed)

	wantWeights := map[string]int{"A-B": 1, "B-C": 2, "C-D": 3, "D-A": 4, "A-C": 5}
	for _, e := range g.Edges {
		assert.Equal(t, wantWeights[e.ID], e.Weight, "edge %s", e.ID)
	}
}

// TestNeighborIDs covers sorted output and the directedness switch.
func TestNeighborIDs(t *testing.T) {
	g := graphdata.WeightedSample()
	assert.Equal(t, []string{"B", "C", "D"}, g.NeighborIDs("A"))

	g.Directed = true
	assert.Equal(t, []string{"B", "C"}, g.NeighborIDs("A"), "directed A only reaches its own edge targets")
}

// TestCloneSnapshot_Isolation mutates a clone and checks the original.
func TestCloneSnapshot_Isolation(t *testing.T) {
	g := graphdata.WeightedSample()
	clone := g.CloneSnapshot().(graphdata.Graph)

	clone.Nodes[0].State = graphdata.NodeCurrent
	clone.Edges[0].State = graphdata.EdgeInMST

	assert.Equal(t, graphdata.NodeDefault, g.Nodes[0].State)
	assert.Equal(t, graphdata.EdgeDefault, g.Edges[0].State)
}

// TestClearTransient keeps terminal MST marks and rejections.
func TestClearTransient(t *testing.T) {
	g := graphdata.WeightedSample()
	g.Nodes[0].State = graphdata.NodeCurrent
	g.Nodes[1].State = graphdata.NodeInMST
	g.Edges[0].State = graphdata.EdgeInMST
	g.Edges[1].State = graphdata.EdgeConsidering
	g.Edges[2].State = graphdata.EdgeRejected

	g.ClearTransient()

	assert.Equal(t, graphdata.NodeDefault, g.Nodes[0].State)
	assert.Equal(t, graphdata.NodeInMST, g.Nodes[1].State)
	assert.Equal(t, graphdata.EdgeInMST, g.Edges[0].State)
	assert.Equal(t, graphdata.EdgeDefault, g.Edges[1].State)
	assert.Equal(t, graphdata.EdgeRejected, g.Edges[2].State)
}

// TestCycle checks edge count and unit weights for a few sizes.
func TestCycle(t *testing.T) {
	for _, n := range []int{3, 5, 8} {
		g := graphdata.Cycle(n)
		require.Len(t, g.Nodes, n)
		require.Len(t, g.Edges, n)
		for _, e := range g.Edges {
			assert.Equal(t, 1, e.Weight)
		}
	}
}
