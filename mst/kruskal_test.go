package mst_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/graphdata"
	"github.com/katalvlaran/algostep/mst"
	"github.com/katalvlaran/algostep/step"
)

// TestKruskal_WeightedSample runs the canonical teaching graph: edges
// AB:1, BC:2, CD:3, DA:4, AC:5 yield a 3-edge MST of total weight 6
// with DA and AC rejected or unconsidered.
func TestKruskal_WeightedSample(t *testing.T) {
	res := mst.Kruskal(graphdata.WeightedSample())
	require.NoError(t, step.Validate(res.Steps))

	assert.True(t, res.Complete)
	assert.Equal(t, []string{"A-B", "B-C", "C-D"}, res.EdgeIDs)
	assert.Equal(t, 6, res.TotalWeight)

	final := res.Steps[len(res.Steps)-1].Snapshot.(graphdata.Graph)
	for _, id := range []string{"D-A", "A-C"} {
		i := final.EdgeIndex(id)
		require.GreaterOrEqual(t, i, 0)
		assert.NotEqual(t, graphdata.EdgeInMST, final.Edges[i].State, "edge %s must be excluded", id)
	}
	for _, n := range final.Nodes {
		assert.Equal(t, graphdata.NodeInMST, n.State, "node %s joins the tree", n.ID)
	}
}

// TestKruskal_RejectNamesEndpoints checks the cycle rejection message.
// A-C(3) closes the A-B-C triangle before the tree is complete, so it
// must be rejected mid-run.
func TestKruskal_RejectNamesEndpoints(t *testing.T) {
	g := graphdata.Cycle(4)
	g.Edges = []graphdata.Edge{
		{ID: "A-B", Source: "A", Target: "B", Weight: 1},
		{ID: "B-C", Source: "B", Target: "C", Weight: 2},
		{ID: "A-C", Source: "A", Target: "C", Weight: 3},
		{ID: "C-D", Source: "C", Target: "D", Weight: 4},
	}
	res := mst.Kruskal(g)
	require.NoError(t, step.Validate(res.Steps))

	var reject string
	for _, s := range res.Steps {
		if strings.Contains(s.Description, "Rejected") {
			reject = s.Description
		}
	}
	require.NotEmpty(t, reject)
	assert.Contains(t, reject, "A")
	assert.Contains(t, reject, "C")
	assert.Contains(t, reject, "cycle")

	assert.Equal(t, []string{"A-B", "B-C", "C-D"}, res.EdgeIDs)
	assert.Equal(t, 7, res.TotalWeight)
}

// TestKruskal_StableTies verifies insertion order wins on equal weights.
func TestKruskal_StableTies(t *testing.T) {
	res := mst.Kruskal(graphdata.Cycle(4))
	require.NoError(t, step.Validate(res.Steps))
	assert.Equal(t, []string{"A-B", "B-C", "C-D"}, res.EdgeIDs)
	assert.Equal(t, 3, res.TotalWeight)
}

// TestKruskal_Disconnected reports incompleteness in the final step
// rather than failing.
func TestKruskal_Disconnected(t *testing.T) {
	g := graphdata.WeightedSample()
	g.Nodes = append(g.Nodes, graphdata.Node{ID: "E", X: 10, Y: 10, State: graphdata.NodeDefault})

	res := mst.Kruskal(g)
	require.NoError(t, step.Validate(res.Steps))
	assert.False(t, res.Complete)
	assert.Contains(t, res.Steps[len(res.Steps)-1].Description, "disconnected")
}

// TestKruskal_Degenerate covers the empty and single-node graphs.
func TestKruskal_Degenerate(t *testing.T) {
	empty := mst.Kruskal(graphdata.Graph{})
	require.NoError(t, step.Validate(empty.Steps))
	assert.False(t, empty.Complete)

	single := mst.Kruskal(graphdata.Graph{Nodes: []graphdata.Node{{ID: "A"}}})
	require.NoError(t, step.Validate(single.Steps))
	assert.True(t, single.Complete)
	assert.Zero(t, single.TotalWeight)
	assert.Empty(t, single.EdgeIDs)
}

// TestKruskal_InputUntouched checks purity.
func TestKruskal_InputUntouched(t *testing.T) {
	g := graphdata.WeightedSample()
	_ = mst.Kruskal(g)
	for _, e := range g.Edges {
		assert.Equal(t, graphdata.EdgeDefault, e.State)
	}
	for _, n := range g.Nodes {
		assert.Equal(t, graphdata.NodeDefault, n.State)
	}
}
