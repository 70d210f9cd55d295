// Package graphdata declares the Graph, Node and Edge snapshot types
// and their render states.
package graphdata

import (
	"sort"

	"github.com/katalvlaran/algostep/step"
)

// NodeState is the render state of a graph node.
type NodeState string

// Node render states.
const (
	// NodeDefault marks a node with no special emphasis.
	NodeDefault NodeState = "default"

	// NodeCurrent marks the node an algorithm is standing on.
	NodeCurrent NodeState = "current"

	// NodeVisited marks a node already processed by a traversal.
	NodeVisited NodeState = "visited"

	// NodeFrontier marks a node queued/stacked but not yet visited.
	NodeFrontier NodeState = "frontier"

	// NodeInMST marks a node connected by an accepted MST edge.
	NodeInMST NodeState = "inMST"
)

// EdgeState is the render state of a graph edge.
type EdgeState string

// Edge render states.
const (
	// EdgeDefault marks an edge with no special emphasis.
	EdgeDefault EdgeState = "default"

	// EdgeConsidering marks the edge currently examined.
	EdgeConsidering EdgeState = "considering"

	// EdgeInMST marks an accepted MST edge.
	EdgeInMST EdgeState = "inMST"

	// EdgeRejected marks an edge discarded for forming a cycle.
	EdgeRejected EdgeState = "rejected"

	// EdgeRelaxed marks an edge that improved a tentative distance.
	EdgeRelaxed EdgeState = "relaxed"
)

// Node is one positioned graph vertex.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID string

	// X, Y are layout coordinates in an abstract unit square-ish plane.
	X, Y float64

	// State is the current render state.
	State NodeState
}

// Edge connects Source to Target (both node IDs) with an integer
// weight.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// Source and Target are endpoint node IDs.
	Source, Target string

	// Weight is the edge cost.
	Weight int

	// State is the current render state.
	State EdgeState
}

// Graph is the graph snapshot: positioned nodes, weighted edges and a
// directedness flag. It is a value type; CloneSnapshot deep-copies it.
type Graph struct {
	// Nodes in insertion order.
	Nodes []Node

	// Edges in insertion order.
	Edges []Edge

	// Directed marks every edge as one-way when true.
	Directed bool
}

// CloneSnapshot implements step.Snapshot with a full structural copy.
func (g Graph) CloneSnapshot() step.Snapshot {
	return Graph{
		Nodes:    append([]Node(nil), g.Nodes...),
		Edges:    append([]Edge(nil), g.Edges...),
		Directed: g.Directed,
	}
}

// NodeIndex returns the index of the node holding id, or -1.
func (g Graph) NodeIndex(id string) int {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return i
		}
	}

	return -1
}

// EdgeIndex returns the index of the edge holding id, or -1.
func (g Graph) EdgeIndex(id string) int {
	for i := range g.Edges {
		if g.Edges[i].ID == id {
			return i
		}
	}

	return -1
}

// HasNode reports whether a node with id exists.
func (g Graph) HasNode(id string) bool { return g.NodeIndex(id) >= 0 }

// NeighborIDs returns the IDs adjacent to id in sorted order,
// honoring directedness.
func (g Graph) NeighborIDs(id string) []string {
	var out []string
	for _, e := range g.Edges {
		switch {
		case e.Source == id:
			out = append(out, e.Target)
		case !g.Directed && e.Target == id:
			out = append(out, e.Source)
		}
	}
	sort.Strings(out)

	return out
}

// EdgeBetween returns the index of an edge joining a and b (either
// direction on undirected graphs), or -1.
func (g Graph) EdgeBetween(a, b string) int {
	for i, e := range g.Edges {
		if (e.Source == a && e.Target == b) || (!g.Directed && e.Source == b && e.Target == a) {
			return i
		}
	}

	return -1
}

// ClearTransient resets every node and edge to its default state,
// keeping terminal inMST marks intact.
func (g *Graph) ClearTransient() {
	for i := range g.Nodes {
		if g.Nodes[i].State != NodeInMST {
			g.Nodes[i].State = NodeDefault
		}
	}
	for i := range g.Edges {
		if s := g.Edges[i].State; s != EdgeInMST && s != EdgeRejected {
			g.Edges[i].State = EdgeDefault
		}
	}
}

// ResetStates resets every node and edge to its default state.
func (g *Graph) ResetStates() {
	for i := range g.Nodes {
		g.Nodes[i].State = NodeDefault
	}
	for i := range g.Edges {
		g.Edges[i].State = EdgeDefault
	}
}
