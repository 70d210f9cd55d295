package graphdata

import (
	"fmt"
	"math"
)

// circleLayout places n nodes labeled by letters evenly on a circle of
// the given radius centered at (cx, cy).
func circleLayout(n int, cx, cy, radius float64) []Node {
	nodes := make([]Node, n)
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		nodes[i] = Node{
			ID:    letterID(i),
			X:     cx + radius*math.Cos(angle),
			Y:     cy + radius*math.Sin(angle),
			State: NodeDefault,
		}
	}

	return nodes
}

// letterID maps 0→A, 1→B, ..., 26→A1, 27→B1, ...
func letterID(i int) string {
	letter := string(rune('A' + i%26))
	if i < 26 {
		return letter
	}

	return fmt.Sprintf("%s%d", letter, i/26)
}

// Cycle builds an undirected, unit-weight cycle over n nodes laid out
// on a circle. n < 3 yields a path of the available nodes.
func Cycle(n int) Graph {
	g := Graph{Nodes: circleLayout(n, 150, 150, 110)}
	edges := n
	if n < 3 {
		// A 2-node "cycle" would double the A-B edge; 1 node has none.
		edges = n - 1
	}
	for i := 0; i < edges; i++ {
		j := (i + 1) % n
		g.Edges = append(g.Edges, Edge{
			ID:     fmt.Sprintf("%s-%s", g.Nodes[i].ID, g.Nodes[j].ID),
			Source: g.Nodes[i].ID,
			Target: g.Nodes[j].ID,
			Weight: 1,
			State:  EdgeDefault,
		})
	}

	return g
}

// WeightedSample builds the canonical 4-node MST teaching graph:
// AB:1, BC:2, CD:3, DA:4, AC:5. Its minimum spanning tree is
// {AB, BC, CD} with total weight 6.
func WeightedSample() Graph {
	g := Graph{Nodes: circleLayout(4, 150, 150, 110)}
	for _, spec := range []struct {
		a, b string
		w    int
	}{
		{"A", "B", 1},
		{"B", "C", 2},
		{"C", "D", 3},
		{"D", "A", 4},
		{"A", "C", 5},
	} {
		g.Edges = append(g.Edges, Edge{
			ID:     spec.a + "-" + spec.b,
			Source: spec.a,
			Target: spec.b,
			Weight: spec.w,
			State:  EdgeDefault,
		})
	}

	return g
}

// TraversalSample builds an undirected 6-node graph with a branching
// structure that makes BFS layers and DFS depth visible.
func TraversalSample() Graph {
	g := Graph{Nodes: circleLayout(6, 150, 150, 110)}
	for _, spec := range []struct {
		a, b string
		w    int
	}{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "D", 5},
		{"C", "D", 8},
		{"C", "E", 10},
		{"D", "E", 2},
		{"D", "F", 6},
		{"E", "F", 3},
	} {
		g.Edges = append(g.Edges, Edge{
			ID:     spec.a + "-" + spec.b,
			Source: spec.a,
			Target: spec.b,
			Weight: spec.w,
			State:  EdgeDefault,
		})
	}

	return g
}
