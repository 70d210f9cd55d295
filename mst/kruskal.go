package mst

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/algostep/graphdata"
	"github.com/katalvlaran/algostep/step"
)

// Result is the outcome of one Kruskal run: the step sequence plus the
// accepted edges and their total weight for validation.
type Result struct {
	// Steps is the full replayable sequence.
	Steps []step.Step

	// EdgeIDs lists accepted edge IDs in acceptance order.
	EdgeIDs []string

	// TotalWeight is the sum of accepted edge weights.
	TotalWeight int

	// Complete reports whether |V|-1 edges were accepted.
	Complete bool
}

// Kruskal computes a minimum spanning tree of the given graph, emitting
// one step per considered edge plus sort and summary steps.
//
// Steps:
//  1. Sort edges by ascending weight; sort.SliceStable keeps insertion
//     order on ties so runs are deterministic.
//  2. Initialize a disjoint set per node.
//  3. For each edge in sorted order: if the endpoints have different
//     roots, union them and accept the edge (edge and both endpoints
//     marked inMST); otherwise reject it, naming both endpoint IDs.
//  4. Stop once |V|-1 edges are accepted; if the sorted order runs out
//     first, the final step reports the graph as disconnected.
//
// Self-loops are skipped up front. Complexity: O(E log E + E·α(V)).
func Kruskal(input graphdata.Graph) Result {
	rec := step.NewRecorder()
	g := input.CloneSnapshot().(graphdata.Graph)

	if len(g.Nodes) == 0 {
		rec.Record(g, "Graph has no nodes: nothing to span")
		return Result{Steps: rec.Steps(), Complete: false}
	}
	if len(g.Nodes) == 1 {
		rec.Record(g, "Single node %s: the spanning tree is trivially empty", g.Nodes[0].ID)
		return Result{Steps: rec.Steps(), Complete: true}
	}

	// Sorted index view over g.Edges; the snapshot keeps its insertion
	// order so renders stay stable across steps.
	order := make([]int, 0, len(g.Edges))
	for i, e := range g.Edges {
		if e.Source == e.Target {
			continue
		}
		order = append(order, i)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return g.Edges[order[a]].Weight < g.Edges[order[b]].Weight
	})

	rec.Record(g, "Sorted %d edges by ascending weight: %s",
		len(order), edgeList(g, order))

	dsu := newNodeSets(g.Nodes)
	want := len(g.Nodes) - 1

	res := Result{}
	for _, ei := range order {
		e := &g.Edges[ei]
		g.ClearTransient()
		e.State = graphdata.EdgeConsidering
		markNode(&g, e.Source, graphdata.NodeCurrent)
		markNode(&g, e.Target, graphdata.NodeCurrent)
		rec.Compare()
		rec.Record(g, "Considering edge %s-%s (weight %d)", e.Source, e.Target, e.Weight)

		if dsu.find(e.Source) == dsu.find(e.Target) {
			e.State = graphdata.EdgeRejected
			// Shared root means both endpoints already joined the tree
			// through accepted edges; restore their terminal mark.
			markNode(&g, e.Source, graphdata.NodeInMST)
			markNode(&g, e.Target, graphdata.NodeInMST)
			rec.Record(g, "Rejected %s-%s: %s and %s are already connected, the edge would create a cycle",
				e.Source, e.Target, e.Source, e.Target)
			continue
		}

		dsu.union(e.Source, e.Target)
		e.State = graphdata.EdgeInMST
		markNode(&g, e.Source, graphdata.NodeInMST)
		markNode(&g, e.Target, graphdata.NodeInMST)
		res.EdgeIDs = append(res.EdgeIDs, e.ID)
		res.TotalWeight += e.Weight
		rec.Write()
		rec.Record(g, "Accepted %s-%s into the MST (weight %d, running total %d)",
			e.Source, e.Target, e.Weight, res.TotalWeight)

		if len(res.EdgeIDs) == want {
			break
		}
	}

	g.ClearTransient()
	if len(res.EdgeIDs) == want {
		res.Complete = true
		rec.Record(g, "MST complete: %d edges, total weight %d", len(res.EdgeIDs), res.TotalWeight)
	} else {
		rec.Record(g, "Graph is disconnected: accepted %d of the %d edges a spanning tree needs",
			len(res.EdgeIDs), want)
	}

	res.Steps = rec.Steps()

	return res
}

// markNode sets the render state of the node holding id, if present.
func markNode(g *graphdata.Graph, id string, s graphdata.NodeState) {
	if i := g.NodeIndex(id); i >= 0 {
		g.Nodes[i].State = s
	}
}

// edgeList formats "A-B(1), B-C(2), ..." for the sort step.
func edgeList(g graphdata.Graph, order []int) string {
	parts := make([]string, len(order))
	for i, ei := range order {
		e := g.Edges[ei]
		parts[i] = fmt.Sprintf("%s-%s(%d)", e.Source, e.Target, e.Weight)
	}

	return strings.Join(parts, ", ")
}

// nodeSets is the union-find bookkeeping for Kruskal: path compression
// on find, union by rank.
type nodeSets struct {
	parent map[string]string
	rank   map[string]int
}

func newNodeSets(nodes []graphdata.Node) *nodeSets {
	s := &nodeSets{
		parent: make(map[string]string, len(nodes)),
		rank:   make(map[string]int, len(nodes)),
	}
	for _, n := range nodes {
		s.parent[n.ID] = n.ID
	}

	return s
}

// find walks to the root, pointing each visited node at its
// grandparent along the way.
func (s *nodeSets) find(u string) string {
	for s.parent[u] != u {
		s.parent[u] = s.parent[s.parent[u]]
		u = s.parent[u]
	}

	return u
}

// union merges the sets holding u and v, attaching the lower-rank root
// under the higher-rank one.
func (s *nodeSets) union(u, v string) {
	ru, rv := s.find(u), s.find(v)
	if ru == rv {
		return
	}
	if s.rank[ru] < s.rank[rv] {
		s.parent[ru] = rv
		return
	}
	s.parent[rv] = ru
	if s.rank[ru] == s.rank[rv] {
		s.rank[ru]++
	}
}
