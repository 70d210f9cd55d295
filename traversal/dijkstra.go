package traversal

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/algostep/graphdata"
	"github.com/katalvlaran/algostep/step"
)

// unreachable is the sentinel tentative distance before relaxation.
const unreachable = math.MaxInt

// Dijkstra computes shortest-path distances from the start node,
// emitting a step per node selection and per edge relaxation.
//
// Steps:
//  1. Set dist[start] = 0, every other distance ∞.
//  2. Repeat: among unsettled nodes, pick the smallest tentative
//     distance by linear scan (the graphs animated here are small, a
//     priority queue would only obscure the steps); mark it current.
//  3. For each sorted neighbor, relax the connecting edge; an
//     improvement marks the edge relaxed and records the new distance.
//  4. Record a summary step listing every final distance.
//
// Negative edge weights are not detected; callers feed non-negative
// graphs. Complexity: O(V² + E) with the linear-scan selection.
func Dijkstra(input graphdata.Graph, start string) Result {
	rec := step.NewRecorder()
	g := input.CloneSnapshot().(graphdata.Graph)

	if !g.HasNode(start) {
		rec.Record(g, "Start node %s not found", start)
		return Result{Steps: rec.Steps()}
	}

	dist := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		dist[n.ID] = unreachable
	}
	dist[start] = 0
	settled := map[string]bool{}
	setState(&g, start, graphdata.NodeFrontier)
	rec.Record(g, "Distances initialized: %s at 0, all other nodes at ∞", start)

	res := Result{Dist: dist}
	for {
		id, best := "", unreachable
		for _, n := range g.Nodes {
			rec.Compare()
			if !settled[n.ID] && dist[n.ID] < best {
				id, best = n.ID, dist[n.ID]
			}
		}
		if id == "" {
			break
		}

		settled[id] = true
		setState(&g, id, graphdata.NodeCurrent)
		rec.Read()
		rec.Record(g, "Selected %s with the smallest tentative distance %d", id, best)
		res.Order = append(res.Order, id)

		for _, nb := range g.NeighborIDs(id) {
			if settled[nb] {
				continue
			}
			ei := g.EdgeBetween(id, nb)
			if ei < 0 {
				continue
			}
			rec.Compare()
			cand := best + g.Edges[ei].Weight
			if cand >= dist[nb] {
				continue
			}
			dist[nb] = cand
			g.Edges[ei].State = graphdata.EdgeRelaxed
			setState(&g, nb, graphdata.NodeFrontier)
			rec.Write()
			rec.Record(g, "Relaxed %s-%s: distance to %s improves to %d", id, nb, nb, cand)
		}

		setState(&g, id, graphdata.NodeVisited)
	}

	rec.Record(g, "Dijkstra complete: %s", distanceList(g, dist))
	res.Steps = rec.Steps()

	return res
}

// distanceList formats "A=0, B=4, ..." in node order, ∞ for unreached.
func distanceList(g graphdata.Graph, dist map[string]int) string {
	parts := make([]string, 0, len(dist))
	for _, n := range g.Nodes {
		d := "∞"
		if dist[n.ID] != unreachable {
			d = strconv.Itoa(dist[n.ID])
		}
		parts = append(parts, n.ID+"="+d)
	}

	return strings.Join(parts, ", ")
}
