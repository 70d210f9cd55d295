package traversal

import (
	"strings"

	"github.com/katalvlaran/algostep/graphdata"
	"github.com/katalvlaran/algostep/step"
)

// DFS traverses the graph depth-first from the start node using an
// explicit stack.
//
// Steps:
//  1. Push start and mark it frontier.
//  2. Repeat: pop the top; skip it if already visited; otherwise mark
//     it current, record the visit with the remaining stack, and push
//     its unvisited neighbors in reverse sorted order so the smallest
//     ID is explored first.
//  3. Record a summary step with the complete visit order.
//
// Complexity: O(V + E) visits.
func DFS(input graphdata.Graph, start string) Result {
	rec := step.NewRecorder()
	g := input.CloneSnapshot().(graphdata.Graph)

	if !g.HasNode(start) {
		rec.Record(g, "Start node %s not found", start)
		return Result{Steps: rec.Steps()}
	}

	visited := map[string]bool{}
	stack := []string{start}
	setState(&g, start, graphdata.NodeFrontier)
	rec.Record(g, "Pushed start node %s", start)

	res := Result{}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		setState(&g, id, graphdata.NodeCurrent)
		rec.Read()
		rec.Record(g, "Visiting %s (stack: [%s])", id, strings.Join(stack, " "))
		res.Order = append(res.Order, id)

		// Reverse sorted order: the last push pops first.
		nbs := g.NeighborIDs(id)
		for i := len(nbs) - 1; i >= 0; i-- {
			rec.Compare()
			if visited[nbs[i]] {
				continue
			}
			stack = append(stack, nbs[i])
			if ni := g.NodeIndex(nbs[i]); ni >= 0 && g.Nodes[ni].State != graphdata.NodeVisited {
				g.Nodes[ni].State = graphdata.NodeFrontier
			}
			rec.Write()
			rec.Record(g, "Pushed %s, reachable from %s", nbs[i], id)
		}

		setState(&g, id, graphdata.NodeVisited)
	}

	rec.Record(g, "DFS complete: visited %d node(s) in order %s",
		len(res.Order), strings.Join(res.Order, " → "))
	res.Steps = rec.Steps()

	return res
}
