package traversal

import (
	"strings"

	"github.com/katalvlaran/algostep/graphdata"
	"github.com/katalvlaran/algostep/step"
)

// Result is the outcome of one traversal run: the step sequence plus
// the visit order (BFS/DFS) or final distances (Dijkstra).
type Result struct {
	// Steps is the full replayable sequence.
	Steps []step.Step

	// Order lists visited node IDs in visit order.
	Order []string

	// Dist holds final shortest-path distances; nil outside Dijkstra.
	Dist map[string]int
}

// BFS traverses the graph breadth-first from the start node.
//
// Steps:
//  1. Enqueue start and mark it frontier.
//  2. Repeat: dequeue the head, mark it current, record the visit with
//     the remaining queue; enqueue every unseen sorted neighbor with
//     its own step; mark the node visited.
//  3. Record a summary step with the complete visit order.
//
// Complexity: O(V + E) visits; neighbor lookups scan the edge list, so
// O(V·E) worst case on the step count's hidden work.
func BFS(input graphdata.Graph, start string) Result {
	rec := step.NewRecorder()
	g := input.CloneSnapshot().(graphdata.Graph)

	if !g.HasNode(start) {
		rec.Record(g, "Start node %s not found", start)
		return Result{Steps: rec.Steps()}
	}

	seen := map[string]bool{start: true}
	queue := []string{start}
	setState(&g, start, graphdata.NodeFrontier)
	rec.Record(g, "Enqueued start node %s", start)

	res := Result{}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		setState(&g, id, graphdata.NodeCurrent)
		rec.Read()
		rec.Record(g, "Visiting %s (queue: [%s])", id, strings.Join(queue, " "))
		res.Order = append(res.Order, id)

		for _, nb := range g.NeighborIDs(id) {
			rec.Compare()
			if seen[nb] {
				continue
			}
			seen[nb] = true
			queue = append(queue, nb)
			setState(&g, nb, graphdata.NodeFrontier)
			rec.Write()
			rec.Record(g, "Enqueued %s, discovered from %s", nb, id)
		}

		setState(&g, id, graphdata.NodeVisited)
	}

	rec.Record(g, "BFS complete: visited %d node(s) in order %s",
		len(res.Order), strings.Join(res.Order, " → "))
	res.Steps = rec.Steps()

	return res
}

// setState sets the render state of the node holding id, if present.
func setState(g *graphdata.Graph, id string, s graphdata.NodeState) {
	if i := g.NodeIndex(id); i >= 0 {
		g.Nodes[i].State = s
	}
}
