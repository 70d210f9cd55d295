package traversal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algostep/graphdata"
	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/viz"
)

// Action types accepted by the traversal visualizer.
const (
	ActionBFS      = "bfs"
	ActionDFS      = "dfs"
	ActionDijkstra = "dijkstra"
)

var nodeStyles = map[graphdata.NodeState]lipgloss.Style{
	graphdata.NodeDefault:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	graphdata.NodeCurrent:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	graphdata.NodeFrontier: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	graphdata.NodeVisited:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
}

var relaxedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)

// Visualizer implements viz.Visualizer for BFS, DFS and Dijkstra.
//
// Unknown action types fall back to BFS, which never depends on edge
// weights.
type Visualizer struct{}

// NewVisualizer returns the traversal visualizer.
func NewVisualizer() *Visualizer { return &Visualizer{} }

// ID implements viz.Visualizer.
func (*Visualizer) ID() string { return "traversal" }

// Name implements viz.Visualizer.
func (*Visualizer) Name() string { return "Graph Traversal (BFS / DFS / Dijkstra)" }

// InitialState returns the six-node weighted sample graph.
func (*Visualizer) InitialState() step.Snapshot { return graphdata.TraversalSample() }

// Steps dispatches an action to the matching generator.
func (v *Visualizer) Steps(action viz.Action) []step.Step {
	g, ok := action.Data.(graphdata.Graph)
	if !ok {
		g = v.InitialState().(graphdata.Graph)
	}
	start := action.Param("start", "A")

	switch action.Type {
	case ActionDFS:
		return DFS(g, start).Steps
	case ActionDijkstra:
		return Dijkstra(g, start).Steps
	case ActionBFS:
		return BFS(g, start).Steps
	default:
		// Documented fallback: BFS.
		return BFS(g, start).Steps
	}
}

// Draw renders the node row and one line per edge.
func (*Visualizer) Draw(s step.Snapshot) string {
	g, ok := s.(graphdata.Graph)
	if !ok {
		return ""
	}

	nodes := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		style, found := nodeStyles[n.State]
		if !found {
			style = nodeStyles[graphdata.NodeDefault]
		}
		nodes = append(nodes, style.Render(n.ID))
	}

	var b strings.Builder
	b.WriteString("nodes: " + strings.Join(nodes, " "))
	for _, e := range g.Edges {
		line := fmt.Sprintf("%s ─%d─ %s", e.Source, e.Weight, e.Target)
		if e.State == graphdata.EdgeRelaxed {
			line = relaxedStyle.Render(line + "  [relaxed]")
		}
		b.WriteString("\n" + line)
	}

	return b.String()
}

// Pseudocode implements viz.Visualizer.
func (*Visualizer) Pseudocode(op string) []string {
	switch op {
	case ActionDFS:
		return []string{
			"push start",
			"while stack not empty:",
			"  pop v; skip if visited",
			"  visit v; push unvisited neighbors",
		}
	case ActionDijkstra:
		return []string{
			"dist[start] = 0, others = ∞",
			"while an unsettled node remains:",
			"  pick unsettled v with smallest dist",
			"  relax every edge (v, u)",
		}
	default:
		return []string{
			"enqueue start",
			"while queue not empty:",
			"  dequeue v; visit v",
			"  enqueue unseen neighbors",
		}
	}
}

// Complexity implements viz.Visualizer.
func (*Visualizer) Complexity(op string) viz.Complexity {
	if op == ActionDijkstra {
		return viz.Complexity{Best: "O(V²)", Average: "O(V²)", Worst: "O(V² + E)", Space: "O(V)"}
	}

	return viz.Complexity{Best: "O(V + E)", Average: "O(V + E)", Worst: "O(V + E)", Space: "O(V)"}
}

// Actions implements viz.Visualizer.
func (*Visualizer) Actions() []viz.ActionSpec {
	startParam := []viz.ParamSpec{{Name: "start", Placeholder: "A"}}

	return []viz.ActionSpec{
		{Type: ActionBFS, Label: "Breadth-first search", Params: startParam},
		{Type: ActionDFS, Label: "Depth-first search", Params: startParam},
		{Type: ActionDijkstra, Label: "Dijkstra shortest paths", Params: startParam},
	}
}
