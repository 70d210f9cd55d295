package mst

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algostep/graphdata"
	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/viz"
)

// Action types accepted by the MST visualizer.
const (
	ActionKruskal = "kruskal"
)

var edgeStyles = map[graphdata.EdgeState]lipgloss.Style{
	graphdata.EdgeDefault:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	graphdata.EdgeConsidering: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	graphdata.EdgeInMST:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	graphdata.EdgeRejected:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Strikethrough(true),
}

var mstNodeStyles = map[graphdata.NodeState]lipgloss.Style{
	graphdata.NodeDefault: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	graphdata.NodeCurrent: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	graphdata.NodeInMST:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
}

// Visualizer implements viz.Visualizer for Kruskal's algorithm.
//
// Every action type runs Kruskal on the snapshot; there is nothing
// else to dispatch.
type Visualizer struct{}

// NewVisualizer returns the MST visualizer.
func NewVisualizer() *Visualizer { return &Visualizer{} }

// ID implements viz.Visualizer.
func (*Visualizer) ID() string { return "mst" }

// Name implements viz.Visualizer.
func (*Visualizer) Name() string { return "Minimum Spanning Tree (Kruskal)" }

// InitialState returns the weighted four-node sample graph.
func (*Visualizer) InitialState() step.Snapshot { return graphdata.WeightedSample() }

// Steps runs Kruskal on the action's snapshot.
func (v *Visualizer) Steps(action viz.Action) []step.Step {
	g, ok := action.Data.(graphdata.Graph)
	if !ok {
		g = v.InitialState().(graphdata.Graph)
	}

	return Kruskal(g).Steps
}

// Draw renders one line per node row and one per edge.
func (*Visualizer) Draw(s step.Snapshot) string {
	g, ok := s.(graphdata.Graph)
	if !ok {
		return ""
	}

	nodes := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		style, found := mstNodeStyles[n.State]
		if !found {
			style = mstNodeStyles[graphdata.NodeDefault]
		}
		nodes = append(nodes, style.Render(n.ID))
	}

	var b strings.Builder
	b.WriteString("nodes: " + strings.Join(nodes, " "))
	for _, e := range g.Edges {
		style, found := edgeStyles[e.State]
		if !found {
			style = edgeStyles[graphdata.EdgeDefault]
		}
		line := fmt.Sprintf("%s ─%d─ %s", e.Source, e.Weight, e.Target)
		if e.State != graphdata.EdgeDefault {
			line = fmt.Sprintf("%s  [%s]", line, e.State)
		}
		b.WriteString("\n" + style.Render(line))
	}

	return b.String()
}

// Pseudocode implements viz.Visualizer.
func (*Visualizer) Pseudocode(string) []string {
	return []string{
		"sort edges by weight ascending (stable)",
		"for each edge (u, v):",
		"  if find(u) != find(v):",
		"    union(u, v); accept edge",
		"  else: reject edge (cycle)",
		"stop after |V|-1 accepted edges",
	}
}

// Complexity implements viz.Visualizer.
func (*Visualizer) Complexity(string) viz.Complexity {
	return viz.Complexity{
		Best:    "O(E log E)",
		Average: "O(E log E)",
		Worst:   "O(E log E)",
		Space:   "O(V + E)",
	}
}

// Actions implements viz.Visualizer.
func (*Visualizer) Actions() []viz.ActionSpec {
	return []viz.ActionSpec{
		{Type: ActionKruskal, Label: "Run Kruskal"},
	}
}
