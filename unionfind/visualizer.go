package unionfind

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/viz"
)

// Action types accepted by the union-find visualizer.
const (
	ActionMakeSet = "makeset"
	ActionFind    = "find"
	ActionUnion   = "union"
)

var dsuStyles = map[State]lipgloss.Style{
	StateDefault:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	StateCurrent:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	StateRoot:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	StateCompressed: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	StateMerged:     lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
}

// Visualizer implements viz.Visualizer for the disjoint-set forest.
//
// Unknown action types fall back to Find on the "a" param, which only
// compresses paths and never changes set membership.
type Visualizer struct{}

// NewVisualizer returns the union-find visualizer.
func NewVisualizer() *Visualizer { return &Visualizer{} }

// ID implements viz.Visualizer.
func (*Visualizer) ID() string { return "unionfind" }

// Name implements viz.Visualizer.
func (*Visualizer) Name() string { return "Union-Find (DSU)" }

// InitialState returns eight singleton sets.
func (*Visualizer) InitialState() step.Snapshot { return NewForest(8) }

// Steps dispatches an action to the matching generator.
func (v *Visualizer) Steps(action viz.Action) []step.Step {
	f, ok := action.Data.(Forest)
	if !ok {
		f = v.InitialState().(Forest)
	}
	a := atoiOr(action.Param("a", "0"), 0)
	b := atoiOr(action.Param("b", "1"), 1)

	switch action.Type {
	case ActionMakeSet:
		return MakeSet(f, a)
	case ActionUnion:
		return Union(f, a, b)
	case ActionFind:
		return Find(f, a)
	default:
		// Documented fallback: Find.
		return Find(f, a)
	}
}

// Draw renders each node as "id→parent (rank r)".
func (*Visualizer) Draw(s step.Snapshot) string {
	f, ok := s.(Forest)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(f.Nodes))
	for _, n := range f.Nodes {
		style, found := dsuStyles[n.State]
		if !found {
			style = dsuStyles[StateDefault]
		}
		cell := fmt.Sprintf("%d→%d", n.ID, n.Parent)
		if n.Parent == n.ID {
			cell = fmt.Sprintf("%d→self r%d", n.ID, n.Rank)
		}
		parts = append(parts, style.Render(cell))
	}

	return strings.Join(parts, "  ")
}

// Pseudocode implements viz.Visualizer.
func (*Visualizer) Pseudocode(op string) []string {
	switch op {
	case ActionUnion:
		return []string{
			"ra, rb = find(a), find(b)",
			"if ra == rb: return",
			"attach lower-rank root under higher-rank root",
			"on tie: surviving root's rank += 1",
		}
	case ActionMakeSet:
		return []string{"parent[id] = id", "rank[id] = 0"}
	default:
		return []string{
			"while parent[x] != x: x = parent[x]",
			"repoint every visited node at the root",
		}
	}
}

// Complexity implements viz.Visualizer.
func (*Visualizer) Complexity(string) viz.Complexity {
	return viz.Complexity{Best: "O(1)", Average: "O(α(n))", Worst: "O(log n)", Space: "O(n)"}
}

// Actions implements viz.Visualizer.
func (*Visualizer) Actions() []viz.ActionSpec {
	return []viz.ActionSpec{
		{Type: ActionMakeSet, Label: "Make set", Params: []viz.ParamSpec{{Name: "a", Placeholder: "8"}}},
		{Type: ActionFind, Label: "Find", Params: []viz.ParamSpec{{Name: "a", Placeholder: "0"}}},
		{Type: ActionUnion, Label: "Union", Params: []viz.ParamSpec{
			{Name: "a", Placeholder: "0"},
			{Name: "b", Placeholder: "1"},
		}},
	}
}

// atoiOr parses s, returning fallback on failure.
func atoiOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}

	return v
}
