package avltree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/viz"
)

// Action types accepted by the AVL visualizer.
const ActionInsert = "insert"

var avlStyles = map[State]lipgloss.Style{
	StateDefault:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	StateComparing:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	StateInserting:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	StateUnbalanced: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	StateBalanced:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
}

// Visualizer implements viz.Visualizer for the AVL tree.
//
// Insert is the only catalog operation; unknown action types fall back
// to it, matching the source tool's single-operation AVL module.
type Visualizer struct{}

// NewVisualizer returns the AVL visualizer.
func NewVisualizer() *Visualizer { return &Visualizer{} }

// ID implements viz.Visualizer.
func (*Visualizer) ID() string { return "avl" }

// Name implements viz.Visualizer.
func (*Visualizer) Name() string { return "AVL Tree" }

// InitialState returns the default sample tree.
func (*Visualizer) InitialState() step.Snapshot { return NewTree(40, 20, 60, 10, 30, 50, 70) }

// Steps dispatches an action; every type runs Insert with the "value"
// param (documented fallback).
func (v *Visualizer) Steps(action viz.Action) []step.Step {
	t, ok := action.Data.(Tree)
	if !ok {
		t = v.InitialState().(Tree)
	}
	value, err := strconv.Atoi(action.Param("value", "25"))
	if err != nil {
		value = 25
	}

	return Insert(t, value)
}

// Draw renders the tree sideways with height/balance annotations.
func (*Visualizer) Draw(s step.Snapshot) string {
	t, ok := s.(Tree)
	if !ok {
		return ""
	}
	if t.Root == nil {
		return "(empty)"
	}
	var b strings.Builder
	drawNode(&b, t.Root, 0)

	return strings.TrimRight(b.String(), "\n")
}

func drawNode(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	drawNode(b, n.Right, depth+1)
	style, ok := avlStyles[n.State]
	if !ok {
		style = avlStyles[StateDefault]
	}
	b.WriteString(strings.Repeat("      ", depth))
	b.WriteString(style.Render(fmt.Sprintf("%d(h%d,b%+d)", n.Value, n.Height, n.Balance)))
	b.WriteString("\n")
	drawNode(b, n.Left, depth+1)
}

// Pseudocode implements viz.Visualizer.
func (*Visualizer) Pseudocode(string) []string {
	return []string{
		"insert as in a BST",
		"unwind: update height and balance factor",
		"if balance > 1 and value < left.value:  rotate right      (LL)",
		"if balance > 1:                         rotate left-right (LR)",
		"if balance < -1 and value > right.value: rotate left      (RR)",
		"if balance < -1:                        rotate right-left (RL)",
	}
}

// Complexity implements viz.Visualizer.
func (*Visualizer) Complexity(string) viz.Complexity {
	return viz.Complexity{Best: "O(log n)", Average: "O(log n)", Worst: "O(log n)", Space: "O(log n)"}
}

// Actions implements viz.Visualizer.
func (*Visualizer) Actions() []viz.ActionSpec {
	return []viz.ActionSpec{
		{Type: ActionInsert, Label: "Insert", Params: []viz.ParamSpec{{Name: "value", Placeholder: "25"}}},
	}
}
