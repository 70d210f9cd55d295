package bst

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/viz"
)

// Action types accepted by the BST visualizer.
const (
	ActionInsert  = "insert"
	ActionSearch  = "search"
	ActionInOrder = "inorder"
)

var bstStyles = map[State]lipgloss.Style{
	StateDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	StateComparing: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	StateFound:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	StateInserting: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	StateVisited:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
}

// Visualizer implements viz.Visualizer for the binary search tree.
//
// Unknown action types fall back to a read-only search for the "value"
// param.
type Visualizer struct{}

// NewVisualizer returns the BST visualizer.
func NewVisualizer() *Visualizer { return &Visualizer{} }

// ID implements viz.Visualizer.
func (*Visualizer) ID() string { return "bst" }

// Name implements viz.Visualizer.
func (*Visualizer) Name() string { return "Binary Search Tree" }

// InitialState returns the default sample tree.
func (*Visualizer) InitialState() step.Snapshot { return NewTree(50, 30, 70, 20, 40, 60, 80) }

// Steps dispatches an action to the matching generator.
func (v *Visualizer) Steps(action viz.Action) []step.Step {
	t, ok := action.Data.(Tree)
	if !ok {
		t = v.InitialState().(Tree)
	}
	value, err := strconv.Atoi(action.Param("value", "40"))
	if err != nil {
		value = 40
	}

	switch action.Type {
	case ActionInsert:
		return Insert(t, value)
	case ActionInOrder:
		return InOrder(t)
	case ActionSearch:
		return Search(t, value)
	default:
		// Documented fallback: read-only search.
		return Search(t, value)
	}
}

// Draw renders the tree sideways, right subtree above left, one node
// per line with depth indentation.
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

// drawNode writes n's subtree into b, right-first so the output reads
// like a tree rotated 90° counterclockwise.
func drawNode(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	drawNode(b, n.Right, depth+1)
	style, ok := bstStyles[n.State]
	if !ok {
		style = bstStyles[StateDefault]
	}
	b.WriteString(strings.Repeat("    ", depth))
	b.WriteString(style.Render(fmt.Sprintf("%d", n.Value)))
	b.WriteString("\n")
	drawNode(b, n.Left, depth+1)
}

// Pseudocode implements viz.Visualizer.
func (*Visualizer) Pseudocode(op string) []string {
	switch op {
	case ActionInsert:
		return []string{
			"cur = root",
			"loop:",
			"  if value == cur.value: already exists",
			"  if value < cur.value: go left else go right",
			"  attach at the first nil link",
		}
	case ActionInOrder:
		return []string{"inorder(n.left)", "visit(n)", "inorder(n.right)"}
	default:
		return []string{
			"cur = root",
			"while cur != nil:",
			"  if value == cur.value: found",
			"  cur = value < cur.value ? cur.left : cur.right",
			"return not found",
		}
	}
}

// Complexity implements viz.Visualizer.
func (*Visualizer) Complexity(op string) viz.Complexity {
	if op == ActionInOrder {
		return viz.Complexity{Best: "O(n)", Average: "O(n)", Worst: "O(n)", Space: "O(h)"}
	}

	return viz.Complexity{Best: "O(log n)", Average: "O(log n)", Worst: "O(n)", Space: "O(1)"}
}

// Actions implements viz.Visualizer.
func (*Visualizer) Actions() []viz.ActionSpec {
	value := []viz.ParamSpec{{Name: "value", Placeholder: "40"}}

	return []viz.ActionSpec{
		{Type: ActionInsert, Label: "Insert", Params: value},
		{Type: ActionSearch, Label: "Search", Params: value},
		{Type: ActionInOrder, Label: "In-order traversal"},
	}
}
