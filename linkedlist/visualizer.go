package linkedlist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/viz"
)

// Action types accepted by the linked list visualizer.
const (
	ActionInsert = "insert"
	ActionAppend = "append"
	ActionSearch = "search"
	ActionDelete = "delete"
)

var nodeStyles = map[State]lipgloss.Style{
	StateDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	StateCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	StateFound:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	StateInserting: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	StateDeleting:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
}

// Visualizer implements viz.Visualizer for the singly linked list.
//
// Unknown action types fall back to searching for the "value" param
// (or the sample's head value), which never mutates the structure.
type Visualizer struct{}

// NewVisualizer returns the linked list visualizer.
func NewVisualizer() *Visualizer { return &Visualizer{} }

// ID implements viz.Visualizer.
func (*Visualizer) ID() string { return "linkedlist" }

// Name implements viz.Visualizer.
func (*Visualizer) Name() string { return "Linked List" }

// InitialState returns the default sample list.
func (*Visualizer) InitialState() step.Snapshot { return NewList(12, 7, 25, 3) }

// Steps dispatches an action to the matching generator.
func (v *Visualizer) Steps(action viz.Action) []step.Step {
	l, ok := action.Data.(List)
	if !ok {
		l = v.InitialState().(List)
	}
	value, err := strconv.Atoi(action.Param("value", "7"))
	if err != nil {
		value = 7
	}

	switch action.Type {
	case ActionInsert:
		return Insert(l, value)
	case ActionAppend:
		return Append(l, value)
	case ActionDelete:
		return Delete(l, value)
	case ActionSearch:
		return Search(l, value)
	default:
		// Documented fallback: read-only search.
		return Search(l, value)
	}
}

// Draw renders the list as "value → value → ... → nil".
func (*Visualizer) Draw(s step.Snapshot) string {
	l, ok := s.(List)
	if !ok {
		return ""
	}
	parts := make([]string, 0, l.Len()+1)
	for _, n := range l.Nodes {
		style, found := nodeStyles[n.State]
		if !found {
			style = nodeStyles[StateDefault]
		}
		parts = append(parts, style.Render(fmt.Sprintf("(%d)", n.Value)))
	}
	parts = append(parts, "nil")

	return strings.Join(parts, " → ")
}

// Pseudocode implements viz.Visualizer.
func (*Visualizer) Pseudocode(op string) []string {
	switch op {
	case ActionInsert:
		return []string{"node = new Node(value)", "node.next = head", "head = node"}
	case ActionAppend:
		return []string{"walk to tail", "tail.next = new Node(value)"}
	case ActionDelete:
		return []string{
			"walk with prev/cur until cur.value == value",
			"prev.next = cur.next",
		}
	default:
		return []string{
			"cur = head",
			"while cur != nil:",
			"  if cur.value == value: return cur",
			"  cur = cur.next",
			"return not found",
		}
	}
}

// Complexity implements viz.Visualizer.
func (*Visualizer) Complexity(op string) viz.Complexity {
	if op == ActionInsert {
		return viz.Complexity{Best: "O(1)", Average: "O(1)", Worst: "O(1)", Space: "O(1)"}
	}

	return viz.Complexity{Best: "O(1)", Average: "O(n)", Worst: "O(n)", Space: "O(1)"}
}

// Actions implements viz.Visualizer.
func (*Visualizer) Actions() []viz.ActionSpec {
	value := []viz.ParamSpec{{Name: "value", Placeholder: "7"}}

	return []viz.ActionSpec{
		{Type: ActionInsert, Label: "Insert at head", Params: value},
		{Type: ActionAppend, Label: "Append at tail", Params: value},
		{Type: ActionSearch, Label: "Search", Params: value},
		{Type: ActionDelete, Label: "Delete", Params: value},
	}
}
