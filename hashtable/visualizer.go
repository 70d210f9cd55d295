package hashtable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/viz"
)

// Action types accepted by the hash table visualizer.
const (
	ActionInsert = "insert"
	ActionGet    = "get"
	ActionRemove = "remove"
	ActionResize = "resize"
)

var entryStyles = map[State]lipgloss.Style{
	StateDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	StateComparing: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	StateFound:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	StateInserting: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	StateDeleting:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	StateRehashing: lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
}

var bucketLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Visualizer implements viz.Visualizer for the chained hash table.
//
// Unknown action types fall back to a read-only Get of the "key" param.
type Visualizer struct{}

// NewVisualizer returns the hash table visualizer.
func NewVisualizer() *Visualizer { return &Visualizer{} }

// ID implements viz.Visualizer.
func (*Visualizer) ID() string { return "hashtable" }

// Name implements viz.Visualizer.
func (*Visualizer) Name() string { return "Hash Table" }

// InitialState returns a small sample table with one collision.
func (*Visualizer) InitialState() step.Snapshot {
	t := NewTable(8)
	for _, kv := range [][2]string{{"apple", "red"}, {"banana", "yellow"}, {"grape", "purple"}} {
		idx := hashKey(kv[0], t.Capacity())
		t.Buckets[idx] = append(t.Buckets[idx], Entry{Key: kv[0], Value: kv[1], State: StateDefault})
		t.Size++
	}

	return t
}

// Steps dispatches an action to the matching generator.
func (v *Visualizer) Steps(action viz.Action) []step.Step {
	t, ok := action.Data.(Table)
	if !ok {
		t = v.InitialState().(Table)
	}
	key := action.Param("key", "kiwi")
	value := action.Param("value", "green")

	switch action.Type {
	case ActionInsert:
		return Insert(t, key, value)
	case ActionRemove:
		return Remove(t, key)
	case ActionResize:
		return Resize(t)
	case ActionGet:
		return Get(t, key)
	default:
		// Documented fallback: read-only lookup.
		return Get(t, key)
	}
}

// Draw renders one bucket per line with its chained entries.
func (*Visualizer) Draw(s step.Snapshot) string {
	t, ok := s.(Table)
	if !ok {
		return ""
	}
	var b strings.Builder
	for i, bucket := range t.Buckets {
		b.WriteString(bucketLabel.Render(fmt.Sprintf("[%2d]", i)))
		for _, e := range bucket {
			style, found := entryStyles[e.State]
			if !found {
				style = entryStyles[StateDefault]
			}
			b.WriteString(" → ")
			b.WriteString(style.Render(fmt.Sprintf("%s:%s", e.Key, e.Value)))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("size %d / capacity %d (load %.2f)", t.Size, t.Capacity(), t.LoadFactor()))

	return b.String()
}

// Pseudocode implements viz.Visualizer.
func (*Visualizer) Pseudocode(op string) []string {
	switch op {
	case ActionResize:
		return []string{
			"newBuckets = array of 2*capacity",
			"for each entry: place at hash(key) mod 2*capacity",
		}
	case ActionRemove:
		return []string{
			"i = hash(key) mod capacity",
			"scan bucket[i] for key; unchain when found",
		}
	default:
		return []string{
			"h = 0",
			"for each char c: h = (h*31 + c) mod capacity",
			"scan bucket[h] for key",
		}
	}
}

// Complexity implements viz.Visualizer.
func (*Visualizer) Complexity(op string) viz.Complexity {
	if op == ActionResize {
		return viz.Complexity{Best: "O(n)", Average: "O(n)", Worst: "O(n)", Space: "O(n)"}
	}

	return viz.Complexity{Best: "O(1)", Average: "O(1)", Worst: "O(n)", Space: "O(1)"}
}

// Actions implements viz.Visualizer.
func (*Visualizer) Actions() []viz.ActionSpec {
	kv := []viz.ParamSpec{
		{Name: "key", Placeholder: "kiwi"},
		{Name: "value", Placeholder: "green"},
	}

	return []viz.ActionSpec{
		{Type: ActionInsert, Label: "Insert", Params: kv},
		{Type: ActionGet, Label: "Get", Params: kv[:1]},
		{Type: ActionRemove, Label: "Remove", Params: kv[:1]},
		{Type: ActionResize, Label: "Resize (double capacity)"},
	}
}
