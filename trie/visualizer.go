package trie

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/viz"
)

// Action types accepted by the trie visualizer.
const (
	ActionInsert = "insert"
	ActionSearch = "search"
	ActionPrefix = "prefix"
)

var trieStyles = map[State]lipgloss.Style{
	StateDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	StateCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	StateFound:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	StateInserting: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	StateCollected: lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
}

// Visualizer implements viz.Visualizer for the character trie.
//
// Unknown action types fall back to a read-only search of the "word"
// param.
type Visualizer struct{}

// NewVisualizer returns the trie visualizer.
func NewVisualizer() *Visualizer { return &Visualizer{} }

// ID implements viz.Visualizer.
func (*Visualizer) ID() string { return "trie" }

// Name implements viz.Visualizer.
func (*Visualizer) Name() string { return "Trie (Prefix Tree)" }

// InitialState returns a sample trie with shared prefixes.
func (*Visualizer) InitialState() step.Snapshot {
	return NewTrie("car", "card", "care", "cat", "dog")
}

// Steps dispatches an action to the matching generator.
func (v *Visualizer) Steps(action viz.Action) []step.Step {
	t, ok := action.Data.(Trie)
	if !ok {
		t = v.InitialState().(Trie)
	}
	word := action.Param("word", "car")

	switch action.Type {
	case ActionInsert:
		return Insert(t, word)
	case ActionPrefix:
		return PrefixQuery(t, word)
	case ActionSearch:
		return Search(t, word)
	default:
		// Documented fallback: read-only search.
		return Search(t, word)
	}
}

// Draw renders the trie as an indented tree, one node per line.
func (*Visualizer) Draw(s step.Snapshot) string {
	t, ok := s.(Trie)
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString("(root)\n")
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, ch := range n.Children {
			style, found := trieStyles[ch.State]
			if !found {
				style = trieStyles[StateDefault]
			}
			label := string(ch.Char)
			if ch.IsEndOfWord {
				label += "●"
			}
			b.WriteString(strings.Repeat("  ", ch.Depth))
			b.WriteString(style.Render(label))
			b.WriteString("\n")
			walk(ch)
		}
	}
	walk(t.Root)
	b.WriteString(fmt.Sprintf("%d words stored", len(t.Words())))

	return b.String()
}

// Pseudocode implements viz.Visualizer.
func (*Visualizer) Pseudocode(op string) []string {
	switch op {
	case ActionInsert:
		return []string{
			"cur = root",
			"for each char c: follow or create child(c)",
			"mark cur as end of word",
		}
	case ActionPrefix:
		return []string{
			"walk the prefix; fail fast on a missing char",
			"pre-order collect descendants with end-of-word set",
		}
	default:
		return []string{
			"cur = root",
			"for each char c: cur = child(c) or fail",
			"found iff cur.isEndOfWord",
		}
	}
}

// Complexity implements viz.Visualizer.
func (*Visualizer) Complexity(op string) viz.Complexity {
	if op == ActionPrefix {
		return viz.Complexity{Best: "O(m)", Average: "O(m + k)", Worst: "O(m + k)", Space: "O(k)"}
	}

	return viz.Complexity{Best: "O(m)", Average: "O(m)", Worst: "O(m)", Space: "O(m)"}
}

// Actions implements viz.Visualizer.
func (*Visualizer) Actions() []viz.ActionSpec {
	word := []viz.ParamSpec{{Name: "word", Placeholder: "car"}}

	return []viz.ActionSpec{
		{Type: ActionInsert, Label: "Insert word", Params: word},
		{Type: ActionSearch, Label: "Search word", Params: word},
		{Type: ActionPrefix, Label: "Prefix query", Params: word},
	}
}
