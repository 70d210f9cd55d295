package trie_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/trie"
)

// finalTrie validates a sequence and returns its last snapshot.
func finalTrie(t *testing.T, steps []step.Step) trie.Trie {
	t.Helper()
	if err := step.Validate(steps); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	return steps[len(steps)-1].Snapshot.(trie.Trie)
}

// lastDesc returns the terminal step's description.
func lastDesc(steps []step.Step) string {
	return steps[len(steps)-1].Description
}

// TestInsert_SharesPrefixes verifies node reuse along shared prefixes
// and sorted children.
func TestInsert_SharesPrefixes(t *testing.T) {
	tr := trie.NewTrie()
	for _, w := range []string{"cat", "car", "card"} {
		tr = finalTrie(t, trie.Insert(tr, w))
	}

	want := []string{"car", "card", "cat"}
	if got := tr.Words(); !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %v; want %v", got, want)
	}

	// "c" level has exactly one child; its children must be sorted r < t.
	c := tr.Root.Children[0]
	if c.Char != 'c' || len(tr.Root.Children) != 1 {
		t.Fatalf("root children = %v", tr.Root.Children)
	}
	if len(c.Children) != 1 || c.Children[0].Char != 'a' {
		t.Fatalf("'c' children not shared: %+v", c.Children)
	}
	a := c.Children[0]
	if len(a.Children) != 2 || a.Children[0].Char != 'r' || a.Children[1].Char != 't' {
		t.Errorf("'a' children not sorted: %+v", a.Children)
	}
}

// TestInsert_ExistingWord verifies the duplicate report.
func TestInsert_ExistingWord(t *testing.T) {
	tr := trie.NewTrie("car")
	steps := trie.Insert(tr, "car")
	found := false
	for _, s := range steps {
		if strings.Contains(s.Description, "already exists") {
			found = true
		}
	}
	if !found {
		t.Error("duplicate word not reported")
	}
}

// TestSearch_Outcomes covers word hit, prefix-only, and hard miss.
func TestSearch_Outcomes(t *testing.T) {
	tr := trie.NewTrie("car", "card")

	hit := trie.Search(tr, "car")
	if !strings.Contains(lastDesc(hit), "Found \"car\"") {
		t.Errorf("hit description = %q", lastDesc(hit))
	}

	prefixOnly := trie.Search(tr, "ca")
	if !strings.Contains(lastDesc(prefixOnly), "only as a prefix") {
		t.Errorf("prefix-only description = %q", lastDesc(prefixOnly))
	}

	miss := trie.Search(tr, "dog")
	if !strings.Contains(lastDesc(miss), "not in the trie") {
		t.Errorf("miss description = %q", lastDesc(miss))
	}
	if err := step.Validate(miss); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

// TestPrefixQuery_CollectsAlphabetically verifies count, order and the
// empty-result report.
func TestPrefixQuery_CollectsAlphabetically(t *testing.T) {
	tr := trie.NewTrie("car", "card", "care", "cat", "dog")

	steps := trie.PrefixQuery(tr, "ca")
	if !strings.Contains(lastDesc(steps), "Found 4 word(s)") {
		t.Errorf("summary = %q", lastDesc(steps))
	}
	// Collected steps must appear in alphabetical order.
	var collected []string
	for _, s := range steps {
		if strings.Contains(s.Description, "Collected word") {
			collected = append(collected, s.Description)
		}
	}
	want := []string{"car", "card", "care", "cat"}
	if len(collected) != len(want) {
		t.Fatalf("collected %d words; want %d", len(collected), len(want))
	}
	for i, w := range want {
		if !strings.Contains(collected[i], "\""+w+"\"") {
			t.Errorf("collected[%d] = %q; want word %q", i, collected[i], w)
		}
	}

	none := trie.PrefixQuery(tr, "zz")
	if !strings.Contains(lastDesc(none), "no words start with") {
		t.Errorf("no-match description = %q", lastDesc(none))
	}
}

// TestTerminalSteps_NoTransientStates verifies the last snapshot of
// every generator outcome carries no walk highlighting: only terminal
// states (found, collected) may remain.
func TestTerminalSteps_NoTransientStates(t *testing.T) {
	tr := trie.NewTrie("car", "card", "cat")

	sequences := map[string][]step.Step{
		"search hit":         trie.Search(tr, "car"),
		"search prefix-only": trie.Search(tr, "ca"),
		"search partial":     trie.Search(tr, "cab"),
		"prefix query":       trie.PrefixQuery(tr, "ca"),
		"insert":             trie.Insert(tr, "cart"),
	}
	for name, steps := range sequences {
		final := finalTrie(t, steps)
		var walk func(n *trie.Node)
		walk = func(n *trie.Node) {
			if n.State == trie.StateCurrent || n.State == trie.StateInserting {
				t.Errorf("%s: terminal step leaves node %d (%q) in transient state %q",
					name, n.ID, n.Char, n.State)
			}
			for _, ch := range n.Children {
				walk(ch)
			}
		}
		walk(final.Root)
	}

	// The found mark itself must survive.
	hit := finalTrie(t, trie.Search(tr, "car"))
	n := hit.Root.Children[0].Children[0].Children[0]
	if n.Char != 'r' || n.State != trie.StateFound {
		t.Errorf("hit terminal node = %q state %q; want 'r' in %q", n.Char, n.State, trie.StateFound)
	}
}

// TestClone_IDStability verifies node IDs survive cloning so renderers
// can track identity.
func TestClone_IDStability(t *testing.T) {
	tr := trie.NewTrie("ab")
	cp := tr.CloneSnapshot().(trie.Trie)
	if cp.Root.Children[0].ID != tr.Root.Children[0].ID {
		t.Error("clone changed node identity")
	}
	cp.Root.Children[0].State = trie.StateFound
	if tr.Root.Children[0].State == trie.StateFound {
		t.Error("clone shares nodes with the original")
	}
}
