package trie

import (
	"strings"

	"github.com/katalvlaran/algostep/step"
)

// Insert generates the steps for storing word, walking one node per
// character and creating children on miss.
//
// Complexity: O(len(word)) node visits.
func Insert(input Trie, word string) []step.Step {
	t := input.CloneSnapshot().(Trie)
	rec := step.NewRecorder()

	rec.Record(t, "Inserting %q into the trie.", word)
	if word == "" {
		rec.Record(t, "Empty word: nothing to insert.")

		return rec.Steps()
	}

	cur := t.Root
	runes := []rune(word)
	for i, c := range runes {
		child := cur.child(c)
		if child == nil {
			child = &Node{ID: t.NextID, Char: c, State: StateInserting, Depth: cur.Depth + 1}
			t.NextID++
			cur.attach(child)
			rec.Write()
			rec.Record(t, "No child %q under depth %d: created node %d.", c, cur.Depth, child.ID)
			child.State = StateCurrent
		} else {
			child.State = StateCurrent
			rec.Compare()
			rec.Record(t, "Child %q exists (node %d): following it (%d of %d characters).",
				c, child.ID, i+1, len(runes))
		}
		cur = child
	}

	if cur.IsEndOfWord {
		rec.Record(t, "Word %q already exists: end-of-word flag unchanged.", word)
	} else {
		cur.IsEndOfWord = true
		rec.Write()
		rec.Record(t, "Marked node %d as end of word %q.", cur.ID, word)
	}

	t.clearTransient()
	rec.Record(t, "Insertion complete: trie now holds %d words.", len(t.Words()))

	return rec.Steps()
}

// Search generates the steps for an exact word lookup, failing fast on
// a missing character and distinguishing a complete word from a bare
// prefix.
func Search(input Trie, word string) []step.Step {
	t := input.CloneSnapshot().(Trie)
	rec := step.NewRecorder()

	rec.Record(t, "Searching for word %q.", word)
	if word == "" {
		rec.Record(t, "Empty word: not found.")

		return rec.Steps()
	}

	cur := t.Root
	for _, c := range word {
		child := cur.child(c)
		rec.Compare()
		if child == nil {
			rec.Record(t, "No child %q at depth %d: %q is not in the trie.", c, cur.Depth, word)

			return rec.Steps()
		}
		child.State = StateCurrent
		rec.Record(t, "Matched %q at node %d (depth %d).", c, child.ID, child.Depth)
		// The highlight travels with the walk; the terminal step keeps
		// only terminal states.
		child.State = StateDefault
		cur = child
	}

	if cur.IsEndOfWord {
		cur.State = StateFound
		rec.Record(t, "Found %q: node %d carries the end-of-word flag.", word, cur.ID)
	} else {
		rec.Record(t, "%q exists only as a prefix, not as a complete word.", word)
	}

	return rec.Steps()
}

// PrefixQuery generates the steps for collecting every stored word
// beginning with prefix, in alphabetical (pre-order) order.
func PrefixQuery(input Trie, prefix string) []step.Step {
	t := input.CloneSnapshot().(Trie)
	rec := step.NewRecorder()

	rec.Record(t, "Collecting words with prefix %q.", prefix)

	cur := t.Root
	for _, c := range prefix {
		child := cur.child(c)
		rec.Compare()
		if child == nil {
			rec.Record(t, "No child %q at depth %d: no words start with %q.", c, cur.Depth, prefix)

			return rec.Steps()
		}
		child.State = StateCurrent
		rec.Record(t, "Matched prefix character %q at node %d.", c, child.ID)
		child.State = StateDefault
		cur = child
	}

	var words []string
	var collect func(n *Node, acc []rune)
	collect = func(n *Node, acc []rune) {
		if n.IsEndOfWord {
			n.State = StateCollected
			rec.Read()
			words = append(words, prefix+string(acc))
			rec.Record(t, "Collected word %q.", words[len(words)-1])
		}
		for _, ch := range n.Children {
			collect(ch, append(acc, ch.Char))
		}
	}
	collect(cur, nil)

	if len(words) == 0 {
		rec.Record(t, "Prefix %q exists but no complete words lie beneath it.", prefix)

		return rec.Steps()
	}

	rec.Record(t, "Found %d word(s) with prefix %q: %s.",
		len(words), prefix, strings.Join(words, ", "))

	return rec.Steps()
}
