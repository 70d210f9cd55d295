// Package trie defines the Trie snapshot type and node states.
package trie

import (
	"sort"

	"github.com/katalvlaran/algostep/step"
)

// State is the render state of a single trie node.
type State string

// Node render states.
const (
	// StateDefault marks a node with no special emphasis.
	StateDefault State = "default"

	// StateCurrent marks the node a walk is standing on.
	StateCurrent State = "current"

	// StateFound marks the terminal node of a successful search.
	StateFound State = "found"

	// StateInserting marks a freshly created node.
	StateInserting State = "inserting"

	// StateCollected marks an end-of-word node gathered by a prefix query.
	StateCollected State = "collected"
)

// Node is one trie node. The root holds the zero rune and depth 0.
type Node struct {
	// ID is the node's stable identity.
	ID int

	// Char is the character on the edge leading to this node.
	Char rune

	// IsEndOfWord marks that a stored word terminates here.
	IsEndOfWord bool

	// Children are the owned child nodes, sorted by Char.
	Children []*Node

	// State is the current render state.
	State State

	// Depth is the node's distance from the root.
	Depth int
}

// Trie is the trie snapshot: the root node plus the next free node ID.
type Trie struct {
	// Root is the sentinel root node, never nil after NewTrie.
	Root *Node

	// NextID is the ID the next created node receives.
	NextID int
}

// NewTrie builds a Trie containing the given words, inserted without
// recording steps.
func NewTrie(words ...string) Trie {
	t := Trie{Root: &Node{ID: 0, State: StateDefault}, NextID: 1}
	for _, w := range words {
		t.silentInsert(w)
	}

	return t
}

// silentInsert stores word with no instrumentation.
func (t *Trie) silentInsert(word string) {
	cur := t.Root
	for _, c := range word {
		child := cur.child(c)
		if child == nil {
			child = &Node{ID: t.NextID, Char: c, State: StateDefault, Depth: cur.Depth + 1}
			t.NextID++
			cur.attach(child)
		}
		cur = child
	}
	cur.IsEndOfWord = true
}

// child returns the child holding c, or nil.
func (n *Node) child(c rune) *Node {
	for _, ch := range n.Children {
		if ch.Char == c {
			return ch
		}
	}

	return nil
}

// attach inserts child keeping Children sorted by Char.
func (n *Node) attach(child *Node) {
	n.Children = append(n.Children, child)
	sort.Slice(n.Children, func(i, j int) bool {
		return n.Children[i].Char < n.Children[j].Char
	})
}

// CloneSnapshot implements step.Snapshot with a recursive deep copy.
func (t Trie) CloneSnapshot() step.Snapshot {
	return Trie{Root: cloneNode(t.Root), NextID: t.NextID}
}

func cloneNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	cp := &Node{
		ID:          n.ID,
		Char:        n.Char,
		IsEndOfWord: n.IsEndOfWord,
		State:       n.State,
		Depth:       n.Depth,
	}
	if len(n.Children) > 0 {
		cp.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			cp.Children[i] = cloneNode(ch)
		}
	}

	return cp
}

// Words returns every stored word in alphabetical order.
func (t Trie) Words() []string {
	var words []string
	var walk func(n *Node, prefix []rune)
	walk = func(n *Node, prefix []rune) {
		if n.IsEndOfWord {
			words = append(words, string(prefix))
		}
		for _, ch := range n.Children {
			walk(ch, append(prefix, ch.Char))
		}
	}
	walk(t.Root, nil)

	return words
}

// clearTransient resets every node to StateDefault.
func (t Trie) clearTransient() {
	var walk func(*Node)
	walk = func(n *Node) {
		n.State = StateDefault
		for _, ch := range n.Children {
			walk(ch)
		}
	}
	walk(t.Root)
}
