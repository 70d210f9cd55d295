// Package bst defines the Tree snapshot type and node states.
package bst

import "github.com/katalvlaran/algostep/step"

// State is the render state of a single tree node.
type State string

// Node render states.
const (
	// StateDefault marks a node with no special emphasis.
	StateDefault State = "default"

	// StateComparing marks the node currently compared with the target.
	StateComparing State = "comparing"

	// StateFound marks the node a successful search terminated at.
	StateFound State = "found"

	// StateInserting marks a freshly attached node.
	StateInserting State = "inserting"

	// StateVisited marks a node emitted by an in-order traversal.
	StateVisited State = "visited"
)

// Node is one tree node, exclusively owned by its parent link.
type Node struct {
	// Value is the node's key.
	Value int

	// Left and Right are the owned subtrees, nil when absent.
	Left, Right *Node

	// State is the current render state.
	State State
}

// Tree is the BST snapshot. It is a value type whose CloneSnapshot
// recursively copies every node.
type Tree struct {
	// Root of the tree, nil when empty.
	Root *Node
}

// NewTree builds a Tree by inserting the given values in order without
// recording steps. Duplicates are ignored, matching Insert semantics.
// Complexity: O(n·h).
func NewTree(values ...int) Tree {
	t := Tree{}
	for _, v := range values {
		t.Root = silentInsert(t.Root, v)
	}

	return t
}

// silentInsert performs a plain BST insert with no instrumentation.
func silentInsert(n *Node, v int) *Node {
	if n == nil {
		return &Node{Value: v, State: StateDefault}
	}
	switch {
	case v < n.Value:
		n.Left = silentInsert(n.Left, v)
	case v > n.Value:
		n.Right = silentInsert(n.Right, v)
	}

	return n
}

// CloneSnapshot implements step.Snapshot with a recursive deep copy.
func (t Tree) CloneSnapshot() step.Snapshot {
	return Tree{Root: cloneNode(t.Root)}
}

// cloneNode deep-copies a subtree.
func cloneNode(n *Node) *Node {
	if n == nil {
		return nil
	}

	return &Node{
		Value: n.Value,
		Left:  cloneNode(n.Left),
		Right: cloneNode(n.Right),
		State: n.State,
	}
}

// InOrderValues returns the tree's keys in sorted (in-order) order.
func (t Tree) InOrderValues() []int {
	var vals []int
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		vals = append(vals, n.Value)
		walk(n.Right)
	}
	walk(t.Root)

	return vals
}

// Size returns the number of nodes.
func (t Tree) Size() int {
	var count func(*Node) int
	count = func(n *Node) int {
		if n == nil {
			return 0
		}

		return 1 + count(n.Left) + count(n.Right)
	}

	return count(t.Root)
}

// clearTransient resets every node to StateDefault.
func (t Tree) clearTransient() {
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		n.State = StateDefault
		walk(n.Left)
		walk(n.Right)
	}
	walk(t.Root)
}
