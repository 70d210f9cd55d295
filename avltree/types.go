// Package avltree defines the Tree snapshot type, node states and the
// rotation primitives.
package avltree

import "github.com/katalvlaran/algostep/step"

// State is the render state of a single AVL node.
type State string

// Node render states.
const (
	// StateDefault marks a node with no special emphasis.
	StateDefault State = "default"

	// StateComparing marks the node currently compared with the target.
	StateComparing State = "comparing"

	// StateInserting marks a freshly attached leaf.
	StateInserting State = "inserting"

	// StateUnbalanced marks a node whose balance factor left [-1, 1].
	StateUnbalanced State = "unbalanced"

	// StateBalanced marks the new subtree root right after a rotation.
	StateBalanced State = "balanced"
)

// Node is one AVL node, exclusively owned by its parent link.
type Node struct {
	// Value is the node's key.
	Value int

	// Left and Right are the owned subtrees, nil when absent.
	Left, Right *Node

	// Height is 1 for a leaf, 0 for a nil subtree.
	Height int

	// Balance is height(Left) − height(Right).
	Balance int

	// State is the current render state.
	State State
}

// Tree is the AVL snapshot. It is a value type whose CloneSnapshot
// recursively copies every node.
type Tree struct {
	// Root of the tree, nil when empty.
	Root *Node
}

// NewTree builds a Tree by inserting the given values in order without
// recording steps. Duplicates are ignored.
func NewTree(values ...int) Tree {
	t := Tree{}
	for _, v := range values {
		dup := false
		silentInsert(&t.Root, v, &dup)
	}

	return t
}

// silentInsert performs an uninstrumented AVL insert through link.
func silentInsert(link **Node, v int, dup *bool) {
	n := *link
	if n == nil {
		*link = &Node{Value: v, Height: 1, State: StateDefault}

		return
	}
	switch {
	case v == n.Value:
		*dup = true

		return
	case v < n.Value:
		silentInsert(&n.Left, v, dup)
	default:
		silentInsert(&n.Right, v, dup)
	}
	if *dup {
		return
	}
	update(n)
	switch {
	case n.Balance > 1 && v < n.Left.Value:
		*link = rotateRight(n)
	case n.Balance > 1:
		n.Left = rotateLeft(n.Left)
		*link = rotateRight(n)
	case n.Balance < -1 && v > n.Right.Value:
		*link = rotateLeft(n)
	case n.Balance < -1:
		n.Right = rotateRight(n.Right)
		*link = rotateLeft(n)
	}
}

// CloneSnapshot implements step.Snapshot with a recursive deep copy.
func (t Tree) CloneSnapshot() step.Snapshot {
	return Tree{Root: cloneNode(t.Root)}
}

func cloneNode(n *Node) *Node {
	if n == nil {
		return nil
	}

	return &Node{
		Value:   n.Value,
		Left:    cloneNode(n.Left),
		Right:   cloneNode(n.Right),
		Height:  n.Height,
		Balance: n.Balance,
		State:   n.State,
	}
}

// InOrderValues returns the tree's keys in ascending order.
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

// height returns n's height, 0 for nil.
func height(n *Node) int {
	if n == nil {
		return 0
	}

	return n.Height
}

// update recomputes n's height and balance factor from its children.
func update(n *Node) {
	hl, hr := height(n.Left), height(n.Right)
	n.Height = max(hl, hr) + 1
	n.Balance = hl - hr
}

// rotateRight rotates the subtree rooted at y to the right and returns
// the new root. Heights and balances of both moved nodes are updated.
func rotateRight(y *Node) *Node {
	x := y.Left
	y.Left = x.Right
	x.Right = y
	update(y)
	update(x)

	return x
}

// rotateLeft rotates the subtree rooted at x to the left and returns
// the new root.
func rotateLeft(x *Node) *Node {
	y := x.Right
	x.Right = y.Left
	y.Left = x
	update(x)
	update(y)

	return y
}
