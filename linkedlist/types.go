// Package linkedlist defines the List snapshot type and node states.
package linkedlist

import "github.com/katalvlaran/algostep/step"

// State is the render state of a single list node.
type State string

// Node render states.
const (
	// StateDefault marks a node with no special emphasis.
	StateDefault State = "default"

	// StateCurrent marks the node a traversal is standing on.
	StateCurrent State = "current"

	// StateFound marks the node a successful search terminated at.
	StateFound State = "found"

	// StateInserting marks a node being linked in.
	StateInserting State = "inserting"

	// StateDeleting marks a node being unlinked.
	StateDeleting State = "deleting"
)

// Node is one list cell. ID is stable across clones and positions.
type Node struct {
	// ID is the node's stable identity.
	ID int

	// Value is the node's payload.
	Value int

	// State is the current render state.
	State State
}

// List is the linked list snapshot: nodes in list order plus the next
// free node ID. It is a value type; CloneSnapshot deep-copies it.
type List struct {
	// Nodes in head-to-tail order.
	Nodes []Node

	// NextID is the ID the next inserted node receives.
	NextID int
}

// NewList builds a List of the given values with sequential node IDs.
// Complexity: O(n).
func NewList(values ...int) List {
	nodes := make([]Node, len(values))
	for i, v := range values {
		nodes[i] = Node{ID: i, Value: v, State: StateDefault}
	}

	return List{Nodes: nodes, NextID: len(values)}
}

// CloneSnapshot implements step.Snapshot with a full structural copy.
func (l List) CloneSnapshot() step.Snapshot {
	return List{Nodes: append([]Node(nil), l.Nodes...), NextID: l.NextID}
}

// Values returns the node values in list order.
func (l List) Values() []int {
	vals := make([]int, len(l.Nodes))
	for i, n := range l.Nodes {
		vals[i] = n.Value
	}

	return vals
}

// Len returns the number of nodes.
func (l List) Len() int { return len(l.Nodes) }

// clearTransient resets every node to StateDefault.
func (l List) clearTransient() {
	for i := range l.Nodes {
		l.Nodes[i].State = StateDefault
	}
}
