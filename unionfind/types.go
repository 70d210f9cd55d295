// Package unionfind defines the Forest snapshot type and node states.
package unionfind

import "github.com/katalvlaran/algostep/step"

// State is the render state of a single forest node.
type State string

// Node render states.
const (
	// StateDefault marks a node with no special emphasis.
	StateDefault State = "default"

	// StateCurrent marks the node a find walk is standing on.
	StateCurrent State = "current"

	// StateRoot marks a discovered set representative.
	StateRoot State = "root"

	// StateCompressed marks a node just repointed at its root.
	StateCompressed State = "compressed"

	// StateMerged marks a root just attached under another root.
	StateMerged State = "merged"
)

// Node is one disjoint-set element. Parent refers to another node by
// ID; a root is its own parent.
type Node struct {
	// ID is the element's stable identity.
	ID int

	// Parent is the ID of the parent element; Parent == ID at a root.
	Parent int

	// Rank bounds the height of the tree rooted here.
	Rank int

	// State is the current render state.
	State State
}

// Forest is the DSU snapshot: nodes in creation order.
type Forest struct {
	// Nodes in creation order.
	Nodes []Node
}

// NewForest builds a Forest of n singleton sets with IDs 0..n-1.
func NewForest(n int) Forest {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{ID: i, Parent: i, State: StateDefault}
	}

	return Forest{Nodes: nodes}
}

// CloneSnapshot implements step.Snapshot with a full structural copy.
func (f Forest) CloneSnapshot() step.Snapshot {
	return Forest{Nodes: append([]Node(nil), f.Nodes...)}
}

// index locates the node holding id, or -1. The scan keeps lookup
// behavior identical to the classic list-backed implementation; a
// direct id→index map would be an equivalent drop-in.
func (f Forest) index(id int) int {
	for i := range f.Nodes {
		if f.Nodes[i].ID == id {
			return i
		}
	}

	return -1
}

// Parent returns the parent ID of element id, with ok=false for an
// unknown element.
func (f Forest) Parent(id int) (int, bool) {
	i := f.index(id)
	if i < 0 {
		return 0, false
	}

	return f.Nodes[i].Parent, true
}

// Rank returns the rank of element id, with ok=false for an unknown
// element.
func (f Forest) Rank(id int) (int, bool) {
	i := f.index(id)
	if i < 0 {
		return 0, false
	}

	return f.Nodes[i].Rank, true
}

// rootOf follows parent links from index i to the root index without
// mutating anything.
func (f Forest) rootOf(i int) int {
	for f.Nodes[i].Parent != f.Nodes[i].ID {
		i = f.index(f.Nodes[i].Parent)
	}

	return i
}

// clearTransient resets every node to StateDefault.
func (f Forest) clearTransient() {
	for i := range f.Nodes {
		f.Nodes[i].State = StateDefault
	}
}
