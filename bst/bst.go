package bst

import "github.com/katalvlaran/algostep/step"

// Insert generates the steps for inserting value into the tree.
//
// Steps:
//  1. Record the untouched tree.
//  2. Descend from the root, one comparison step per node; equal keys
//     terminate with an "already exists" step and no mutation.
//  3. Attach the new leaf (StateInserting, recorded as a write).
//  4. Terminal step with highlighting cleared.
//
// Complexity: O(h) comparisons for tree height h.
func Insert(input Tree, value int) []step.Step {
	t := input.CloneSnapshot().(Tree)
	rec := step.NewRecorder()

	rec.Record(t, "Inserting %d into a %d-node tree.", value, t.Size())

	if t.Root == nil {
		t.Root = &Node{Value: value, State: StateInserting}
		rec.Write()
		rec.Record(t, "Tree was empty: %d becomes the root.", value)
		t.clearTransient()
		rec.Record(t, "Insertion complete.")

		return rec.Steps()
	}

	cur := t.Root
	for {
		cur.State = StateComparing
		rec.Compare()
		rec.Record(t, "Comparing %d with node %d.", value, cur.Value)

		switch {
		case value == cur.Value:
			rec.Record(t, "Value %d already exists: nothing inserted.", value)
			t.clearTransient()
			rec.Record(t, "Tree unchanged.")

			return rec.Steps()
		case value < cur.Value:
			if cur.Left == nil {
				cur.State = StateDefault
				cur.Left = &Node{Value: value, State: StateInserting}
				rec.Write()
				rec.Record(t, "Attached %d as the left child of %d.", value, cur.Value)
				t.clearTransient()
				rec.Record(t, "Insertion complete.")

				return rec.Steps()
			}
			cur.State = StateDefault
			cur = cur.Left
		default:
			if cur.Right == nil {
				cur.State = StateDefault
				cur.Right = &Node{Value: value, State: StateInserting}
				rec.Write()
				rec.Record(t, "Attached %d as the right child of %d.", value, cur.Value)
				t.clearTransient()
				rec.Record(t, "Insertion complete.")

				return rec.Steps()
			}
			cur.State = StateDefault
			cur = cur.Right
		}
	}
}

// Search generates the steps for locating value in the tree.
// A miss is reported in the terminal step; an empty tree yields the
// two-step start/not-found sequence.
func Search(input Tree, value int) []step.Step {
	t := input.CloneSnapshot().(Tree)
	rec := step.NewRecorder()

	rec.Record(t, "Searching for %d in a %d-node tree.", value, t.Size())
	if t.Root == nil {
		rec.Record(t, "Tree is empty: %d not found.", value)

		return rec.Steps()
	}

	cur := t.Root
	for cur != nil {
		cur.State = StateComparing
		rec.Compare()
		rec.Record(t, "Comparing %d with node %d.", value, cur.Value)

		switch {
		case value == cur.Value:
			cur.State = StateFound
			rec.Record(t, "Found %d.", value)

			return rec.Steps()
		case value < cur.Value:
			cur.State = StateDefault
			if cur.Left == nil {
				rec.Record(t, "No left child under %d: %d not found.", cur.Value, value)

				return rec.Steps()
			}
			cur = cur.Left
		default:
			cur.State = StateDefault
			if cur.Right == nil {
				rec.Record(t, "No right child under %d: %d not found.", cur.Value, value)

				return rec.Steps()
			}
			cur = cur.Right
		}
	}

	return rec.Steps()
}

// InOrder generates the steps of an in-order traversal, visiting every
// node in ascending key order and marking it StateVisited.
func InOrder(input Tree) []step.Step {
	t := input.CloneSnapshot().(Tree)
	rec := step.NewRecorder()

	rec.Record(t, "Starting in-order traversal of a %d-node tree.", t.Size())
	if t.Root == nil {
		rec.Record(t, "Tree is empty: nothing to visit.")

		return rec.Steps()
	}

	visited := 0
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		n.State = StateVisited
		rec.Read()
		visited++
		rec.Record(t, "Visited %d (%d of %d).", n.Value, visited, t.Size())
		walk(n.Right)
	}
	walk(t.Root)

	t.clearTransient()
	rec.Record(t, "Traversal complete: visited %d nodes in ascending order.", visited)

	return rec.Steps()
}
