package avltree

import "github.com/katalvlaran/algostep/step"

// Insert generates the steps for inserting value into the AVL tree.
//
// Steps:
//  1. Record the untouched tree.
//  2. Ordinary BST descent, one comparison step per node; duplicates
//     terminate with an "already exists" step and no mutation.
//  3. Attach the new leaf (recorded as a write).
//  4. Unwind: recompute height/balance per ancestor (recorded); when a
//     balance factor leaves [-1, 1], identify the LL/RR/LR/RL case by
//     comparing the inserted value against the subtree root's nearer
//     child, record the pre-rotation step, rotate, and record the
//     post-rotation step with the new subtree root in StateBalanced.
//  5. Terminal step with highlighting cleared.
//
// Complexity: O(log n) comparisons; at most one single or double
// rotation per insert.
func Insert(input Tree, value int) []step.Step {
	t := input.CloneSnapshot().(Tree)
	rec := step.NewRecorder()

	rec.Record(t, "Inserting %d into a %d-node AVL tree.", value, t.Size())

	dup := false
	insertAt(rec, &t, &t.Root, value, &dup)

	if dup {
		t.clearTransient()
		rec.Record(t, "Tree unchanged.")

		return rec.Steps()
	}

	t.clearTransient()
	rec.Record(t, "Insertion complete: tree height is %d, all balance factors within [-1, 1].",
		height(t.Root))

	return rec.Steps()
}

// insertAt inserts value into the subtree reached through link,
// recording steps against the whole tree t so every snapshot is
// complete. Mutating through link keeps rotated subtrees attached.
func insertAt(rec *step.Recorder, t *Tree, link **Node, value int, dup *bool) {
	n := *link
	if n == nil {
		*link = &Node{Value: value, Height: 1, Balance: 0, State: StateInserting}
		rec.Write()
		rec.Record(*t, "Attached %d as a new leaf.", value)

		return
	}

	n.State = StateComparing
	rec.Compare()
	rec.Record(*t, "Comparing %d with node %d.", value, n.Value)
	n.State = StateDefault

	switch {
	case value == n.Value:
		*dup = true
		rec.Record(*t, "Value %d already exists: nothing inserted.", value)

		return
	case value < n.Value:
		insertAt(rec, t, &n.Left, value, dup)
	default:
		insertAt(rec, t, &n.Right, value, dup)
	}
	if *dup {
		return
	}

	oldHeight, oldBalance := n.Height, n.Balance
	update(n)
	if n.Height != oldHeight || n.Balance != oldBalance {
		rec.Record(*t, "Updated node %d: height %d, balance factor %d.",
			n.Value, n.Height, n.Balance)
	}

	if n.Balance > 1 || n.Balance < -1 {
		rebalance(rec, t, link, value)
	}
}

// rebalance identifies the imbalance case at *link, records the pre-
// and post-rotation steps, and re-links the rotated subtree.
func rebalance(rec *step.Recorder, t *Tree, link **Node, value int) {
	n := *link
	n.State = StateUnbalanced
	rec.SetHighlight("rotation")

	switch {
	case n.Balance > 1 && value < n.Left.Value:
		rec.Record(*t, "Left-Left case at node %d (balance %d): single right rotation.",
			n.Value, n.Balance)
		rec.Write()
		*link = rotateRight(n)
	case n.Balance > 1:
		rec.Record(*t, "Left-Right case at node %d (balance %d): rotate %d left, then %d right.",
			n.Value, n.Balance, n.Left.Value, n.Value)
		rec.Write()
		n.Left = rotateLeft(n.Left)
		rec.Write()
		*link = rotateRight(n)
	case n.Balance < -1 && value > n.Right.Value:
		rec.Record(*t, "Right-Right case at node %d (balance %d): single left rotation.",
			n.Value, n.Balance)
		rec.Write()
		*link = rotateLeft(n)
	default:
		rec.Record(*t, "Right-Left case at node %d (balance %d): rotate %d right, then %d left.",
			n.Value, n.Balance, n.Right.Value, n.Value)
		rec.Write()
		n.Right = rotateRight(n.Right)
		rec.Write()
		*link = rotateLeft(n)
	}

	n.State = StateDefault
	(*link).State = StateBalanced
	rec.Record(*t, "Rotation complete: subtree now rooted at %d (balance %d).",
		(*link).Value, (*link).Balance)
	rec.SetHighlight("")
	(*link).State = StateDefault
}
