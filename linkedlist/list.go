package linkedlist

import "github.com/katalvlaran/algostep/step"

// Insert generates the steps for prepending value as the new head.
//
// Steps: untouched list → new node linked in (StateInserting) →
// terminal step with highlighting cleared.
// Complexity: O(1) list work, O(n) per snapshot clone.
func Insert(input List, value int) []step.Step {
	l := input.CloneSnapshot().(List)
	rec := step.NewRecorder()

	rec.Record(l, "Inserting %d at the head of a %d-node list.", value, l.Len())

	node := Node{ID: l.NextID, Value: value, State: StateInserting}
	l.NextID++
	l.Nodes = append([]Node{node}, l.Nodes...)
	rec.Write()
	rec.RecordMarked(l, nil, []int{0},
		"Linked new node %d with value %d as the head.", node.ID, value)

	l.clearTransient()
	rec.Record(l, "Insertion complete: list has %d nodes.", l.Len())

	return rec.Steps()
}

// Append generates the steps for inserting value at the tail,
// traversing node by node to reach it.
func Append(input List, value int) []step.Step {
	l := input.CloneSnapshot().(List)
	rec := step.NewRecorder()

	rec.Record(l, "Appending %d to a %d-node list.", value, l.Len())

	for i := range l.Nodes {
		l.Nodes[i].State = StateCurrent
		rec.Read()
		rec.RecordMarked(l, []int{i}, nil,
			"Walking past node %d (value %d).", l.Nodes[i].ID, l.Nodes[i].Value)
		l.Nodes[i].State = StateDefault
	}

	node := Node{ID: l.NextID, Value: value, State: StateInserting}
	l.NextID++
	l.Nodes = append(l.Nodes, node)
	rec.Write()
	rec.RecordMarked(l, nil, []int{l.Len() - 1},
		"Linked new node %d with value %d at the tail.", node.ID, value)

	l.clearTransient()
	rec.Record(l, "Append complete: list has %d nodes.", l.Len())

	return rec.Steps()
}

// Search generates the steps for locating the first node holding value.
// A miss is reported in the terminal step, never returned as an error.
func Search(input List, value int) []step.Step {
	l := input.CloneSnapshot().(List)
	rec := step.NewRecorder()

	rec.Record(l, "Searching for %d in a %d-node list.", value, l.Len())
	if l.Len() == 0 {
		rec.Record(l, "List is empty: %d not found.", value)

		return rec.Steps()
	}

	for i := range l.Nodes {
		l.Nodes[i].State = StateCurrent
		rec.Compare()
		rec.RecordMarked(l, []int{i}, nil,
			"Comparing %d with node %d (value %d).", value, l.Nodes[i].ID, l.Nodes[i].Value)

		if l.Nodes[i].Value == value {
			l.Nodes[i].State = StateFound
			rec.RecordMarked(l, []int{i}, nil,
				"Found %d at node %d, position %d.", value, l.Nodes[i].ID, i)

			return rec.Steps()
		}
		l.Nodes[i].State = StateDefault
	}

	rec.Record(l, "Reached the end of the list: %d not found.", value)

	return rec.Steps()
}

// Delete generates the steps for unlinking the first node holding
// value. A miss is reported in the terminal step.
func Delete(input List, value int) []step.Step {
	l := input.CloneSnapshot().(List)
	rec := step.NewRecorder()

	rec.Record(l, "Deleting %d from a %d-node list.", value, l.Len())
	if l.Len() == 0 {
		rec.Record(l, "List is empty: nothing to delete.")

		return rec.Steps()
	}

	for i := range l.Nodes {
		l.Nodes[i].State = StateCurrent
		rec.Compare()
		rec.RecordMarked(l, []int{i}, nil,
			"Comparing %d with node %d (value %d).", value, l.Nodes[i].ID, l.Nodes[i].Value)

		if l.Nodes[i].Value == value {
			l.Nodes[i].State = StateDeleting
			rec.RecordMarked(l, []int{i}, nil,
				"Unlinking node %d holding %d.", l.Nodes[i].ID, value)

			id := l.Nodes[i].ID
			l.Nodes = append(l.Nodes[:i], l.Nodes[i+1:]...)
			rec.Write()
			l.clearTransient()
			rec.Record(l, "Deleted node %d: list has %d nodes left.", id, l.Len())

			return rec.Steps()
		}
		l.Nodes[i].State = StateDefault
	}

	rec.Record(l, "Reached the end of the list: %d not found, nothing deleted.", value)

	return rec.Steps()
}
