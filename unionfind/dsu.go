package unionfind

import "github.com/katalvlaran/algostep/step"

// MakeSet generates the steps for adding a new singleton set holding
// id. An existing id is a reported no-op.
func MakeSet(input Forest, id int) []step.Step {
	f := input.CloneSnapshot().(Forest)
	rec := step.NewRecorder()

	rec.Record(f, "Creating a singleton set for element %d.", id)

	if f.index(id) >= 0 {
		rec.Record(f, "Element %d already exists: forest unchanged.", id)

		return rec.Steps()
	}

	f.Nodes = append(f.Nodes, Node{ID: id, Parent: id, Rank: 0, State: StateRoot})
	rec.Write()
	rec.RecordMarked(f, nil, []int{len(f.Nodes) - 1},
		"Element %d added as its own root with rank 0.", id)

	f.clearTransient()
	rec.Record(f, "Forest now holds %d elements.", len(f.Nodes))

	return rec.Steps()
}

// Find generates the steps for locating the representative of id:
// one step per parent hop up to the fixed point, then one step per
// node repointed during path compression.
//
// An unknown id yields a single-step not-found report.
// Complexity: O(α(n)) amortized once compressed; the scan-based node
// lookup adds O(n) per hop.
func Find(input Forest, id int) []step.Step {
	f := input.CloneSnapshot().(Forest)
	rec := step.NewRecorder()

	start := f.index(id)
	if start < 0 {
		rec.Record(f, "Element %d not found: nothing to do.", id)

		return rec.Steps()
	}

	rec.Record(f, "Finding the root of element %d.", id)

	// Walk to the fixed point, remembering the path for compression.
	var path []int
	i := start
	for f.Nodes[i].Parent != f.Nodes[i].ID {
		f.Nodes[i].State = StateCurrent
		rec.Read()
		rec.RecordMarked(f, []int{i}, nil,
			"Element %d points to parent %d: following the link.",
			f.Nodes[i].ID, f.Nodes[i].Parent)
		f.Nodes[i].State = StateDefault
		path = append(path, i)
		i = f.index(f.Nodes[i].Parent)
	}

	root := f.Nodes[i].ID
	f.Nodes[i].State = StateRoot
	rec.RecordMarked(f, []int{i}, nil,
		"Element %d is its own parent: root found.", root)

	// Path compression: repoint every visited node directly at the root.
	for _, p := range path {
		if f.Nodes[p].Parent == root {
			continue
		}
		f.Nodes[p].Parent = root
		f.Nodes[p].State = StateCompressed
		rec.Write()
		rec.RecordMarked(f, nil, []int{p},
			"Path compression: element %d now points directly at root %d.",
			f.Nodes[p].ID, root)
	}

	f.clearTransient()
	rec.Record(f, "Find complete: representative of %d is %d.", id, root)

	return rec.Steps()
}

// Union generates the steps for merging the sets holding a and b using
// union by rank: the lower-rank root attaches under the higher-rank
// root; on a tie the surviving root's rank grows by one.
//
// Already-connected elements and unknown IDs are reported no-ops with
// no partial side effects.
func Union(input Forest, a, b int) []step.Step {
	f := input.CloneSnapshot().(Forest)
	rec := step.NewRecorder()

	ia, ib := f.index(a), f.index(b)
	if ia < 0 || ib < 0 {
		missing := a
		if ia >= 0 {
			missing = b
		}
		rec.Record(f, "Element %d not found: union aborted with no changes.", missing)

		return rec.Steps()
	}

	rec.Record(f, "Union of the sets holding %d and %d.", a, b)

	rootA := walkToRoot(rec, &f, ia, a)
	rootB := walkToRoot(rec, &f, ib, b)

	if f.Nodes[rootA].ID == f.Nodes[rootB].ID {
		rec.Record(f, "Elements %d and %d are already in the same set (root %d): nothing to merge.",
			a, b, f.Nodes[rootA].ID)
		f.clearTransient()
		rec.Record(f, "Forest unchanged.")

		return rec.Steps()
	}

	// Attach smaller-rank root under larger-rank root.
	low, high := rootA, rootB
	if f.Nodes[rootA].Rank > f.Nodes[rootB].Rank {
		low, high = rootB, rootA
	}
	tie := f.Nodes[rootA].Rank == f.Nodes[rootB].Rank

	f.Nodes[low].Parent = f.Nodes[high].ID
	f.Nodes[low].State = StateMerged
	rec.Write()
	rec.RecordMarked(f, nil, []int{low},
		"Attached root %d (rank %d) under root %d (rank %d).",
		f.Nodes[low].ID, f.Nodes[low].Rank, f.Nodes[high].ID, f.Nodes[high].Rank)

	if tie {
		f.Nodes[high].Rank++
		rec.Write()
		rec.RecordMarked(f, nil, []int{high},
			"Ranks were equal: root %d's rank grows to %d.",
			f.Nodes[high].ID, f.Nodes[high].Rank)
	}

	f.clearTransient()
	rec.Record(f, "Union complete: %d and %d now share root %d.", a, b, f.Nodes[high].ID)

	return rec.Steps()
}

// walkToRoot emits one hop step per parent link from index i and
// returns the root's index. Union's walks do not compress.
func walkToRoot(rec *step.Recorder, f *Forest, i, label int) int {
	for f.Nodes[i].Parent != f.Nodes[i].ID {
		f.Nodes[i].State = StateCurrent
		rec.Read()
		rec.RecordMarked(*f, []int{i}, nil,
			"Walking from element %d toward the root of %d.", f.Nodes[i].ID, label)
		f.Nodes[i].State = StateDefault
		i = f.index(f.Nodes[i].Parent)
	}

	f.Nodes[i].State = StateRoot
	rec.RecordMarked(*f, []int{i}, nil,
		"Root of %d is %d (rank %d).", label, f.Nodes[i].ID, f.Nodes[i].Rank)

	return i
}
