// Package step defines the shared vocabulary of the visualization core:
// the Step, Snapshot and Meta types every generator emits, the Recorder
// used to build step sequences, and validation of finished sequences.
//
// 🚀 What is a Step?
//
//	One immutable, described, countered snapshot in a replayable
//	sequence. A generator runs a classic algorithm over a working copy
//	of a structure and records a Step at every semantically meaningful
//	moment — a comparison, a swap, a pointer hop, a rotation — so a
//	viewer can scrub the execution forward and backward like a
//	time-travel debugger.
//
// ✨ Guarantees every sequence upholds (see Validate):
//   - IDs are the sequence positions: steps[i].ID == i
//   - every Step carries a non-empty Description
//   - Meta counters are cumulative and never decrease
//   - snapshots are deep copies — no Step aliases live working state
//
// ⚙️ Usage (inside a generator):
//
//	rec := step.NewRecorder()
//	rec.Record(arr, "Starting selection sort on %d elements.", n)
//	rec.Compare()
//	rec.RecordMarked(arr, []int{i, j}, nil, "Comparing %d with %d.", a, b)
//	return rec.Steps()
//
// Complexity: Record is O(size of one snapshot) due to the deep clone;
// a full run is O(steps · snapshot size). Memory: the same.
package step
