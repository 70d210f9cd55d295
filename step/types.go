// Package step declares the Step, Snapshot and Meta value types plus
// the sentinel errors surfaced by sequence validation.
package step

import "errors"

// Sentinel errors for step sequence validation.
var (
	// ErrEmptySequence indicates a generator returned no steps at all.
	ErrEmptySequence = errors.New("step: sequence is empty")

	// ErrIDOrder indicates steps[i].ID != i for some position i.
	ErrIDOrder = errors.New("step: step IDs out of order")

	// ErrEmptyDescription indicates a step without a human-readable description.
	ErrEmptyDescription = errors.New("step: empty description")

	// ErrCounterRegression indicates a cumulative counter decreased between steps.
	ErrCounterRegression = errors.New("step: counter regression")

	// ErrNilSnapshot indicates a step carrying no snapshot.
	ErrNilSnapshot = errors.New("step: nil snapshot")
)

// Snapshot is the deep-copyable domain state carried by a Step.
//
// CloneSnapshot must return an independently owned copy: mutating the
// receiver after the call must never be observable through the clone.
// Every domain package (sorting.Array, bst.Tree, graphdata.Graph, ...)
// implements this on its value type.
type Snapshot interface {
	CloneSnapshot() Snapshot
}

// Meta holds the operation counters accumulated so far in one run,
// plus optional rendering hints for the calling UI.
//
// Counters are cumulative: for consecutive steps each counter is
// non-decreasing. CodeLine and Highlight are hints only and carry no
// algorithmic meaning.
type Meta struct {
	// Comparisons counts value comparisons performed so far.
	Comparisons int

	// Swaps counts element exchanges performed so far.
	Swaps int

	// Reads counts element reads performed so far.
	Reads int

	// Writes counts element writes performed so far.
	Writes int

	// CodeLine is a 1-based pseudocode line to highlight, 0 when unset.
	CodeLine int

	// Highlight is an optional renderer color hint, empty when unset.
	Highlight string
}

// Step is the atomic unit of replay: one described, countered,
// immutable snapshot of a structure mid-algorithm.
type Step struct {
	// ID is the sequence position, strictly increasing from 0.
	ID int

	// Description is a non-empty sentence of what just happened.
	Description string

	// Snapshot is an independently owned deep copy of the domain state.
	Snapshot Snapshot

	// Meta carries the cumulative counters at this instant.
	Meta Meta

	// Active lists positions a renderer should emphasize, if any.
	Active []int

	// Modified lists positions mutated by this step, if any.
	Modified []int
}
