package step

import "fmt"

// Validate checks the structural invariants every generated sequence
// must uphold:
//
//  1. the sequence is non-empty;
//  2. steps[i].ID == i for every position i;
//  3. every step has a non-empty Description and a non-nil Snapshot;
//  4. each cumulative counter is non-decreasing between consecutive steps.
//
// Returns nil when all invariants hold, or a wrapped sentinel error
// naming the first violated invariant and its position.
// Complexity: O(len(steps)).
func Validate(steps []Step) error {
	if len(steps) == 0 {
		return ErrEmptySequence
	}
	var prev Meta
	for i, s := range steps {
		if s.ID != i {
			return fmt.Errorf("%w: steps[%d].ID = %d", ErrIDOrder, i, s.ID)
		}
		if s.Description == "" {
			return fmt.Errorf("%w: steps[%d]", ErrEmptyDescription, i)
		}
		if s.Snapshot == nil {
			return fmt.Errorf("%w: steps[%d]", ErrNilSnapshot, i)
		}
		if i > 0 && counterRegressed(prev, s.Meta) {
			return fmt.Errorf("%w: steps[%d]", ErrCounterRegression, i)
		}
		prev = s.Meta
	}

	return nil
}

// counterRegressed reports whether any cumulative counter in cur is
// smaller than in prev.
func counterRegressed(prev, cur Meta) bool {
	return cur.Comparisons < prev.Comparisons ||
		cur.Swaps < prev.Swaps ||
		cur.Reads < prev.Reads ||
		cur.Writes < prev.Writes
}
