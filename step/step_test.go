package step_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/algostep/step"
)

// boxed is a minimal Snapshot for recorder tests: a one-cell box whose
// clone must be independent of the original.
type boxed struct {
	cells []int
}

func (b boxed) CloneSnapshot() step.Snapshot {
	return boxed{cells: append([]int(nil), b.cells...)}
}

// TestRecorder_CloneIsolation verifies that mutating the working state
// after Record does not leak into previously recorded snapshots.
func TestRecorder_CloneIsolation(t *testing.T) {
	w := boxed{cells: []int{1}}
	rec := step.NewRecorder()
	rec.Record(w, "initial cell is %d", w.cells[0])

	w.cells[0] = 99
	rec.Record(w, "cell overwritten")

	got := rec.Steps()
	if len(got) != 2 {
		t.Fatalf("steps = %d; want 2", len(got))
	}
	if v := got[0].Snapshot.(boxed).cells[0]; v != 1 {
		t.Errorf("frozen snapshot mutated: cell = %d; want 1", v)
	}
	if v := got[1].Snapshot.(boxed).cells[0]; v != 99 {
		t.Errorf("second snapshot cell = %d; want 99", v)
	}
}

// TestRecorder_IDsAndCounters verifies sequential IDs and cumulative,
// per-step-frozen counters.
func TestRecorder_IDsAndCounters(t *testing.T) {
	w := boxed{cells: []int{0}}
	rec := step.NewRecorder()

	rec.Record(w, "start")
	rec.Compare()
	rec.Compare()
	rec.Record(w, "after two comparisons")
	rec.Swap()
	rec.Record(w, "after one swap")

	got := rec.Steps()
	for i, s := range got {
		if s.ID != i {
			t.Errorf("steps[%d].ID = %d; want %d", i, s.ID, i)
		}
	}
	if c := got[0].Meta.Comparisons; c != 0 {
		t.Errorf("step 0 comparisons = %d; want 0", c)
	}
	if c := got[1].Meta.Comparisons; c != 2 {
		t.Errorf("step 1 comparisons = %d; want 2", c)
	}
	if s := got[2].Meta.Swaps; s != 1 {
		t.Errorf("step 2 swaps = %d; want 1", s)
	}
	if err := step.Validate(got); err != nil {
		t.Errorf("Validate: unexpected error %v", err)
	}
}

// TestRecorder_MarkedCopies verifies active/modified slices are copied.
func TestRecorder_MarkedCopies(t *testing.T) {
	w := boxed{cells: []int{0}}
	rec := step.NewRecorder()
	active := []int{3, 4}
	rec.RecordMarked(w, active, nil, "marked")
	active[0] = 7

	if got := rec.Steps()[0].Active[0]; got != 3 {
		t.Errorf("Active[0] = %d; want 3 (caller slice must be copied)", got)
	}
}

// TestValidate_Violations exercises each sentinel error.
func TestValidate_Violations(t *testing.T) {
	snap := boxed{cells: []int{0}}
	ok := []step.Step{
		{ID: 0, Description: "a", Snapshot: snap},
		{ID: 1, Description: "b", Snapshot: snap},
	}
	if err := step.Validate(ok); err != nil {
		t.Fatalf("valid sequence rejected: %v", err)
	}

	cases := []struct {
		name  string
		steps []step.Step
		want  error
	}{
		{"empty", nil, step.ErrEmptySequence},
		{"id order", []step.Step{{ID: 1, Description: "a", Snapshot: snap}}, step.ErrIDOrder},
		{"description", []step.Step{{ID: 0, Snapshot: snap}}, step.ErrEmptyDescription},
		{"snapshot", []step.Step{{ID: 0, Description: "a"}}, step.ErrNilSnapshot},
		{
			"counters",
			[]step.Step{
				{ID: 0, Description: "a", Snapshot: snap, Meta: step.Meta{Reads: 2}},
				{ID: 1, Description: "b", Snapshot: snap, Meta: step.Meta{Reads: 1}},
			},
			step.ErrCounterRegression,
		},
	}
	for _, tc := range cases {
		if err := step.Validate(tc.steps); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v; want %v", tc.name, err, tc.want)
		}
	}
}
