package sorting_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/step"
)

// generators under test, by name.
var generators = map[string]func(sorting.Array) []step.Step{
	"selection": sorting.SelectionSort,
	"insertion": sorting.InsertionSort,
	"quick":     sorting.QuickSort,
	"heap":      sorting.HeapSort,
}

// inputs every generator must handle.
var inputs = map[string][]int{
	"mixed":          {5, 3, 8, 4, 2},
	"duplicates":     {3, 1, 3, 2, 1},
	"empty":          {},
	"single":         {9},
	"already sorted": {1, 2, 3, 4, 5},
	"reverse sorted": {5, 4, 3, 2, 1},
}

// TestSorts_Correctness checks, for every generator and input, that the
// sequence is structurally valid, the final values are sorted, and
// every final element is in StateSorted.
func TestSorts_Correctness(t *testing.T) {
	for name, gen := range generators {
		for inName, in := range inputs {
			t.Run(name+"/"+inName, func(t *testing.T) {
				steps := gen(sorting.NewArray(in...))
				if err := step.Validate(steps); err != nil {
					t.Fatalf("Validate: %v", err)
				}

				final := steps[len(steps)-1].Snapshot.(sorting.Array)
				want := append([]int(nil), in...)
				sort.Ints(want)
				if len(want) == 0 {
					want = []int{}
				}
				if got := final.Values(); !reflect.DeepEqual(got, want) {
					t.Errorf("final values = %v; want %v", got, want)
				}
				for i, e := range final.Elements {
					if e.State != sorting.StateSorted {
						t.Errorf("final element %d state = %q; want sorted", i, e.State)
					}
				}
			})
		}
	}
}

// TestSorts_InputUntouched verifies generators never mutate the caller's array.
func TestSorts_InputUntouched(t *testing.T) {
	for name, gen := range generators {
		in := sorting.NewArray(5, 3, 8, 4, 2)
		_ = gen(in)
		if got := in.Values(); !reflect.DeepEqual(got, []int{5, 3, 8, 4, 2}) {
			t.Errorf("%s mutated its input: %v", name, got)
		}
	}
}

// TestSorts_Deterministic verifies identical inputs yield identical
// step sequences.
func TestSorts_Deterministic(t *testing.T) {
	for name, gen := range generators {
		a := gen(sorting.NewArray(4, 1, 3, 2))
		b := gen(sorting.NewArray(4, 1, 3, 2))
		if len(a) != len(b) {
			t.Errorf("%s: run lengths differ: %d vs %d", name, len(a), len(b))
			continue
		}
		for i := range a {
			if a[i].Description != b[i].Description || a[i].Meta != b[i].Meta {
				t.Errorf("%s: step %d differs between runs", name, i)
				break
			}
		}
	}
}

// TestSelectionSort_CountsComparisons pins the exact comparison count
// for a known input: n(n-1)/2 regardless of order.
func TestSelectionSort_CountsComparisons(t *testing.T) {
	steps := sorting.SelectionSort(sorting.NewArray(5, 3, 8, 4, 2))
	last := steps[len(steps)-1].Meta
	if want := 10; last.Comparisons != want {
		t.Errorf("comparisons = %d; want %d", last.Comparisons, want)
	}
}

// TestQuickSort_PivotPlacement verifies the first partition of the
// mixed sample fixes the pivot 2 at index 0 and marks it sorted.
func TestQuickSort_PivotPlacement(t *testing.T) {
	steps := sorting.QuickSort(sorting.NewArray(5, 3, 8, 4, 2))
	for _, s := range steps {
		arr := s.Snapshot.(sorting.Array)
		if arr.Elements[0].Value == 2 && arr.Elements[0].State == sorting.StateSorted {
			return
		}
	}
	t.Error("pivot 2 never recorded as sorted at index 0")
}

// TestHeapSort_FirstStepPreMutation verifies the first step reflects
// the untouched input.
func TestHeapSort_FirstStepPreMutation(t *testing.T) {
	steps := sorting.HeapSort(sorting.NewArray(2, 9, 1))
	first := steps[0].Snapshot.(sorting.Array)
	if got := first.Values(); !reflect.DeepEqual(got, []int{2, 9, 1}) {
		t.Errorf("first snapshot = %v; want untouched [2 9 1]", got)
	}
}
