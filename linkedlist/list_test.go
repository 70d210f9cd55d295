package linkedlist_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/algostep/linkedlist"
	"github.com/katalvlaran/algostep/step"
)

// final returns the last snapshot of a sequence as a List.
func final(t *testing.T, steps []step.Step) linkedlist.List {
	t.Helper()
	if err := step.Validate(steps); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	return steps[len(steps)-1].Snapshot.(linkedlist.List)
}

// TestInsert_PrependsWithStableIDs verifies head insertion and that
// existing node IDs survive the shift.
func TestInsert_PrependsWithStableIDs(t *testing.T) {
	l := linkedlist.NewList(10, 20)
	got := final(t, linkedlist.Insert(l, 5))

	if want := []int{5, 10, 20}; !reflect.DeepEqual(got.Values(), want) {
		t.Fatalf("values = %v; want %v", got.Values(), want)
	}
	// Original nodes keep IDs 0 and 1; the new head gets the next ID.
	if got.Nodes[1].ID != 0 || got.Nodes[2].ID != 1 {
		t.Errorf("shifted nodes changed identity: %+v", got.Nodes)
	}
	if got.Nodes[0].ID != 2 {
		t.Errorf("new head ID = %d; want 2", got.Nodes[0].ID)
	}
}

// TestAppend_WalksToTail verifies one traversal step per existing node.
func TestAppend_WalksToTail(t *testing.T) {
	steps := linkedlist.Append(linkedlist.NewList(1, 2, 3), 4)
	got := final(t, steps)

	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(got.Values(), want) {
		t.Fatalf("values = %v; want %v", got.Values(), want)
	}
	if reads := steps[len(steps)-1].Meta.Reads; reads != 3 {
		t.Errorf("reads = %d; want 3 (one per walked node)", reads)
	}
}

// TestSearch_FoundAndMiss covers both outcomes plus the empty list.
func TestSearch_FoundAndMiss(t *testing.T) {
	l := linkedlist.NewList(4, 8, 15)

	hit := linkedlist.Search(l, 8)
	got := final(t, hit)
	if got.Nodes[1].State != linkedlist.StateFound {
		t.Errorf("node state = %q; want found", got.Nodes[1].State)
	}
	if !strings.Contains(hit[len(hit)-1].Description, "Found 8") {
		t.Errorf("terminal description = %q", hit[len(hit)-1].Description)
	}

	miss := linkedlist.Search(l, 99)
	if !strings.Contains(miss[len(miss)-1].Description, "not found") {
		t.Errorf("miss description = %q", miss[len(miss)-1].Description)
	}

	empty := linkedlist.Search(linkedlist.NewList(), 1)
	if len(empty) != 2 {
		t.Errorf("empty search steps = %d; want 2", len(empty))
	}
}

// TestDelete_UnlinksAndReports covers deletion and the miss path,
// and verifies the input list is never mutated.
func TestDelete_UnlinksAndReports(t *testing.T) {
	l := linkedlist.NewList(4, 8, 15)

	got := final(t, linkedlist.Delete(l, 8))
	if want := []int{4, 15}; !reflect.DeepEqual(got.Values(), want) {
		t.Fatalf("values = %v; want %v", got.Values(), want)
	}
	if !reflect.DeepEqual(l.Values(), []int{4, 8, 15}) {
		t.Errorf("input mutated: %v", l.Values())
	}

	miss := linkedlist.Delete(l, 99)
	if !strings.Contains(miss[len(miss)-1].Description, "nothing deleted") {
		t.Errorf("miss description = %q", miss[len(miss)-1].Description)
	}
	if got := final(t, miss); !reflect.DeepEqual(got.Values(), []int{4, 8, 15}) {
		t.Errorf("miss changed the list: %v", got.Values())
	}
}
