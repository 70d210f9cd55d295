package sorting

import "github.com/katalvlaran/algostep/step"

// HeapSort generates the step sequence for heap sort.
//
// Steps:
//  1. Record the untouched input.
//  2. Build-max-heap phase: heapify bottom-up from index n/2-1 down to
//     0, one recorded step per sift decision. Each heapify counts both
//     child comparisons, even when a child index is out of range.
//  3. Extraction phase: swap the heap root with the last unsorted
//     element (recorded, element marked StateSorted), shrink the heap,
//     and re-heapify from the root.
//  4. Final step shows every element in StateSorted.
//
// Complexity: O(n log n) comparisons and swaps.
func HeapSort(input Array) []step.Step {
	arr := working(input)
	rec := step.NewRecorder()
	n := arr.Len()

	rec.Record(arr, "Starting heap sort on %d elements.", n)
	if n == 0 {
		rec.Record(arr, "Array is empty; nothing to sort.")

		return rec.Steps()
	}

	for i := n/2 - 1; i >= 0; i-- {
		rec.RecordMarked(arr, []int{i}, nil,
			"Heapifying subtree rooted at index %d.", i)
		heapify(rec, arr, n, i)
	}
	rec.Record(arr, "Max-heap built: %d is at the root.", arr.Elements[0].Value)

	for end := n - 1; end > 0; end-- {
		arr.Elements[0].State = StateSwapping
		arr.Elements[end].State = StateSwapping
		arr.Elements[0], arr.Elements[end] = arr.Elements[end], arr.Elements[0]
		rec.Swap()
		arr.Elements[end].State = StateSorted
		arr.Elements[0].State = StateDefault
		rec.RecordMarked(arr, nil, []int{0, end},
			"Moved maximum %d to index %d; heap shrinks to %d elements.",
			arr.Elements[end].Value, end, end)
		heapify(rec, arr, end, 0)
	}

	arr.markAll(StateSorted)
	rec.Record(arr, "Heap sort complete: array is sorted.")

	return rec.Steps()
}

// heapify sifts index i down within arr[0..size-1], recording each
// comparison and swap. Both child comparisons are counted even when a
// child is out of range.
func heapify(rec *step.Recorder, arr Array, size, i int) {
	largest := i
	left := 2*i + 1
	right := 2*i + 2

	rec.Compare()
	if left < size {
		arr.Elements[left].State = StateComparing
		rec.RecordMarked(arr, []int{left, largest}, nil,
			"Comparing left child %d at index %d with %d.",
			arr.Elements[left].Value, left, arr.Elements[largest].Value)
		if arr.Elements[left].Value > arr.Elements[largest].Value {
			largest = left
		}
		arr.Elements[left].State = StateDefault
	}

	rec.Compare()
	if right < size {
		arr.Elements[right].State = StateComparing
		rec.RecordMarked(arr, []int{right, largest}, nil,
			"Comparing right child %d at index %d with %d.",
			arr.Elements[right].Value, right, arr.Elements[largest].Value)
		if arr.Elements[right].Value > arr.Elements[largest].Value {
			largest = right
		}
		arr.Elements[right].State = StateDefault
	}

	if largest != i {
		arr.Elements[i].State = StateSwapping
		arr.Elements[largest].State = StateSwapping
		arr.Elements[i], arr.Elements[largest] = arr.Elements[largest], arr.Elements[i]
		rec.Swap()
		rec.RecordMarked(arr, nil, []int{i, largest},
			"Swapped %d up to index %d to restore the heap.", arr.Elements[i].Value, i)
		arr.Elements[i].State = StateDefault
		arr.Elements[largest].State = StateDefault
		heapify(rec, arr, size, largest)
	}
}
