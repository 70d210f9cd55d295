package sorting

import "github.com/katalvlaran/algostep/step"

// QuickSort generates the step sequence for quick sort with
// last-element pivots (Lomuto partitioning).
//
// Steps:
//  1. Record the untouched input.
//  2. Partition each subrange: the last element becomes the pivot
//     (StatePivot), elements smaller than the pivot are swapped left of
//     an advancing boundary (one comparison step each, one swap step
//     per exchange), then the pivot is swapped to its final resting
//     index and marked StateSorted permanently.
//  3. Recurse on the low partition first, then the high partition.
//  4. Final step shows every element in StateSorted.
//
// Complexity: O(n log n) expected comparisons, O(n²) worst case.
func QuickSort(input Array) []step.Step {
	arr := working(input)
	rec := step.NewRecorder()
	n := arr.Len()

	rec.Record(arr, "Starting quick sort on %d elements.", n)
	if n == 0 {
		rec.Record(arr, "Array is empty; nothing to sort.")

		return rec.Steps()
	}

	quickRange(rec, arr, 0, n-1)

	arr.markAll(StateSorted)
	rec.Record(arr, "Quick sort complete: array is sorted.")

	return rec.Steps()
}

// quickRange sorts arr[low..high] in place, recording steps. The low
// partition is recursed first so step ordering is deterministic.
func quickRange(rec *step.Recorder, arr Array, low, high int) {
	if low > high {
		return
	}
	if low == high {
		arr.Elements[low].State = StateSorted
		rec.RecordMarked(arr, nil, []int{low},
			"Single element %d at index %d is in place.", arr.Elements[low].Value, low)

		return
	}

	p := partition(rec, arr, low, high)
	quickRange(rec, arr, low, p-1)
	quickRange(rec, arr, p+1, high)
}

// partition applies Lomuto partitioning over arr[low..high] with the
// last element as pivot, returning the pivot's final index.
func partition(rec *step.Recorder, arr Array, low, high int) int {
	pivot := arr.Elements[high].Value
	arr.Elements[high].State = StatePivot
	rec.Read()
	rec.RecordMarked(arr, []int{high}, nil,
		"Partitioning indices %d..%d with pivot %d.", low, high, pivot)

	i := low - 1
	for j := low; j < high; j++ {
		arr.Elements[j].State = StateComparing
		rec.Compare()
		rec.RecordMarked(arr, []int{j, high}, nil,
			"Comparing %d at index %d with pivot %d.", arr.Elements[j].Value, j, pivot)

		if arr.Elements[j].Value < pivot {
			i++
			if i != j {
				arr.Elements[i].State = StateSwapping
				arr.Elements[j].State = StateSwapping
				arr.Elements[i], arr.Elements[j] = arr.Elements[j], arr.Elements[i]
				rec.Swap()
				rec.RecordMarked(arr, nil, []int{i, j},
					"Swapped %d left of the boundary to index %d.", arr.Elements[i].Value, i)
				arr.Elements[j].State = StateDefault
			}
			arr.Elements[i].State = StateDefault
		} else {
			arr.Elements[j].State = StateDefault
		}
	}

	arr.Elements[i+1], arr.Elements[high] = arr.Elements[high], arr.Elements[i+1]
	rec.Swap()
	arr.Elements[i+1].State = StateSorted
	if i+1 != high {
		arr.Elements[high].State = StateDefault
	}
	rec.RecordMarked(arr, nil, []int{i + 1, high},
		"Pivot %d placed at its final index %d.", pivot, i+1)

	return i + 1
}
