package sorting

import "github.com/katalvlaran/algostep/step"

// SelectionSort generates the step sequence for selection sort.
//
// Steps:
//  1. Record the untouched input.
//  2. For each position i, scan i+1..n-1 for the minimum, recording one
//     comparison step per candidate and a "new minimum" step on
//     improvement.
//  3. Swap the minimum into position i (recorded), mark i sorted.
//  4. Final step shows every element in StateSorted.
//
// Complexity: O(n²) comparisons, at most n-1 swaps.
func SelectionSort(input Array) []step.Step {
	arr := working(input)
	rec := step.NewRecorder()
	n := arr.Len()

	rec.Record(arr, "Starting selection sort on %d elements.", n)
	if n == 0 {
		rec.Record(arr, "Array is empty; nothing to sort.")

		return rec.Steps()
	}

	for i := 0; i < n-1; i++ {
		minIdx := i
		arr.Elements[i].State = StateActive
		rec.Read()
		rec.SetLine(2)
		rec.RecordMarked(arr, []int{i}, nil,
			"Pass %d: assuming %d at index %d is the minimum.", i+1, arr.Elements[i].Value, i)

		for j := i + 1; j < n; j++ {
			arr.Elements[j].State = StateComparing
			rec.Compare()
			rec.SetLine(4)
			rec.RecordMarked(arr, []int{j, minIdx}, nil,
				"Comparing %d at index %d with current minimum %d.",
				arr.Elements[j].Value, j, arr.Elements[minIdx].Value)

			if arr.Elements[j].Value < arr.Elements[minIdx].Value {
				if minIdx != i {
					arr.Elements[minIdx].State = StateDefault
				}
				minIdx = j
				arr.Elements[j].State = StateActive
				rec.RecordMarked(arr, []int{j}, nil,
					"New minimum %d found at index %d.", arr.Elements[j].Value, j)
			} else {
				arr.Elements[j].State = StateDefault
			}
		}

		if minIdx != i {
			arr.Elements[i].State = StateSwapping
			arr.Elements[minIdx].State = StateSwapping
			arr.Elements[i], arr.Elements[minIdx] = arr.Elements[minIdx], arr.Elements[i]
			rec.Swap()
			rec.SetLine(5)
			rec.RecordMarked(arr, nil, []int{i, minIdx},
				"Swapped %d into position %d.", arr.Elements[i].Value, i)
			arr.Elements[minIdx].State = StateDefault
		}

		arr.Elements[i].State = StateSorted
		rec.RecordMarked(arr, nil, []int{i},
			"Index %d holds its final value %d.", i, arr.Elements[i].Value)
	}

	arr.markAll(StateSorted)
	rec.SetLine(0)
	rec.Record(arr, "Selection sort complete: array is sorted.")

	return rec.Steps()
}
