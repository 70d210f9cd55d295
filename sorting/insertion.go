package sorting

import "github.com/katalvlaran/algostep/step"

// InsertionSort generates the step sequence for insertion sort.
//
// Steps:
//  1. Record the untouched input.
//  2. For each index i ≥ 1, extract the key (recorded as a read), then
//     walk left recording one comparison step per probe and one shift
//     step (a write) per element moved right.
//  3. Write the key into its slot (recorded).
//  4. Final step shows every element in StateSorted.
//
// Complexity: O(n²) comparisons and writes worst case, O(n) best case.
func InsertionSort(input Array) []step.Step {
	arr := working(input)
	rec := step.NewRecorder()
	n := arr.Len()

	rec.Record(arr, "Starting insertion sort on %d elements.", n)
	if n == 0 {
		rec.Record(arr, "Array is empty; nothing to sort.")

		return rec.Steps()
	}

	for i := 1; i < n; i++ {
		key := arr.Elements[i].Value
		arr.Elements[i].State = StateActive
		rec.Read()
		rec.RecordMarked(arr, []int{i}, nil,
			"Extracted key %d from index %d.", key, i)

		j := i - 1
		for j >= 0 {
			arr.Elements[j].State = StateComparing
			rec.Compare()
			rec.RecordMarked(arr, []int{j}, nil,
				"Comparing key %d with %d at index %d.", key, arr.Elements[j].Value, j)

			if arr.Elements[j].Value <= key {
				arr.Elements[j].State = StateDefault
				break
			}

			arr.Elements[j+1].Value = arr.Elements[j].Value
			arr.Elements[j+1].State = StateSwapping
			rec.Write()
			rec.RecordMarked(arr, nil, []int{j + 1},
				"Shifted %d right to index %d.", arr.Elements[j].Value, j+1)
			arr.Elements[j+1].State = StateDefault
			arr.Elements[j].State = StateDefault
			j--
		}

		arr.Elements[j+1].Value = key
		arr.Elements[j+1].State = StateActive
		rec.Write()
		rec.RecordMarked(arr, nil, []int{j + 1},
			"Inserted key %d at index %d.", key, j+1)
		arr.Elements[j+1].State = StateDefault
	}

	arr.markAll(StateSorted)
	rec.Record(arr, "Insertion sort complete: array is sorted.")

	return rec.Steps()
}
