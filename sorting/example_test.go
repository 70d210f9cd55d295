package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/algostep/sorting"
)

// ExampleSelectionSort shows the replayable shape of a generated run:
// the first step is the untouched input, the last is the sorted array.
func ExampleSelectionSort() {
	steps := sorting.SelectionSort(sorting.NewArray(5, 3, 8, 4, 2))

	first := steps[0].Snapshot.(sorting.Array)
	last := steps[len(steps)-1].Snapshot.(sorting.Array)
	fmt.Println("first:", first.Values())
	fmt.Println("last: ", last.Values())
	fmt.Println("comparisons:", steps[len(steps)-1].Meta.Comparisons)
	// Output:
	// first: [5 3 8 4 2]
	// last:  [2 3 4 5 8]
	// comparisons: 10
}
