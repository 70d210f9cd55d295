// Package sorting generates replayable step sequences for the classic
// comparison sorts: selection, insertion, quick and heap sort.
//
// 🚀 What does a sorting generator do?
//
//	Each generator takes an Array value, sorts a private working copy,
//	and records a step.Step at every comparison, swap, shift and
//	placement — with element states flipping among comparing, swapping,
//	pivot, active and sorted so a renderer can color the phase.
//
// ✨ Shared contract (all four generators):
//   - pure and deterministic: same input, same step sequence
//   - the first step shows the untouched input, the last step shows the
//     fully sorted array with every element in StateSorted
//   - counters (comparisons, swaps, reads, writes) are cumulative
//   - an empty or single-element array still yields a short, described
//     sequence — never an empty result
//
// ⚙️ Usage:
//
//	arr := sorting.NewArray(5, 3, 8, 4, 2)
//	steps := sorting.QuickSort(arr)
//	// hand steps to playback.Player, or validate:
//	_ = step.Validate(steps)
//
// Complexity: step counts follow the underlying sorts — O(n²) steps for
// selection/insertion, O(n log n) expected for quick/heap; each step
// clones the whole array, so generation is O(steps·n) time and memory.
package sorting
