package sorting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/viz"
)

// Action types accepted by the sorting visualizer.
const (
	ActionSelection = "selection"
	ActionInsertion = "insertion"
	ActionQuick     = "quick"
	ActionHeap      = "heap"
)

// defaultSample is the array shown on first display.
var defaultSample = []int{5, 3, 8, 4, 2, 7, 1, 6}

// Cell styles, one per element state.
var cellStyles = map[State]lipgloss.Style{
	StateDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	StateComparing: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	StateSwapping:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	StateSorted:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	StatePivot:     lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
	StateActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
}

// Visualizer implements viz.Visualizer for the comparison sorts.
//
// Unknown action types fall back to selection sort, the catalog's
// introductory algorithm.
type Visualizer struct{}

// NewVisualizer returns the sorting visualizer.
func NewVisualizer() *Visualizer { return &Visualizer{} }

// ID implements viz.Visualizer.
func (*Visualizer) ID() string { return "sorting" }

// Name implements viz.Visualizer.
func (*Visualizer) Name() string { return "Array Sorting" }

// InitialState returns the default sample array.
func (*Visualizer) InitialState() step.Snapshot { return NewArray(defaultSample...) }

// Steps dispatches an action to the matching sort generator.
// Action.Params["values"] may carry a comma-separated value list that
// replaces the current array before sorting.
func (v *Visualizer) Steps(action viz.Action) []step.Step {
	arr, ok := action.Data.(Array)
	if !ok {
		arr = v.InitialState().(Array)
	}
	if raw := action.Param("values", ""); raw != "" {
		if parsed, err := parseValues(raw); err == nil {
			arr = parsed
		}
	}

	switch action.Type {
	case ActionInsertion:
		return InsertionSort(arr)
	case ActionQuick:
		return QuickSort(arr)
	case ActionHeap:
		return HeapSort(arr)
	case ActionSelection:
		return SelectionSort(arr)
	default:
		// Documented fallback: selection sort.
		return SelectionSort(arr)
	}
}

// Draw renders the array as a single row of styled cells.
func (*Visualizer) Draw(s step.Snapshot) string {
	arr, ok := s.(Array)
	if !ok {
		return ""
	}
	cells := make([]string, 0, arr.Len())
	for _, e := range arr.Elements {
		style, found := cellStyles[e.State]
		if !found {
			style = cellStyles[StateDefault]
		}
		cells = append(cells, style.Render(fmt.Sprintf("[%3d]", e.Value)))
	}

	return strings.Join(cells, " ")
}

// Pseudocode implements viz.Visualizer.
func (*Visualizer) Pseudocode(op string) []string {
	switch op {
	case ActionInsertion:
		return []string{
			"for i = 1 to n-1:",
			"  key = a[i]",
			"  j = i-1",
			"  while j >= 0 and a[j] > key:",
			"    a[j+1] = a[j]; j = j-1",
			"  a[j+1] = key",
		}
	case ActionQuick:
		return []string{
			"quicksort(a, lo, hi):",
			"  if lo >= hi: return",
			"  p = partition(a, lo, hi)   # pivot = a[hi]",
			"  quicksort(a, lo, p-1)",
			"  quicksort(a, p+1, hi)",
		}
	case ActionHeap:
		return []string{
			"for i = n/2-1 down to 0: heapify(a, n, i)",
			"for end = n-1 down to 1:",
			"  swap(a[0], a[end])",
			"  heapify(a, end, 0)",
		}
	default:
		return []string{
			"for i = 0 to n-2:",
			"  min = i",
			"  for j = i+1 to n-1:",
			"    if a[j] < a[min]: min = j",
			"  swap(a[i], a[min])",
		}
	}
}

// Complexity implements viz.Visualizer.
func (*Visualizer) Complexity(op string) viz.Complexity {
	switch op {
	case ActionQuick:
		return viz.Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n²)", Space: "O(log n)"}
	case ActionHeap:
		return viz.Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(1)"}
	case ActionInsertion:
		return viz.Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"}
	default:
		return viz.Complexity{Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"}
	}
}

// Actions implements viz.Visualizer.
func (*Visualizer) Actions() []viz.ActionSpec {
	values := []viz.ParamSpec{{Name: "values", Placeholder: "5,3,8,4,2"}}

	return []viz.ActionSpec{
		{Type: ActionSelection, Label: "Selection sort", Params: values},
		{Type: ActionInsertion, Label: "Insertion sort", Params: values},
		{Type: ActionQuick, Label: "Quick sort", Params: values},
		{Type: ActionHeap, Label: "Heap sort", Params: values},
	}
}

// parseValues parses a comma-separated integer list into an Array.
func parseValues(raw string) (Array, error) {
	parts := strings.Split(raw, ",")
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Array{}, fmt.Errorf("sorting: bad value %q: %w", p, err)
		}
		vals = append(vals, v)
	}

	return NewArray(vals...), nil
}
