// Package sorting defines the Array snapshot type and element states
// shared by the four sort step generators.
package sorting

import "github.com/katalvlaran/algostep/step"

// State is the render state of a single array element.
type State string

// Element render states. Transient states (comparing, swapping, pivot,
// active) never survive into a generator's final step.
const (
	// StateDefault marks an element with no special emphasis.
	StateDefault State = "default"

	// StateComparing marks the elements of the current comparison.
	StateComparing State = "comparing"

	// StateSwapping marks the elements of the current exchange.
	StateSwapping State = "swapping"

	// StateSorted marks an element fixed in its final position.
	StateSorted State = "sorted"

	// StatePivot marks the pivot element during quick sort partitioning.
	StatePivot State = "pivot"

	// StateActive marks the element an algorithm is currently holding
	// (selection's running minimum, insertion's extracted key).
	StateActive State = "active"
)

// Element is one array cell: a value plus its render state.
type Element struct {
	// Value is the element's numeric payload.
	Value int

	// State is the current render state.
	State State
}

// Array is the sorting snapshot: an ordered sequence of elements.
// It is a value type; CloneSnapshot returns an independent deep copy.
type Array struct {
	// Elements in index order.
	Elements []Element
}

// NewArray builds an Array of the given values, all in StateDefault.
// Complexity: O(n).
func NewArray(values ...int) Array {
	elems := make([]Element, len(values))
	for i, v := range values {
		elems[i] = Element{Value: v, State: StateDefault}
	}

	return Array{Elements: elems}
}

// CloneSnapshot implements step.Snapshot with a full structural copy.
func (a Array) CloneSnapshot() step.Snapshot {
	return Array{Elements: append([]Element(nil), a.Elements...)}
}

// Values returns the element values in index order.
func (a Array) Values() []int {
	vals := make([]int, len(a.Elements))
	for i, e := range a.Elements {
		vals[i] = e.Value
	}

	return vals
}

// Len returns the number of elements.
func (a Array) Len() int { return len(a.Elements) }

// clearTransient resets every non-sorted element to StateDefault.
func (a Array) clearTransient() {
	for i := range a.Elements {
		if a.Elements[i].State != StateSorted {
			a.Elements[i].State = StateDefault
		}
	}
}

// markAll sets every element to the given state.
func (a Array) markAll(st State) {
	for i := range a.Elements {
		a.Elements[i].State = st
	}
}

// working deep-copies the input so the caller's Array is never mutated.
func working(input Array) Array {
	return input.CloneSnapshot().(Array)
}
