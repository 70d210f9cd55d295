// Package hashtable defines the Table snapshot type, entry states and
// the hash function.
package hashtable

import "github.com/katalvlaran/algostep/step"

// LoadFactorThreshold is the size/capacity ratio beyond which Insert
// emits a warning step.
const LoadFactorThreshold = 0.75

// State is the render state of a single table entry.
type State string

// Entry render states.
const (
	// StateDefault marks an entry with no special emphasis.
	StateDefault State = "default"

	// StateComparing marks the entry currently probed in a chain.
	StateComparing State = "comparing"

	// StateFound marks the entry a successful lookup terminated at.
	StateFound State = "found"

	// StateInserting marks a freshly placed entry.
	StateInserting State = "inserting"

	// StateDeleting marks an entry being removed.
	StateDeleting State = "deleting"

	// StateRehashing marks an entry being moved during Resize.
	StateRehashing State = "rehashing"
)

// Entry is one key/value pair in a bucket chain.
type Entry struct {
	// Key is the entry's string key.
	Key string

	// Value is the entry's payload.
	Value string

	// State is the current render state.
	State State
}

// Table is the hash table snapshot: an ordered sequence of buckets,
// each an ordered chain of entries. It is a value type; CloneSnapshot
// deep-copies every chain.
type Table struct {
	// Buckets in index order; len(Buckets) is the capacity.
	Buckets [][]Entry

	// Size is the number of stored entries.
	Size int
}

// NewTable returns an empty Table with the given capacity (minimum 1).
func NewTable(capacity int) Table {
	if capacity < 1 {
		capacity = 1
	}

	return Table{Buckets: make([][]Entry, capacity)}
}

// Capacity returns the number of buckets.
func (t Table) Capacity() int { return len(t.Buckets) }

// LoadFactor returns size/capacity.
func (t Table) LoadFactor() float64 {
	if t.Capacity() == 0 {
		return 0
	}

	return float64(t.Size) / float64(t.Capacity())
}

// CloneSnapshot implements step.Snapshot with a full structural copy.
func (t Table) CloneSnapshot() step.Snapshot {
	buckets := make([][]Entry, len(t.Buckets))
	for i, b := range t.Buckets {
		if b != nil {
			buckets[i] = append([]Entry(nil), b...)
		}
	}

	return Table{Buckets: buckets, Size: t.Size}
}

// clearTransient resets every entry to StateDefault.
func (t Table) clearTransient() {
	for i := range t.Buckets {
		for j := range t.Buckets[i] {
			t.Buckets[i][j].State = StateDefault
		}
	}
}

// hashKey computes the polynomial hash of key modulo capacity.
// The absolute-value guard mirrors the classic implementation even
// though the running mod keeps the value non-negative here.
func hashKey(key string, capacity int) int {
	h := 0
	for _, c := range key {
		h = (h*31 + int(c)) % capacity
	}
	if h < 0 {
		h = -h
	}

	return h
}
