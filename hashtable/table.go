package hashtable

import "github.com/katalvlaran/algostep/step"

// Insert generates the steps for storing key/value.
//
// Steps:
//  1. Record the untouched table.
//  2. "Hashed to bucket k" step.
//  3. Probe the chain: existing key → update in place (size unchanged);
//     non-empty bucket with different keys → collision step, then
//     append; empty bucket → append.
//  4. If the load factor now exceeds LoadFactorThreshold, emit a
//     warning step. The table never resizes itself.
//  5. Terminal step with highlighting cleared.
//
// Complexity: O(chain length) comparisons.
func Insert(input Table, key, value string) []step.Step {
	t := input.CloneSnapshot().(Table)
	rec := step.NewRecorder()

	rec.Record(t, "Inserting key %q with value %q (size %d, capacity %d).",
		key, value, t.Size, t.Capacity())

	idx := hashKey(key, t.Capacity())
	rec.Read()
	rec.RecordMarked(t, []int{idx}, nil, "Key %q hashed to bucket %d.", key, idx)

	for i := range t.Buckets[idx] {
		t.Buckets[idx][i].State = StateComparing
		rec.Compare()
		rec.RecordMarked(t, []int{idx}, nil,
			"Comparing key %q with chained key %q.", key, t.Buckets[idx][i].Key)

		if t.Buckets[idx][i].Key == key {
			t.Buckets[idx][i].Value = value
			t.Buckets[idx][i].State = StateInserting
			rec.Write()
			rec.RecordMarked(t, nil, []int{idx},
				"Key %q already present: updated value in place, size stays %d.", key, t.Size)
			t.clearTransient()
			rec.Record(t, "Insert complete: load factor %.2f.", t.LoadFactor())

			return rec.Steps()
		}
		t.Buckets[idx][i].State = StateDefault
	}

	if len(t.Buckets[idx]) > 0 {
		rec.RecordMarked(t, []int{idx}, nil,
			"Collision: bucket %d already holds %d entr%s with different keys; chaining.",
			idx, len(t.Buckets[idx]), plural(len(t.Buckets[idx])))
	}

	t.Buckets[idx] = append(t.Buckets[idx], Entry{Key: key, Value: value, State: StateInserting})
	t.Size++
	rec.Write()
	rec.RecordMarked(t, nil, []int{idx},
		"Placed %q in bucket %d; size is now %d.", key, idx, t.Size)

	if t.LoadFactor() > LoadFactorThreshold {
		rec.SetHighlight("warning")
		rec.Record(t, "Warning: load factor %.2f exceeds %.2f; consider resizing.",
			t.LoadFactor(), LoadFactorThreshold)
		rec.SetHighlight("")
	}

	t.clearTransient()
	rec.Record(t, "Insert complete: load factor %.2f.", t.LoadFactor())

	return rec.Steps()
}

// Get generates the steps for looking key up. A miss is reported in
// the terminal step.
func Get(input Table, key string) []step.Step {
	t := input.CloneSnapshot().(Table)
	rec := step.NewRecorder()

	rec.Record(t, "Looking up key %q (size %d, capacity %d).", key, t.Size, t.Capacity())

	idx := hashKey(key, t.Capacity())
	rec.Read()
	rec.RecordMarked(t, []int{idx}, nil, "Key %q hashed to bucket %d.", key, idx)

	for i := range t.Buckets[idx] {
		t.Buckets[idx][i].State = StateComparing
		rec.Compare()
		rec.RecordMarked(t, []int{idx}, nil,
			"Comparing key %q with chained key %q.", key, t.Buckets[idx][i].Key)

		if t.Buckets[idx][i].Key == key {
			t.Buckets[idx][i].State = StateFound
			rec.RecordMarked(t, []int{idx}, nil,
				"Found %q with value %q.", key, t.Buckets[idx][i].Value)

			return rec.Steps()
		}
		t.Buckets[idx][i].State = StateDefault
	}

	rec.RecordMarked(t, []int{idx}, nil, "Bucket %d exhausted: key %q not found.", idx, key)

	return rec.Steps()
}

// Remove generates the steps for deleting key. A miss is reported in
// the terminal step and leaves the table unchanged.
func Remove(input Table, key string) []step.Step {
	t := input.CloneSnapshot().(Table)
	rec := step.NewRecorder()

	rec.Record(t, "Removing key %q (size %d, capacity %d).", key, t.Size, t.Capacity())

	idx := hashKey(key, t.Capacity())
	rec.Read()
	rec.RecordMarked(t, []int{idx}, nil, "Key %q hashed to bucket %d.", key, idx)

	for i := range t.Buckets[idx] {
		t.Buckets[idx][i].State = StateComparing
		rec.Compare()
		rec.RecordMarked(t, []int{idx}, nil,
			"Comparing key %q with chained key %q.", key, t.Buckets[idx][i].Key)

		if t.Buckets[idx][i].Key == key {
			t.Buckets[idx][i].State = StateDeleting
			rec.RecordMarked(t, []int{idx}, nil, "Unchaining %q from bucket %d.", key, idx)

			t.Buckets[idx] = append(t.Buckets[idx][:i], t.Buckets[idx][i+1:]...)
			t.Size--
			rec.Write()
			t.clearTransient()
			rec.Record(t, "Removed %q: size is now %d, load factor %.2f.",
				key, t.Size, t.LoadFactor())

			return rec.Steps()
		}
		t.Buckets[idx][i].State = StateDefault
	}

	rec.RecordMarked(t, []int{idx}, nil,
		"Bucket %d exhausted: key %q not found, nothing removed.", idx, key)

	return rec.Steps()
}

// Resize generates the steps for doubling the table's capacity,
// rehashing every entry under the new modulus. Size is preserved.
func Resize(input Table) []step.Step {
	t := input.CloneSnapshot().(Table)
	rec := step.NewRecorder()

	oldCap := t.Capacity()
	newCap := oldCap * 2
	rec.Record(t, "Resizing from capacity %d to %d (load factor %.2f).",
		oldCap, newCap, t.LoadFactor())

	resized := Table{Buckets: make([][]Entry, newCap), Size: t.Size}
	for _, bucket := range t.Buckets {
		for _, e := range bucket {
			idx := hashKey(e.Key, newCap)
			rec.Read()
			rec.Write()
			resized.Buckets[idx] = append(resized.Buckets[idx],
				Entry{Key: e.Key, Value: e.Value, State: StateRehashing})
			rec.RecordMarked(resized, nil, []int{idx},
				"Rehashing key %q to bucket %d of %d.", e.Key, idx, newCap)
		}
	}

	resized.clearTransient()
	rec.Record(resized, "Resize complete: size %d, capacity %d, load factor %.2f.",
		resized.Size, newCap, resized.LoadFactor())

	return rec.Steps()
}

// plural returns "ies"/"y" suffix selector for "entr%s".
func plural(n int) string {
	if n == 1 {
		return "y"
	}

	return "ies"
}
