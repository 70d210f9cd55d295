// Package hashtable generates replayable step sequences for a chained
// hash table: insert, get, remove and an explicit resize.
//
// Keys hash with the classic polynomial rule
//
//	h = (h*31 + char) mod capacity
//
// with an absolute-value guard against sign surprises. Collisions are
// resolved by chaining inside ordered buckets, so every probe is a
// visible, describable step.
//
// Contract highlights:
//   - inserting an existing key updates in place; size is unchanged
//   - a collision (non-empty bucket, different key) emits its own step
//   - when size/capacity exceeds 0.75 after an insert, a warning step
//     is emitted — the table never auto-resizes; Resize is explicit
//   - Resize doubles capacity, emits one rehash step per entry, and
//     preserves size
package hashtable
