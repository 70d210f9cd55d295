// Package bst generates replayable step sequences for a binary search
// tree: insert, search and in-order traversal.
//
// Nodes are plain recursive owned values — each node is exclusively
// owned by its parent link, so a deep clone is a straightforward
// recursive copy and no two snapshots ever share a node.
//
// Contract highlights:
//   - a duplicate insert reports "already exists" and performs no
//     structural change
//   - searching an empty tree yields a short two-step sequence
//     (start, not found) — never an empty result
//   - one comparison is recorded per node visited, including the
//     terminal found/not-found node
package bst
