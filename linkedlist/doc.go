// Package linkedlist generates replayable step sequences for a singly
// linked list: prepend, append, search and delete.
//
// Nodes carry stable integer IDs so a renderer can track a node's
// identity across snapshots even as its position shifts — unlike array
// indices, which move under insertion and deletion.
//
// Contract highlights:
//   - a search or delete miss is a reported outcome (a terminal step
//     saying so), never an error
//   - the first step shows the untouched list, the last step has all
//     transient highlighting reset
//   - generators never mutate the caller's List value
package linkedlist
