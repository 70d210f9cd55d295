// Package trie generates replayable step sequences for a character
// trie: word insertion, exact search and prefix queries.
//
// Children are kept sorted by character so rendering and traversal are
// deterministic. Each node carries a stable ID and its depth, letting a
// renderer lay the tree out and track node identity across snapshots.
//
// Contract highlights:
//   - insert walks one node per character, creating children on miss
//   - search fails fast on a missing character and distinguishes
//     "word found" (end-of-word set) from "prefix of a longer word"
//   - a prefix query collects every descendant word beneath the prefix
//     node in pre-order (i.e. alphabetical) order and reports count
//     and list
package trie
