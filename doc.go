// Package algostep is an interactive algorithm-visualization core:
// step generators that replay classic data-structure operations as
// immutable snapshot sequences, plus the playback engine and the
// visualizer contract that tie them together.
//
// 🚀 What is algostep?
//
//	A library that turns algorithm runs into animations:
//		• Sorting: selection, insertion, quick, heap
//		• Structures: linked list, BST, AVL tree, hash table, trie
//		• Sets: union-find with path compression & union by rank
//		• Graphs: Kruskal MST, BFS, DFS, Dijkstra
//		• Playback: play/pause/step/seek/speed over recorded steps
//		• Export: PNG rendering of positioned graph snapshots
//
// ✨ How it fits together
//
//   - Every generator is pure: it clones its input, runs the
//     algorithm, and records a step with a frozen snapshot at each
//     meaningful moment.
//   - Every structure package implements viz.Visualizer, so hosts
//     drive them all through one interface: registry → steps →
//     playback → Draw.
//   - playback.Player walks a step list under caller-driven ticks,
//     so any frame source works — a terminal program, a test, a
//     wall-clock loop.
//
// Quick start:
//
//	r := viz.NewRegistry()
//	_ = algostep.RegisterAll(r)
//	v, _ := r.Lookup("sorting")
//	steps := v.Steps(viz.Action{Type: "quick"})
//	p, _ := playback.NewPlayer()
//	p.Load(steps)
//
// See cmd/algostep for a complete terminal player built on nothing
// but this public surface.
package algostep
