// Package mst provides the Kruskal minimum-spanning-tree step generator.
//
// What you'll find here:
//
//   - 🌲 Kruskal(graph) — stable ascending weight sort, union-find
//     cycle detection, one step per considered edge.
//   - ✅ Accepted edges and their endpoints are marked inMST; rejected
//     edges stay marked rejected so the cycle evidence survives to the
//     final frame.
//   - 🔗 Result carries the accepted edge IDs and the total weight for
//     validation alongside the step sequence.
//
// Disconnected inputs are not an error: the run completes and the last
// step reports how many components remain unreached. All functions are
// pure; the input graph is never mutated.
package mst
