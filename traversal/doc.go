// Package traversal provides the graph traversal step generators:
// breadth-first search, depth-first search, and Dijkstra's shortest
// paths.
//
// What you'll find here:
//
//   - 🌊 BFS(graph, start) — queue-driven layer-by-layer visit; every
//     dequeue and enqueue is a step, with the queue contents in the
//     description.
//   - 🕳️ DFS(graph, start) — explicit-stack depth-first visit with the
//     same step granularity.
//   - 📏 Dijkstra(graph, start) — tentative-distance relaxation over
//     weighted edges, one step per selection and per improvement.
//
// Neighbor order is always sorted by node ID, so every run over the
// same graph replays identically. An unknown start node yields a
// single not-found step rather than an error. All generators are pure;
// the input graph is never mutated.
package traversal
