// Package graphdata defines the positioned graph value shared by the
// MST and traversal step generators, plus deterministic sample
// builders.
//
// Unlike a live graph store, Graph here is a snapshot value: plain
// node and edge slices with render states and x/y coordinates, cheap
// to deep-copy on every recorded step. Node and edge IDs are strings;
// edges reference endpoints by ID, never by pointer, so a clone is a
// straight slice copy.
//
// The builders lay sample graphs out on a circle so any renderer —
// terminal or PNG — can draw them without its own layout pass.
package graphdata
