// Package unionfind generates replayable step sequences for a
// disjoint-set-union structure with path compression and union by
// rank.
//
// A node's parent is a non-owning reference by element ID, not a
// pointer: following parent links from any node reaches a root (a node
// that is its own parent) within at most n hops. Roots carry ranks
// used to keep union trees shallow.
//
// Contract highlights:
//   - Find emits one step per parent hop, then one step per node
//     repointed during path compression
//   - Union attaches the lower-rank root under the higher-rank root;
//     on a rank tie the surviving root's rank grows by exactly one
//   - operations on an unknown element ID short-circuit with a single
//     not-found step and no partial side effects
package unionfind
