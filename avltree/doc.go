// Package avltree generates replayable step sequences for AVL tree
// insertion: the ordinary BST descent, height and balance-factor
// updates on the unwind path, and the four classic rebalancing
// rotations (LL, RR, LR, RL).
//
// Every node carries its height and balance factor
// (height(left) − height(right)); after any generated insert the
// balance factor of every node stays within [-1, 1].
//
// Each rotation emits two steps: a pre-rotation step naming the
// detected imbalance case, and a post-rotation step showing the new
// subtree root in StateBalanced. A duplicate insert reports "already
// exists" and performs no structural change.
package avltree
