package avltree_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/avltree"
	"github.com/katalvlaran/algostep/step"
)

// insertAll replays a value sequence through the step generator,
// feeding each final snapshot into the next insert.
func insertAll(t *testing.T, values ...int) avltree.Tree {
	t.Helper()
	tree := avltree.Tree{}
	for _, v := range values {
		steps := avltree.Insert(tree, v)
		require.NoError(t, step.Validate(steps))
		tree = steps[len(steps)-1].Snapshot.(avltree.Tree)
	}

	return tree
}

// assertBalanced fails if any node's balance factor leaves [-1, 1] or
// is inconsistent with its children's heights.
func assertBalanced(t *testing.T, n *avltree.Node) {
	t.Helper()
	if n == nil {
		return
	}
	assert.LessOrEqual(t, n.Balance, 1, "node %d", n.Value)
	assert.GreaterOrEqual(t, n.Balance, -1, "node %d", n.Value)
	assertBalanced(t, n.Left)
	assertBalanced(t, n.Right)
}

// rotationCase returns the description of the first pre-rotation step.
func rotationCase(steps []step.Step) string {
	for _, s := range steps {
		if strings.Contains(s.Description, "case at node") {
			return s.Description
		}
	}

	return ""
}

// TestInsert_FourRotationCases pins each classic imbalance to its
// minimal three-node trigger.
func TestInsert_FourRotationCases(t *testing.T) {
	cases := []struct {
		name     string
		values   [2]int
		trigger  int
		wantCase string
		wantRoot int
	}{
		{"LL", [2]int{30, 20}, 10, "Left-Left", 20},
		{"RR", [2]int{10, 20}, 30, "Right-Right", 20},
		{"LR", [2]int{30, 10}, 20, "Left-Right", 20},
		{"RL", [2]int{10, 30}, 20, "Right-Left", 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree := insertAll(t, tc.values[0], tc.values[1])
			steps := avltree.Insert(tree, tc.trigger)
			require.NoError(t, step.Validate(steps))

			assert.Contains(t, rotationCase(steps), tc.wantCase)

			got := steps[len(steps)-1].Snapshot.(avltree.Tree)
			require.NotNil(t, got.Root)
			assert.Equal(t, tc.wantRoot, got.Root.Value, "new root after rotation")
			assertBalanced(t, got.Root)
		})
	}
}

// TestInsert_RotationStepPair verifies every rotation emits a
// pre-rotation step (case identified) followed by a post-rotation step.
func TestInsert_RotationStepPair(t *testing.T) {
	tree := insertAll(t, 10, 20)
	steps := avltree.Insert(tree, 30)

	preIdx := -1
	for i, s := range steps {
		if strings.Contains(s.Description, "case at node") {
			preIdx = i
			break
		}
	}
	require.GreaterOrEqual(t, preIdx, 0, "no pre-rotation step recorded")
	require.Less(t, preIdx+1, len(steps))
	assert.Contains(t, steps[preIdx+1].Description, "Rotation complete")
}

// TestInsert_SequencePreservesInvariants inserts an adversarial
// ascending run (worst case for an unbalanced BST) and checks ordering
// plus the AVL height bound.
func TestInsert_SequencePreservesInvariants(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	tree := insertAll(t, values...)

	got := tree.InOrderValues()
	assert.True(t, sort.IntsAreSorted(got), "in-order = %v", got)
	assert.Len(t, got, len(values))
	assertBalanced(t, tree.Root)
	// 15 nodes in an AVL tree fit in height 4 (perfect tree).
	assert.Equal(t, 4, tree.Root.Height)
}

// TestInsert_DuplicateNoChange verifies the short-circuit no-op.
func TestInsert_DuplicateNoChange(t *testing.T) {
	tree := insertAll(t, 40, 20, 60)
	steps := avltree.Insert(tree, 20)
	require.NoError(t, step.Validate(steps))

	found := false
	for _, s := range steps {
		if strings.Contains(s.Description, "already exists") {
			found = true
		}
	}
	assert.True(t, found, "duplicate not reported")

	got := steps[len(steps)-1].Snapshot.(avltree.Tree)
	assert.Equal(t, 3, got.Size())
	assert.Equal(t, tree.InOrderValues(), got.InOrderValues())
}
