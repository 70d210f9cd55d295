package algostep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep"
	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/viz"
)

// TestRegisterAll wires every built-in and checks the full contract
// surface of each: a default action must yield a valid, non-empty
// sequence whose every snapshot draws without error.
func TestRegisterAll(t *testing.T) {
	r := viz.NewRegistry()
	require.NoError(t, algostep.RegisterAll(r))

	want := []string{"avl", "bst", "hashtable", "linkedlist", "mst", "sorting", "traversal", "trie", "unionfind"}
	assert.Equal(t, want, r.IDs())

	for _, id := range r.IDs() {
		v, err := r.Lookup(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, v.ID())
		assert.NotEmpty(t, v.Name(), id)
		require.NotEmpty(t, v.Actions(), id)

		for _, spec := range v.Actions() {
			steps, err := algostep.Replay(v, viz.Action{Type: spec.Type})
			require.NoError(t, err, "%s/%s", id, spec.Type)
			require.NotEmpty(t, steps, "%s/%s", id, spec.Type)
			for _, s := range steps {
				assert.NotPanics(t, func() { v.Draw(s.Snapshot) }, "%s/%s", id, spec.Type)
			}
			assert.NotEmpty(t, v.Pseudocode(spec.Type), "%s/%s", id, spec.Type)
		}
	}

	// Second registration collides on every id; the first one reports.
	assert.ErrorIs(t, algostep.RegisterAll(r), viz.ErrDuplicateID)
}

// TestReplay_UnknownFallback: unknown action types still produce valid
// sequences through each visualizer's documented fallback.
func TestReplay_UnknownFallback(t *testing.T) {
	r := viz.NewRegistry()
	require.NoError(t, algostep.RegisterAll(r))

	for _, id := range r.IDs() {
		v, err := r.Lookup(id)
		require.NoError(t, err)
		steps, err := algostep.Replay(v, viz.Action{Type: "no-such-op"})
		require.NoError(t, err, id)
		require.NoError(t, step.Validate(steps), id)
	}
}
