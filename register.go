package algostep

import (
	"github.com/katalvlaran/algostep/avltree"
	"github.com/katalvlaran/algostep/bst"
	"github.com/katalvlaran/algostep/hashtable"
	"github.com/katalvlaran/algostep/linkedlist"
	"github.com/katalvlaran/algostep/mst"
	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/traversal"
	"github.com/katalvlaran/algostep/trie"
	"github.com/katalvlaran/algostep/unionfind"
	"github.com/katalvlaran/algostep/viz"
)

// RegisterAll registers every built-in visualizer with r. It stops at
// the first failure, so registering into a registry that already holds
// one of the IDs surfaces viz.ErrDuplicateID.
func RegisterAll(r *viz.Registry) error {
	for id, f := range builtins() {
		if err := r.Register(id, f); err != nil {
			return err
		}
	}

	return nil
}

// builtins maps every built-in visualizer ID to its factory.
func builtins() map[string]viz.Factory {
	return map[string]viz.Factory{
		"sorting":    func() viz.Visualizer { return sorting.NewVisualizer() },
		"linkedlist": func() viz.Visualizer { return linkedlist.NewVisualizer() },
		"bst":        func() viz.Visualizer { return bst.NewVisualizer() },
		"avl":        func() viz.Visualizer { return avltree.NewVisualizer() },
		"hashtable":  func() viz.Visualizer { return hashtable.NewVisualizer() },
		"trie":       func() viz.Visualizer { return trie.NewVisualizer() },
		"unionfind":  func() viz.Visualizer { return unionfind.NewVisualizer() },
		"mst":        func() viz.Visualizer { return mst.NewVisualizer() },
		"traversal":  func() viz.Visualizer { return traversal.NewVisualizer() },
	}
}

// Replay runs one action through a visualizer and returns its steps
// with the sequence contract checked. Convenience for hosts that want
// validation before loading a player.
func Replay(v viz.Visualizer, action viz.Action) ([]step.Step, error) {
	steps := v.Steps(action)
	if err := step.Validate(steps); err != nil {
		return nil, err
	}

	return steps, nil
}
