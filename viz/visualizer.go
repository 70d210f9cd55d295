// Package viz declares the Visualizer interface, the Action envelope
// and the descriptive metadata types consumed by the calling UI.
package viz

import "github.com/katalvlaran/algostep/step"

// Action is the single dispatch envelope for every structure operation.
//
// Type names the operation (each visualizer documents its catalog and
// its fallback for unknown types). Data carries the current structure
// snapshot to operate on; when nil, the visualizer's InitialState is
// used. Params carries caller-validated string arguments such as
// "value" or "key".
type Action struct {
	// Type is the operation name, e.g. "insert", "search", "quick".
	Type string

	// Data is the structure state to run against; nil means the sample.
	Data step.Snapshot

	// Params holds the operation arguments as strings.
	Params map[string]string
}

// Param returns the named parameter or the given fallback when absent
// or empty.
func (a Action) Param(name, fallback string) string {
	if v, ok := a.Params[name]; ok && v != "" {
		return v
	}

	return fallback
}

// Complexity describes an operation's asymptotic behavior for display.
type Complexity struct {
	Best    string
	Average string
	Worst   string
	Space   string
}

// ActionSpec describes one operation a visualizer exposes, for UI
// form generation.
type ActionSpec struct {
	// Type is the Action.Type value to dispatch.
	Type string

	// Label is the human-readable operation name.
	Label string

	// Params names the parameters the operation reads, in display order.
	Params []ParamSpec
}

// ParamSpec describes one operation parameter.
type ParamSpec struct {
	// Name is the Params map key.
	Name string

	// Placeholder is a hint shown in the empty input.
	Placeholder string
}

// Visualizer is the uniform capability interface implemented by every
// structure module. Implementations are stateless: all structure state
// travels through Action.Data and the returned snapshots.
type Visualizer interface {
	// ID returns the registry key, e.g. "bst" or "sorting".
	ID() string

	// Name returns the human-readable title.
	Name() string

	// InitialState produces a fresh sample structure for first display.
	InitialState() step.Snapshot

	// Steps dispatches an action to the matching step generator.
	// Unknown action types fall back to a documented default; Steps
	// never panics and always returns a non-empty sequence.
	Steps(action Action) []step.Step

	// Draw renders a snapshot as styled terminal text. The snapshot is
	// self-contained; Draw reads no state beyond it.
	Draw(s step.Snapshot) string

	// Pseudocode returns the pseudocode lines for the given operation,
	// aligned with the CodeLine hints the generator emits.
	Pseudocode(op string) []string

	// Complexity returns the asymptotic summary for the given operation.
	Complexity(op string) Complexity

	// Actions lists the operations this visualizer exposes.
	Actions() []ActionSpec
}
