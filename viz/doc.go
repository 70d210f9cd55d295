// Package viz defines the uniform contract every structure module
// implements — InitialState, Steps, Draw plus descriptive metadata —
// and the process-scoped registry that maps string IDs to visualizer
// factories.
//
// The contract is the seam between the algorithmic core and its
// collaborators: a UI looks a visualizer up by ID, asks it for an
// initial sample structure, dispatches user actions through Steps, and
// paints whatever snapshot the playback engine currently points at via
// Draw. All structures are handled polymorphically through this one
// interface; no caller ever names a concrete generator.
//
// Registration is an explicit initialization phase: the root algostep
// package registers the full catalog into Default(). Subscribers are
// notified synchronously as IDs are registered.
package viz
