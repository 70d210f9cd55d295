package step

import "fmt"

// Recorder accumulates the step sequence for one generator run.
//
// Generators mutate their own working copy of a structure and call
// Record at each meaningful moment; Record deep-clones the working
// snapshot so earlier steps stay frozen. Counter methods bump the
// cumulative Meta carried into every subsequent step.
//
// The zero Recorder is not ready for use; call NewRecorder.
type Recorder struct {
	meta  Meta
	steps []Step
}

// NewRecorder returns an empty Recorder with zeroed counters.
// Complexity: O(1).
func NewRecorder() *Recorder {
	return &Recorder{steps: make([]Step, 0, 16)}
}

// Compare increments the cumulative comparison counter by one.
func (r *Recorder) Compare() { r.meta.Comparisons++ }

// Swap increments the cumulative swap counter by one.
func (r *Recorder) Swap() { r.meta.Swaps++ }

// Read increments the cumulative read counter by one.
func (r *Recorder) Read() { r.meta.Reads++ }

// Write increments the cumulative write counter by one.
func (r *Recorder) Write() { r.meta.Writes++ }

// SetLine sets the pseudocode line hint carried by subsequent steps.
// A value of 0 clears the hint.
func (r *Recorder) SetLine(line int) { r.meta.CodeLine = line }

// SetHighlight sets the renderer color hint carried by subsequent
// steps. An empty value clears the hint.
func (r *Recorder) SetHighlight(h string) { r.meta.Highlight = h }

// Meta returns the counters accumulated so far.
func (r *Recorder) Meta() Meta { return r.meta }

// Len returns the number of steps recorded so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Record clones s and appends a step described by the formatted message.
// The step's ID is its position in the sequence.
func (r *Recorder) Record(s Snapshot, format string, args ...any) {
	r.RecordMarked(s, nil, nil, format, args...)
}

// RecordMarked is Record with explicit active/modified position hints.
// Both slices are copied so callers may reuse their backing arrays.
func (r *Recorder) RecordMarked(s Snapshot, active, modified []int, format string, args ...any) {
	st := Step{
		ID:          len(r.steps),
		Description: fmt.Sprintf(format, args...),
		Meta:        r.meta,
	}
	if s != nil {
		st.Snapshot = s.CloneSnapshot()
	}
	if len(active) > 0 {
		st.Active = append([]int(nil), active...)
	}
	if len(modified) > 0 {
		st.Modified = append([]int(nil), modified...)
	}
	r.steps = append(r.steps, st)
}

// Steps returns the recorded sequence. The returned slice is owned by
// the caller; the Recorder must not be reused afterwards.
func (r *Recorder) Steps() []Step { return r.steps }
