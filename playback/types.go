package playback

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/algostep/step"
)

// Sentinel errors for Player construction.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("playback: invalid option supplied")
)

// DefaultSpeed is the inter-step delay used when none is configured.
const DefaultSpeed = 500 * time.Millisecond

// EventKind discriminates Player notifications.
type EventKind string

// Player event kinds.
const (
	// EventReset fires after Load and Reset.
	EventReset EventKind = "reset"

	// EventPlay fires when playback starts.
	EventPlay EventKind = "play"

	// EventPause fires when playback stops before the end.
	EventPause EventKind = "pause"

	// EventStepChange fires whenever the cursor lands on a new step.
	EventStepChange EventKind = "step-change"

	// EventComplete fires when playback reaches the last step.
	EventComplete EventKind = "complete"
)

// Event is one Player notification.
type Event struct {
	// Kind discriminates the notification.
	Kind EventKind

	// Run identifies the loaded sequence the event belongs to.
	Run uuid.UUID

	// Index is the cursor position at emission time.
	Index int

	// Step is the step under the cursor, nil when no steps are loaded.
	Step *step.Step
}

// Listener receives Player events synchronously.
type Listener func(Event)

// Option configures Player behavior via functional arguments. An
// invalid Option is recorded internally and surfaced as
// ErrOptionViolation by NewPlayer.
type Option func(*PlayerOptions)

// PlayerOptions holds construction parameters for a Player.
type PlayerOptions struct {
	// Speed is the inter-step delay of the timed advance.
	Speed time.Duration

	// Clock supplies the current time; tests substitute a fake.
	Clock func() time.Time

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns PlayerOptions with sane defaults:
//   - Speed of DefaultSpeed (500ms)
//   - time.Now as the clock
//   - error channel clear.
func DefaultOptions() PlayerOptions {
	return PlayerOptions{
		Speed: DefaultSpeed,
		Clock: time.Now,
		err:   nil,
	}
}

// WithSpeed sets the inter-step delay.
//
//	d > 0:  use d
//	d <= 0: invalid option → ErrOptionViolation
func WithSpeed(d time.Duration) Option {
	return func(o *PlayerOptions) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: speed must be positive (%v)", ErrOptionViolation, d)
			return
		}
		o.Speed = d
	}
}

// WithClock substitutes the time source.
func WithClock(fn func() time.Time) Option {
	return func(o *PlayerOptions) {
		if fn != nil {
			o.Clock = fn
		}
	}
}
