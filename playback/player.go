package playback

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/algostep/step"
)

// Player walks a loaded step sequence under manual or timed control.
//
// All methods must be called from one goroutine; listeners run
// synchronously on that goroutine.
type Player struct {
	steps   []step.Step
	index   int
	playing bool
	speed   time.Duration
	anchor  time.Time
	clock   func() time.Time
	run     uuid.UUID

	listeners map[int]Listener
	nextSub   int
}

// NewPlayer builds an empty Player. Load a sequence before playing.
func NewPlayer(opts ...Option) (*Player, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Player{
		speed:     cfg.Speed,
		clock:     cfg.Clock,
		run:       uuid.New(),
		listeners: make(map[int]Listener),
	}, nil
}

// Run returns the identity of the currently loaded sequence. It
// changes on every Load, invalidating ticks scheduled for earlier
// sequences.
func (p *Player) Run() uuid.UUID { return p.run }

// Playing reports whether the timed advance is active.
func (p *Player) Playing() bool { return p.playing }

// Index returns the cursor position.
func (p *Player) Index() int { return p.index }

// Len returns the number of loaded steps.
func (p *Player) Len() int { return len(p.steps) }

// Speed returns the configured inter-step delay.
func (p *Player) Speed() time.Duration { return p.speed }

// Current returns the step under the cursor, or nil when the list is
// empty.
func (p *Player) Current() *step.Step {
	if len(p.steps) == 0 {
		return nil
	}

	return &p.steps[p.index]
}

// Load replaces the step list: stops any active playback, resets the
// cursor to 0, stamps a fresh run identity, then notifies the new step
// 0 (when steps exist) followed by a reset event. Safe to call
// mid-playback.
func (p *Player) Load(steps []step.Step) {
	p.playing = false
	p.steps = steps
	p.index = 0
	p.run = uuid.New()
	if len(p.steps) > 0 {
		p.notify(EventStepChange)
	}
	p.notify(EventReset)
}

// Play starts the timed advance. With no steps it is a no-op; at the
// last step it restarts from 0.
func (p *Player) Play() {
	if len(p.steps) == 0 {
		return
	}
	if p.index == len(p.steps)-1 {
		p.index = 0
		p.notify(EventStepChange)
	}
	p.playing = true
	p.anchor = p.clock()
	p.notify(EventPlay)
}

// Pause stops the timed advance. Idempotent: a second Pause emits no
// duplicate notification.
func (p *Player) Pause() {
	if !p.playing {
		return
	}
	p.playing = false
	p.notify(EventPause)
}

// StepForward moves the cursor one step toward the end. A no-op at the
// last index: the cursor stays put and nothing is notified.
func (p *Player) StepForward() {
	if p.index >= len(p.steps)-1 {
		return
	}
	p.index++
	p.notify(EventStepChange)
}

// StepBack moves the cursor one step toward the start. A no-op at 0.
func (p *Player) StepBack() {
	if p.index <= 0 {
		return
	}
	p.index--
	p.notify(EventStepChange)
}

// Reset pauses and returns the cursor to 0, notifying the current step
// then a reset event.
func (p *Player) Reset() {
	p.Pause()
	p.index = 0
	if len(p.steps) > 0 {
		p.notify(EventStepChange)
	}
	p.notify(EventReset)
}

// GoToEnd pauses and jumps to the last index, notifying the step
// change then a complete event. A no-op when no steps are loaded.
func (p *Player) GoToEnd() {
	if len(p.steps) == 0 {
		return
	}
	p.Pause()
	if p.index != len(p.steps)-1 {
		p.index = len(p.steps) - 1
		p.notify(EventStepChange)
	}
	p.notify(EventComplete)
}

// SetSpeed updates the inter-step delay. Takes effect on the next tick
// without restarting playback; non-positive values are ignored.
func (p *Player) SetSpeed(d time.Duration) {
	if d <= 0 {
		return
	}
	p.speed = d
}

// Tick advances the animation by one frame. While playing, if the time
// elapsed since the anchor reaches the configured speed, the cursor
// advances by one and the anchor resets; at the last step playback
// stops and a complete event fires instead.
func (p *Player) Tick(now time.Time) {
	p.TickRun(p.run, now)
}

// TickRun is Tick guarded by run identity: ticks scheduled for a
// superseded sequence are discarded.
func (p *Player) TickRun(run uuid.UUID, now time.Time) {
	if run != p.run || !p.playing {
		return
	}
	if now.Sub(p.anchor) < p.speed {
		return
	}
	if p.index >= len(p.steps)-1 {
		p.playing = false
		p.notify(EventComplete)
		return
	}
	p.index++
	p.anchor = now
	p.notify(EventStepChange)
}

// Subscribe registers a listener and returns its disposer. Disposers
// may be called from inside a listener.
func (p *Player) Subscribe(fn Listener) func() {
	id := p.nextSub
	p.nextSub++
	p.listeners[id] = fn

	return func() { delete(p.listeners, id) }
}

// notify invokes every listener with the current cursor state. The
// listener set is snapshotted first so callbacks may dispose
// subscriptions mid-notification.
func (p *Player) notify(kind EventKind) {
	ev := Event{Kind: kind, Run: p.run, Index: p.index, Step: p.Current()}
	snapshot := make([]Listener, 0, len(p.listeners))
	for _, fn := range p.listeners {
		snapshot = append(snapshot, fn)
	}
	for _, fn := range snapshot {
		fn(ev)
	}
}
