package playback_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/playback"
	"github.com/katalvlaran/algostep/step"
)

// intSnapshot is a minimal step.Snapshot for player tests.
type intSnapshot int

func (s intSnapshot) CloneSnapshot() step.Snapshot { return s }

// makeSteps builds n trivial steps.
func makeSteps(n int) []step.Step {
	out := make([]step.Step, n)
	for i := range out {
		out[i] = step.Step{ID: i, Description: "step", Snapshot: intSnapshot(i)}
	}

	return out
}

// recordKinds subscribes a kind collector to p.
func recordKinds(p *playback.Player) *[]playback.EventKind {
	var kinds []playback.EventKind
	p.Subscribe(func(ev playback.Event) { kinds = append(kinds, ev.Kind) })

	return &kinds
}

func TestNewPlayer_OptionViolation(t *testing.T) {
	_, err := playback.NewPlayer(playback.WithSpeed(-time.Second))
	require.Error(t, err)
	assert.ErrorIs(t, err, playback.ErrOptionViolation)
}

// TestLoad notifies step 0 then reset, and stamps a fresh run.
func TestLoad(t *testing.T) {
	p, err := playback.NewPlayer()
	require.NoError(t, err)
	before := p.Run()

	kinds := recordKinds(p)
	p.Load(makeSteps(3))

	assert.Equal(t, []playback.EventKind{playback.EventStepChange, playback.EventReset}, *kinds)
	assert.NotEqual(t, before, p.Run(), "every load gets a new run identity")
	assert.Equal(t, 0, p.Index())
	require.NotNil(t, p.Current())
	assert.Equal(t, 0, p.Current().ID)

	// Empty load: reset only, no step to announce.
	*kinds = nil
	p.Load(nil)
	assert.Equal(t, []playback.EventKind{playback.EventReset}, *kinds)
	assert.Nil(t, p.Current())
}

// TestPause_Idempotent is the double-pause contract: one notification.
func TestPause_Idempotent(t *testing.T) {
	p, err := playback.NewPlayer()
	require.NoError(t, err)
	p.Load(makeSteps(3))

	kinds := recordKinds(p)
	p.Play()
	p.Pause()
	p.Pause()

	assert.Equal(t, []playback.EventKind{playback.EventPlay, playback.EventPause}, *kinds)
}

// TestStepBoundaries: forward at the end and back at the start are
// silent no-ops.
func TestStepBoundaries(t *testing.T) {
	p, err := playback.NewPlayer()
	require.NoError(t, err)
	p.Load(makeSteps(2))

	kinds := recordKinds(p)
	p.StepBack()
	assert.Empty(t, *kinds)
	assert.Equal(t, 0, p.Index())

	p.StepForward()
	assert.Equal(t, 1, p.Index())
	p.StepForward()
	assert.Equal(t, 1, p.Index(), "clamped at the last index")
	assert.Equal(t, []playback.EventKind{playback.EventStepChange}, *kinds)
}

// TestPlay_RestartsFromEnd: play at the last index rewinds to 0 first.
func TestPlay_RestartsFromEnd(t *testing.T) {
	p, err := playback.NewPlayer()
	require.NoError(t, err)
	p.Load(makeSteps(3))
	p.GoToEnd()
	require.Equal(t, 2, p.Index())

	p.Play()
	assert.Equal(t, 0, p.Index())
	assert.True(t, p.Playing())
}

// TestReset returns the cursor to 0 from any state and notifies the
// current step then reset.
func TestReset(t *testing.T) {
	p, err := playback.NewPlayer()
	require.NoError(t, err)
	p.Load(makeSteps(5))
	p.StepForward()
	p.StepForward()

	kinds := recordKinds(p)
	p.Reset()
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, []playback.EventKind{playback.EventStepChange, playback.EventReset}, *kinds)
}

// TestTick drives the frame-elapsed cadence with a fake clock.
func TestTick(t *testing.T) {
	now := time.Unix(0, 0)
	p, err := playback.NewPlayer(
		playback.WithSpeed(100*time.Millisecond),
		playback.WithClock(func() time.Time { return now }),
	)
	require.NoError(t, err)
	p.Load(makeSteps(3))
	p.Play()

	// Not enough elapsed time: no advance.
	p.Tick(now.Add(50 * time.Millisecond))
	assert.Equal(t, 0, p.Index())

	// Anchor resets on each advance.
	p.Tick(now.Add(100 * time.Millisecond))
	assert.Equal(t, 1, p.Index())
	p.Tick(now.Add(150 * time.Millisecond))
	assert.Equal(t, 1, p.Index())
	p.Tick(now.Add(200 * time.Millisecond))
	assert.Equal(t, 2, p.Index())

	// At the last step the next due tick completes instead of advancing.
	kinds := recordKinds(p)
	p.Tick(now.Add(300 * time.Millisecond))
	assert.Equal(t, 2, p.Index())
	assert.False(t, p.Playing())
	assert.Equal(t, []playback.EventKind{playback.EventComplete}, *kinds)
}

// TestTickRun_StaleRunDiscarded: ticks scheduled before a reload must
// not advance the new sequence.
func TestTickRun_StaleRunDiscarded(t *testing.T) {
	now := time.Unix(0, 0)
	p, err := playback.NewPlayer(
		playback.WithSpeed(100*time.Millisecond),
		playback.WithClock(func() time.Time { return now }),
	)
	require.NoError(t, err)
	p.Load(makeSteps(3))
	p.Play()
	stale := p.Run()

	p.Load(makeSteps(3))
	p.Play()
	p.TickRun(stale, now.Add(time.Second))
	assert.Equal(t, 0, p.Index(), "stale tick must be discarded")

	p.TickRun(p.Run(), now.Add(time.Second))
	assert.Equal(t, 1, p.Index())
}

// TestSetSpeed takes effect on the next tick without a restart.
func TestSetSpeed(t *testing.T) {
	now := time.Unix(0, 0)
	p, err := playback.NewPlayer(
		playback.WithSpeed(time.Second),
		playback.WithClock(func() time.Time { return now }),
	)
	require.NoError(t, err)
	p.Load(makeSteps(3))
	p.Play()

	p.SetSpeed(10 * time.Millisecond)
	p.Tick(now.Add(20 * time.Millisecond))
	assert.Equal(t, 1, p.Index())

	p.SetSpeed(0)
	assert.Equal(t, 10*time.Millisecond, p.Speed(), "non-positive speeds are ignored")
}

// TestSubscribe_DisposerInCallback: a listener may dispose itself
// mid-notification without breaking the others.
func TestSubscribe_DisposerInCallback(t *testing.T) {
	p, err := playback.NewPlayer()
	require.NoError(t, err)

	fired := 0
	var dispose func()
	dispose = p.Subscribe(func(playback.Event) {
		fired++
		dispose()
	})
	other := 0
	p.Subscribe(func(playback.Event) { other++ })

	p.Load(makeSteps(1))
	p.Load(makeSteps(1))

	assert.Equal(t, 1, fired, "disposed listener must not fire again")
	assert.Equal(t, 4, other, "remaining listener sees both loads' step+reset pairs")
}
