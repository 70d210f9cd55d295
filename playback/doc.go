// Package playback turns a recorded step sequence into a controllable,
// time-driven animation.
//
// What you'll find here:
//
//   - ▶️ Player — holds a loaded step list and a cursor; Play, Pause,
//     StepForward, StepBack, Reset, GoToEnd and SetSpeed drive it.
//   - ⏱️ Caller-driven cadence: the Player owns no goroutine or timer.
//     The host calls Tick(now) on every animation frame; the Player
//     advances only when the elapsed time since its anchor reaches the
//     configured speed, so render frame rate never desyncs from step
//     rate.
//   - 🎫 Run identity: every Load stamps a fresh uuid. Hosts that
//     schedule ticks asynchronously pass it to TickRun, and ticks from
//     a superseded run are discarded instead of advancing the wrong
//     sequence.
//   - 📣 Subscribe registers a synchronous listener and returns a
//     disposer; disposers are safe to call from inside a callback.
//
// Every control operation is a total function: out-of-range moves are
// clamped, never rejected. Only option misuse at construction returns
// an error. The Player is single-goroutine by design, matching the
// event-driven hosts it serves.
package playback
