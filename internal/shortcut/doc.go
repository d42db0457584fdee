// Package shortcut implements the global keyboard-shortcut dispatcher.
//
// The dispatcher recognizes two-key chords ("n" then "c") and a
// double press of one designated key. It is split into:
//
//   - Gate: decides whether a raw key event may be interpreted at all
//   - Registry: immutable first-key -> second-key table of handlers
//   - Reducer: pure Idle/Awaiting state machine producing effects
//   - DoubleTap: independent recognizer for the designated key
//   - Capabilities: open/navigate callbacks installed by UI surfaces
//   - Feedback: transient notifications driven by state transitions
//
// Dispatcher is the side-effecting shell around them. It owns the
// single chord state and double-tap state, runs effects, arms and
// cancels the sequence timer through a ports.Scheduler, and catches
// handler failures so they never reach the host application.
//
// The dispatcher is not safe for concurrent use. All calls, including
// scheduler callbacks, must happen on the goroutine that delivers key
// events (the bubbletea update loop in this application).
package shortcut
