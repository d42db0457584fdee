package shortcut

import "time"

// DoubleTap recognizes two presses of one designated key within a window.
// It is a value type; Press and Reset return the next state.
type DoubleTap struct {
	key         string
	lastPressAt time.Time
	pending     bool
	window      time.Duration
}

// NewDoubleTap creates a recognizer for key
func NewDoubleTap(key string, window time.Duration) DoubleTap {
	return DoubleTap{key: NormalizeKey(key), window: window}
}

// Key returns the designated key
func (d DoubleTap) Key() string { return d.key }

// Pending reports whether a first press is being tracked
func (d DoubleTap) Pending() bool { return d.pending }

// Press observes a key press. Any other key clears a pending first press.
func (d DoubleTap) Press(key string, at time.Time) (DoubleTap, bool) {
	if key != d.key {
		return d.Reset(), false
	}
	if d.pending && at.Sub(d.lastPressAt) < d.window {
		return d.Reset(), true
	}
	d.pending = true
	d.lastPressAt = at
	return d, false
}

// Reset forgets any pending first press
func (d DoubleTap) Reset() DoubleTap {
	d.pending = false
	d.lastPressAt = time.Time{}
	return d
}
