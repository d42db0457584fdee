package shortcut

import "github.com/rentdesk/rentdesk/internal/ports"

// FocusFunc adapts a plain function to ports.FocusProbe
type FocusFunc func() bool

// TextEntryFocused implements ports.FocusProbe
func (f FocusFunc) TextEntryFocused() bool { return f() }

// Gate decides, per raw key event, whether the dispatcher may interpret it
type Gate struct {
	focus ports.FocusProbe
}

// NewGate creates a gate. A nil probe means no text entry is ever focused.
func NewGate(focus ports.FocusProbe) Gate {
	return Gate{focus: focus}
}

// Verdict is the gate's decision on one event
type Verdict int

const (
	Eligible Verdict = iota
	RejectedFocus
	RejectedModifier
)

// Check applies the rules in order: text-entry focus, then modifiers.
// Shift alone is allowed since it takes part in the double-tap gesture.
func (g Gate) Check(ev KeyEvent) Verdict {
	if g.focus != nil && g.focus.TextEntryFocused() {
		return RejectedFocus
	}
	if ev.Ctrl || ev.Alt || ev.Meta {
		return RejectedModifier
	}
	return Eligible
}

// Eligible reports whether the dispatcher may interpret ev
func (g Gate) Eligible(ev KeyEvent) bool {
	return g.Check(ev) == Eligible
}
