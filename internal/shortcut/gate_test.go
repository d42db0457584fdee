package shortcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_Eligible(t *testing.T) {
	focused := false
	gate := NewGate(FocusFunc(func() bool { return focused }))

	tests := []struct {
		name     string
		event    KeyEvent
		focused  bool
		expected bool
	}{
		{"plain key", KeyEvent{Key: "n"}, false, true},
		{"shift alone", KeyEvent{Key: "N", Shift: true}, false, true},
		{"ctrl", KeyEvent{Key: "n", Ctrl: true}, false, false},
		{"alt", KeyEvent{Key: "n", Alt: true}, false, false},
		{"meta", KeyEvent{Key: "n", Meta: true}, false, false},
		{"text entry focused", KeyEvent{Key: "n"}, true, false},
		{"double tap key while focused", KeyEvent{Key: "shift", Shift: true}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			focused = tt.focused
			assert.Equal(t, tt.expected, gate.Eligible(tt.event))
		})
	}
}

func TestGate_Check(t *testing.T) {
	focused := true
	gate := NewGate(FocusFunc(func() bool { return focused }))

	assert.Equal(t, RejectedFocus, gate.Check(KeyEvent{Key: "r", Ctrl: true}), "focus wins over modifiers")

	focused = false
	assert.Equal(t, RejectedModifier, gate.Check(KeyEvent{Key: "r", Ctrl: true}))
	assert.Equal(t, Eligible, gate.Check(press("r")))
}

func TestGate_ProbesFocusOnEveryEvent(t *testing.T) {
	calls := 0
	gate := NewGate(FocusFunc(func() bool {
		calls++
		return false
	}))

	gate.Eligible(press("a"))
	gate.Eligible(press("b"))

	assert.Equal(t, 2, calls)
}

func TestGate_NilProbe(t *testing.T) {
	assert.True(t, NewGate(nil).Eligible(press("n")))
}
