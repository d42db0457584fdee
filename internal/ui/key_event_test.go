package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/rentdesk/rentdesk/internal/shortcut"
)

func TestKeyEventFromTea(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want shortcut.KeyEvent
	}{
		{
			name: "plain rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")},
			want: shortcut.KeyEvent{Key: "g"},
		},
		{
			name: "upper case counts as shift",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("N")},
			want: shortcut.KeyEvent{Key: "N", Shift: true},
		},
		{
			name: "alt rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g"), Alt: true},
			want: shortcut.KeyEvent{Alt: true, Key: "g"},
		},
		{
			name: "space",
			msg:  tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")},
			want: shortcut.KeyEvent{Key: shortcut.KeySpace},
		},
		{
			name: "escape",
			msg:  tea.KeyMsg{Type: tea.KeyEsc},
			want: shortcut.KeyEvent{Key: shortcut.KeyEscape},
		},
		{
			name: "ctrl combination",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlP},
			want: shortcut.KeyEvent{Ctrl: true, Key: "p"},
		},
		{
			name: "named key",
			msg:  tea.KeyMsg{Type: tea.KeyEnter},
			want: shortcut.KeyEvent{Key: "enter"},
		},
		{
			name: "shift tab",
			msg:  tea.KeyMsg{Type: tea.KeyShiftTab},
			want: shortcut.KeyEvent{Key: "tab", Shift: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyEventFromTea(tt.msg))
		})
	}
}

func TestKeyEventFromTea_GateRejectsCtrl(t *testing.T) {
	gate := shortcut.NewGate(nil)
	assert.False(t, gate.Eligible(KeyEventFromTea(tea.KeyMsg{Type: tea.KeyCtrlC})))
	assert.True(t, gate.Eligible(KeyEventFromTea(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("N")})))
}
