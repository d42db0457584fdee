package ui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rentdesk/rentdesk/internal/shortcut"
)

// KeyEventFromTea converts a bubbletea key message into the dispatcher's
// raw key event. An upper-case rune counts as a Shift press.
func KeyEventFromTea(msg tea.KeyMsg) shortcut.KeyEvent {
	ev := shortcut.KeyEvent{Alt: msg.Alt}

	switch msg.Type {
	case tea.KeyRunes:
		ev.Key = string(msg.Runes)
		if len(msg.Runes) == 1 && unicode.IsUpper(msg.Runes[0]) {
			ev.Shift = true
		}
		return ev
	case tea.KeySpace:
		ev.Key = shortcut.KeySpace
		return ev
	case tea.KeyEsc:
		ev.Key = shortcut.KeyEscape
		return ev
	}

	name := msg.String()
	name = strings.TrimPrefix(name, "alt+")
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		ev.Ctrl = true
		name = rest
	}
	if rest, ok := strings.CutPrefix(name, "shift+"); ok {
		ev.Shift = true
		name = rest
	}
	ev.Key = name
	return ev
}
