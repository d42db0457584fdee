package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentdesk/rentdesk/internal/shortcut"
)

func typeText(cp *CommandPalette, text string) {
	for _, r := range text {
		cp.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestCommandPalette_ListsChordsAndActions(t *testing.T) {
	registry := shortcut.MustNewRegistry(shortcut.DefaultEntries()...)
	cp := NewCommandPalette(registry, NewKeyMap(), "", 80)

	assert.Len(t, cp.items, registry.Len()+len(GetPaletteActions()))
	view := cp.View()
	assert.Contains(t, view, "Command menu")
	assert.Contains(t, view, "n c")
}

func TestCommandPalette_FilterAndRunChord(t *testing.T) {
	registry := shortcut.MustNewRegistry(shortcut.DefaultEntries()...)
	cp := NewCommandPalette(registry, NewKeyMap(), "", 80)

	typeText(cp, "overdue")
	require.NotEmpty(t, cp.items)
	assert.Equal(t, "open overdue", cp.items[0].help)

	cp.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, cp.Completed)
	msg, ok := cp.Result.Msg.(RunChordMsg)
	require.True(t, ok)
	assert.Equal(t, "g o", msg.Entry.Sequence())
}

func TestCommandPalette_ActionItem(t *testing.T) {
	registry := shortcut.MustNewRegistry(shortcut.DefaultEntries()...)
	cp := NewCommandPalette(registry, NewKeyMap(), "", 80)

	typeText(cp, "exit application")
	require.NotEmpty(t, cp.items)
	cp.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, QuitMsg{}, cp.Result.Msg)
}

func TestCommandPalette_RowAction(t *testing.T) {
	registry := shortcut.MustNewRegistry(shortcut.DefaultEntries()...)
	cp := NewCommandPalette(registry, NewKeyMap(), "r1", 80)

	typeText(cp, "return selected rental")
	cp.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ReturnRentalMsg{RentalID: "r1"}, cp.Result.Msg)
}

func TestCommandPalette_Escape(t *testing.T) {
	registry := shortcut.MustNewRegistry(shortcut.DefaultEntries()...)
	cp := NewCommandPalette(registry, NewKeyMap(), "", 80)

	cp.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, cp.Completed)
	assert.True(t, cp.Result.Cancelled)
	assert.Nil(t, cp.Result.Msg)
}

func TestCommandPalette_NoMatches(t *testing.T) {
	registry := shortcut.MustNewRegistry(shortcut.DefaultEntries()...)
	cp := NewCommandPalette(registry, NewKeyMap(), "", 80)

	typeText(cp, "zzzz")
	assert.Empty(t, cp.items)
	assert.Contains(t, cp.View(), "No matching actions")

	cp.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, cp.Completed)
}
