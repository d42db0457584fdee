package server

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentdesk/rentdesk/internal/shortcut"
	"github.com/rentdesk/rentdesk/internal/ui"
)

func newDashboard(t *testing.T) *ui.Model {
	t.Helper()
	registry := shortcut.MustNewRegistry(shortcut.DefaultEntries()...)
	m, err := ui.NewModel(ui.Services{}, registry, ui.Options{Dispatcher: shortcut.DefaultConfig()})
	require.NoError(t, err)
	return m
}

func TestSessionTable_CloseReleasesDashboard(t *testing.T) {
	table := newSessionTable()
	first := newDashboard(t)
	second := newDashboard(t)

	table.add("ana@10.0.0.1:5000", first)
	table.add("rui@10.0.0.2:5000", second)
	require.Equal(t, 2, table.Len())

	table.close("ana@10.0.0.1:5000")

	assert.Equal(t, 1, table.Len())
	assert.Equal(t, shortcut.Ignored, first.Dispatcher().HandleKey(shortcut.KeyEvent{Key: "g"}))
	assert.Equal(t, shortcut.Consumed, second.Dispatcher().HandleKey(shortcut.KeyEvent{Key: "g"}))

	// unknown or already closed sessions are ignored
	table.close("ana@10.0.0.1:5000")
	assert.Equal(t, 1, table.Len())
}

func TestErrorModel_QuitsOnFirstMessage(t *testing.T) {
	m := errorModel{err: errors.New("database is locked")}

	assert.Contains(t, m.View(), "database is locked")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNewServer_RequiresModelFactory(t *testing.T) {
	_, err := NewServer(Config{Host: "localhost", Port: "0"})
	assert.Error(t, err)
}
