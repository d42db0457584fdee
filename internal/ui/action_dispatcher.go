package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RowAwareMsg is implemented by messages that act on the selected row
type RowAwareMsg interface {
	WithRow(id string) tea.Msg
}

// ActionDispatcher maps key definitions to UI messages, filling in the
// selected row for messages that need one.
type ActionDispatcher struct {
	selectedID string
}

// NewActionDispatcher creates a dispatcher for the row selectedID, which
// may be empty
func NewActionDispatcher(selectedID string) *ActionDispatcher {
	return &ActionDispatcher{selectedID: selectedID}
}

// Dispatch returns the message for def, or nil when the action needs a
// selected row and there is none
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}
	if rowMsg, ok := def.Msg.(RowAwareMsg); ok {
		if d.selectedID == "" {
			return nil
		}
		return rowMsg.WithRow(d.selectedID)
	}
	return def.Msg
}
