package ui

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition describes one view-level key binding. Chords live in the
// shortcut registry; these are the plain keys the dispatcher passes on.
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // listed in the command menu
	Msg             tea.Msg // dispatched when picked from the command menu
	Name            string
}

// AllKeyDefinitions is the single table of view keys. None of them may
// start a chord or equal the double-tap key.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"ctrl+p"}, Help: "command menu"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}},
	{Name: "quick_find", Defaults: []string{"/"}, Help: "quick find", IsPaletteAction: true, Msg: OpenQuickFindMsg{}},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", IsPaletteAction: true, Msg: QuitMsg{}},
	{Name: "refresh", Defaults: []string{"ctrl+r"}, Help: "reload current view", IsPaletteAction: true, Msg: RefreshMsg{}},

	// Navigation keys
	{Name: "back", Defaults: []string{"esc"}, Help: "back to dashboard"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next row"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous row"},

	// Rental keys
	{Name: "return_rental", Defaults: []string{"x"}, Help: "return selected rental", IsPaletteAction: true, Msg: ReturnRentalMsg{}},
}

// ViewKeys returns the single-character view keys. The dispatcher refuses
// chords starting with them and a double-tap key equal to one of them.
func ViewKeys() []string {
	var keys []string
	for _, def := range AllKeyDefinitions {
		for _, k := range def.Defaults {
			if utf8.RuneCountInString(k) == 1 {
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// GetKeyDefinition returns the definition called name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	for i := range AllKeyDefinitions {
		if AllKeyDefinitions[i].Name == name {
			return &AllKeyDefinitions[i]
		}
	}
	return nil
}

// GetPaletteActions returns the definitions shown in the command menu
func GetPaletteActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if def.IsPaletteAction && def.Msg != nil {
			actions = append(actions, def)
		}
	}
	return actions
}
