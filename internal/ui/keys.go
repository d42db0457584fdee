package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the view-level key bindings
type KeyMap struct {
	Back           key.Binding
	CommandPalette key.Binding
	Down           key.Binding
	ForceQuit      key.Binding
	Help           key.Binding
	QuickFind      key.Binding
	Quit           key.Binding
	Refresh        key.Binding
	ReturnRental   key.Binding
	Up             key.Binding
}

// NewKeyMap builds the bindings from AllKeyDefinitions
func NewKeyMap() KeyMap {
	return KeyMap{
		Back:           buildBinding("back"),
		CommandPalette: buildBinding("command_palette"),
		Down:           buildBinding("down"),
		ForceQuit:      buildBinding("force_quit"),
		Help:           buildBinding("help"),
		QuickFind:      buildBinding("quick_find"),
		Quit:           buildBinding("quit"),
		Refresh:        buildBinding("refresh"),
		ReturnRental:   buildBinding("return_rental"),
		Up:             buildBinding("up"),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.QuickFind,
		k.CommandPalette,
		k.ReturnRental,
		k.Back,
		k.Help,
		k.Quit,
	}
}

func buildBinding(name string) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}
	return key.NewBinding(
		key.WithKeys(def.Defaults...),
		key.WithHelp(strings.Join(def.Defaults, "/"), def.Help),
	)
}
