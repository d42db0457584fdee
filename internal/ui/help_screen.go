package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rentdesk/rentdesk/internal/shortcut"
	"github.com/rentdesk/rentdesk/internal/theme"
)

// chordGroupNames titles the built-in prefixes
var chordGroupNames = map[rune]string{
	'g': "Go to",
	'n': "Create",
	'o': "Open",
}

// HelpScreen lists the chords, the double-tap gesture and the view keys
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent renders the registry snapshot grouped by first key
func buildHelpContent(registry *shortcut.Registry, cfg shortcut.Config, keys KeyMap) string {
	var sb strings.Builder

	var current rune
	for _, e := range registry.Entries() {
		if e.First != current {
			current = e.First
			title, ok := chordGroupNames[current]
			if !ok {
				title = "Custom"
			}
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(theme.HelpGroupStyle.Render(title+" ("+string(current)+" then ...)") + "\n")
		}
		sb.WriteString(renderShortcut(e.Sequence(), e.Description))
	}

	sb.WriteString("\n" + theme.HelpGroupStyle.Render("Gestures") + "\n")
	sb.WriteString(renderShortcut(cfg.DoubleTapKey+" "+cfg.DoubleTapKey,
		"quick find (within "+cfg.DoubleTapTimeout.String()+")"))
	sb.WriteString(renderShortcut("esc", "cancel a pending chord"))
	sb.WriteString(renderShortcut("", "a chord expires "+cfg.SequenceTimeout.String()+" after its first key"))

	sb.WriteString("\n" + theme.HelpGroupStyle.Render("Views") + "\n")
	sb.WriteString(renderBinding(keys.Up))
	sb.WriteString(renderBinding(keys.Down))
	sb.WriteString(renderBinding(keys.ReturnRental))
	sb.WriteString(renderBinding(keys.Back))

	sb.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	sb.WriteString(renderBinding(keys.QuickFind))
	sb.WriteString(renderBinding(keys.CommandPalette))
	sb.WriteString(renderBinding(keys.Refresh))
	sb.WriteString(renderBinding(keys.Help))
	sb.WriteString(renderBinding(keys.Quit))
	sb.WriteString(renderBinding(keys.ForceQuit))

	return sb.String()
}

// NewHelpScreen creates the help screen for the given chord table
func NewHelpScreen(registry *shortcut.Registry, cfg shortcut.Config, keys KeyMap) *HelpScreen {
	vp := viewport.New(0, 0)
	vp.KeyMap.PageDown.SetKeys("pgdown", "f")
	return &HelpScreen{
		content:  buildHelpContent(registry, cfg, keys),
		keys:     keys,
		viewport: vp,
	}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// dialog header 4 lines, footer 2
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Back, h.keys.Quit, h.keys.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
