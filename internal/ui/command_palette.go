package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/rentdesk/rentdesk/internal/shortcut"
	"github.com/rentdesk/rentdesk/internal/theme"
)

const maxVisibleItems = 6

// paletteItem is either a chord entry or a view-key action
type paletteItem struct {
	action   *KeyDefinition
	chord    *shortcut.Entry
	help     string
	shortcut string
}

type paletteItems []paletteItem

func (p paletteItems) String(i int) string { return p[i].help }
func (p paletteItems) Len() int            { return len(p) }

// CommandPalette is the searchable command menu overlay. It lists every
// chord in the registry and every view-key action.
type CommandPalette struct {
	all           paletteItems
	Completed     bool
	dispatcher    *ActionDispatcher
	filterInput   textinput.Model
	items         paletteItems
	keys          KeyMap
	lastQuery     string
	Result        CommandPaletteResult
	selectedIndex int
	width         int
}

// CommandPaletteResult contains the result of the command menu interaction
type CommandPaletteResult struct {
	Cancelled bool
	Msg       tea.Msg
}

// NewCommandPalette builds the menu from the chord table and the view
// keys. selectedID is the row row-aware actions apply to.
func NewCommandPalette(registry *shortcut.Registry, keys KeyMap, selectedID string, width int) *CommandPalette {
	var all paletteItems
	for _, e := range registry.Entries() {
		entry := e
		all = append(all, paletteItem{
			chord:    &entry,
			help:     entry.Description,
			shortcut: entry.Sequence(),
		})
	}
	for _, def := range GetPaletteActions() {
		action := def
		all = append(all, paletteItem{
			action:   &action,
			help:     action.Help,
			shortcut: action.Defaults[0],
		})
	}

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		all:         all,
		dispatcher:  NewActionDispatcher(selectedID),
		filterInput: ti,
		items:       all,
		keys:        keys,
		width:       width,
	}
}

func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		return cp, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, cp.keys.Back), key.Matches(msg, cp.keys.ForceQuit):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case msg.Type == tea.KeyEnter:
			if cp.selectedIndex < len(cp.items) {
				cp.Completed = true
				cp.Result.Msg = cp.msgFor(cp.items[cp.selectedIndex])
			}
			return cp, nil

		case msg.Type == tea.KeyUp:
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case msg.Type == tea.KeyDown:
			if cp.selectedIndex < len(cp.items)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)
	cp.filter()
	return cp, cmd
}

func (cp *CommandPalette) msgFor(p paletteItem) tea.Msg {
	if p.chord != nil {
		return RunChordMsg{Entry: *p.chord}
	}
	return cp.dispatcher.Dispatch(*p.action)
}

func (cp *CommandPalette) View() string {
	width := cp.width
	if width <= 0 {
		width = 80
	}

	helpWidth := 0
	for _, it := range cp.all {
		if len(it.help) > helpWidth {
			helpWidth = len(it.help)
		}
	}

	var lines []string
	start, end := cp.visibleRange()
	for i := start; i < end; i++ {
		it := cp.items[i]
		prefix := "  "
		switch {
		case i == cp.selectedIndex:
			prefix = "> "
		case i == start && start > 0:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && end < len(cp.items):
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		}
		lines = append(lines, prefix+
			theme.PaletteItemStyle.Render(padRight(capitalizeFirst(it.help), helpWidth))+
			theme.PaletteShortcutStyle.Render("  "+it.shortcut))
	}
	if len(lines) == 0 {
		lines = append(lines, theme.PaletteDescStyle.Render("  No matching actions"))
	}
	for len(lines) < maxVisibleItems {
		lines = append(lines, "")
	}

	inner := theme.PaletteTitleStyle.Render("Command menu") + "\n\n" +
		cp.filterInput.View() + "\n\n" +
		strings.Join(lines, "\n")
	return theme.PaletteBorderStyle.Width(width - 2).Render(inner)
}

// filter ranks items against the filter text
func (cp *CommandPalette) filter() {
	query := cp.filterInput.Value()
	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query
	cp.selectedIndex = 0

	if query == "" {
		cp.items = cp.all
		return
	}

	matches := fuzzy.FindFrom(query, cp.all)
	filtered := make(paletteItems, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, cp.all[m.Index])
	}
	cp.items = filtered
}

// visibleRange keeps the selection inside a window of maxVisibleItems
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.items)
	if total <= maxVisibleItems {
		return 0, total
	}
	start := cp.selectedIndex - maxVisibleItems/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
