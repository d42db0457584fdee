package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rentdesk/rentdesk/internal/theme"
)

// rowLoader fetches the rows of a list view and the id behind each row
type rowLoader func(ctx context.Context) ([]table.Row, []string, error)

// TableView is a routed list screen backed by a bubbles table
type TableView struct {
	empty   string
	ids     []string
	load    rowLoader
	loaded  bool
	pending string // id to select once rows arrive
	route   string
	table   table.Model
	title   string
}

// tableKeyMap is the bubbles default without the keys the dispatcher
// claims (g starts chords, space is the double-tap key)
func tableKeyMap() table.KeyMap {
	km := table.DefaultKeyMap()
	km.PageDown = key.NewBinding(key.WithKeys("f", "pgdown"))
	km.GotoTop = key.NewBinding(key.WithKeys("home"))
	km.GotoBottom = key.NewBinding(key.WithKeys("end"))
	return km
}

// NewTableView creates a list view for route
func NewTableView(route, title, empty string, columns []table.Column, load rowLoader) *TableView {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithKeyMap(tableKeyMap()),
		table.WithStyles(theme.TableStyles()),
	)
	return &TableView{
		empty: empty,
		load:  load,
		route: route,
		table: t,
		title: title,
	}
}

// Load returns a command fetching the rows
func (v *TableView) Load() tea.Cmd {
	route, load := v.route, v.load
	return func() tea.Msg {
		rows, ids, err := load(context.Background())
		return tableLoadedMsg{err: err, ids: ids, route: route, rows: rows}
	}
}

// SetRows replaces the table content
func (v *TableView) SetRows(rows []table.Row, ids []string) {
	v.table.SetRows(rows)
	v.ids = ids
	v.loaded = true
	if v.pending != "" {
		v.Select(v.pending)
		v.pending = ""
	}
}

// Select moves the cursor to the row with id. The id is also kept for
// the next SetRows, since selecting usually precedes a reload.
func (v *TableView) Select(id string) {
	v.pending = id
	for i, rowID := range v.ids {
		if rowID == id {
			v.table.SetCursor(i)
			return
		}
	}
}

// SelectedID returns the id of the row under the cursor
func (v *TableView) SelectedID() string {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.ids) {
		return ""
	}
	return v.ids[i]
}

// SetSize fits the table into the space below the header
func (v *TableView) SetSize(width, height int) {
	v.table.SetWidth(width)
	v.table.SetHeight(max(height, 3))
}

func (v *TableView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

func (v *TableView) View() string {
	header := theme.TitleStyle.Render(v.title)
	if !v.loaded {
		return header + "\n" + theme.MutedStyle.Render("loading...")
	}
	if len(v.ids) == 0 {
		return header + "\n" + theme.MutedStyle.Render(v.empty)
	}
	return header + "\n" + v.table.View() + "\n" +
		theme.MutedStyle.Render(fmt.Sprintf("%d rows", len(v.ids)))
}
