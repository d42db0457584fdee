package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps a tea.Model and prepends the application header with a
// title to its view. Forms are always shown through a Dialog.
//
//	dialog := NewDialog("New customer", form, devMode)
//	dialog.Update(msg)
//	if content, ok := dialog.Content().(*CreateForm); ok && content.Completed { ... }
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a dialog around content
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := d.content.Update(msg)
	d.content = updated
	return d, cmd
}

func (d *Dialog) View() string {
	return renderHeader(d.devMode, d.title) + "\n" + d.content.View()
}

// Content returns the wrapped model for type assertion
func (d *Dialog) Content() tea.Model {
	return d.content
}
