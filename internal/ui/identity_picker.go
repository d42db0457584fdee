package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// IdentityPicker chooses the operator recorded on new rentals and
// reservations. With no configured operators it asks for a name.
type IdentityPicker struct {
	Cancelled bool
	Completed bool
	form      *huh.Form
	selected  string
}

// NewIdentityPicker creates a picker preselecting current
func NewIdentityPicker(operators []string, current string) *IdentityPicker {
	p := &IdentityPicker{selected: current}

	var field huh.Field
	if len(operators) == 0 {
		field = huh.NewInput().
			Title("Who is at the desk?").
			Value(&p.selected).
			Validate(required("operator name"))
	} else {
		field = huh.NewSelect[string]().
			Title("Who is at the desk?").
			Options(huh.NewOptions(operators...)...).
			Value(&p.selected)
	}
	p.form = huh.NewForm(huh.NewGroup(field))
	return p
}

func (p *IdentityPicker) Init() tea.Cmd {
	return p.form.Init()
}

func (p *IdentityPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			p.Cancelled = true
			p.Completed = true
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}
	if p.form.State == huh.StateCompleted {
		p.Completed = true
		return p, nil
	}
	return p, cmd
}

func (p *IdentityPicker) View() string {
	return p.form.View()
}

// Selected returns the chosen operator
func (p *IdentityPicker) Selected() string {
	return strings.TrimSpace(p.selected)
}
