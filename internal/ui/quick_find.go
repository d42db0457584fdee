package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rentdesk/rentdesk/internal/services"
	"github.com/rentdesk/rentdesk/internal/theme"
)

const quickFindLimit = 8

// QuickFind is the search overlay over customers and items. It is opened
// by the double tap, the o f chord or the / key.
type QuickFind struct {
	Completed     bool
	err           error
	hits          []services.SearchHit
	input         textinput.Model
	lastQuery     string
	Result        *services.SearchHit
	search        *services.SearchService
	selectedIndex int
	width         int
}

// NewQuickFind creates the overlay with a focused input
func NewQuickFind(search *services.SearchService, width int) *QuickFind {
	ti := textinput.New()
	ti.Prompt = "Find: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Placeholder = "customer or item name"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.CharLimit = 60
	ti.Width = 40
	ti.Focus()

	return &QuickFind{input: ti, search: search, width: width}
}

func (q *QuickFind) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, q.query(""))
}

// query runs a search in the background
func (q *QuickFind) query(text string) tea.Cmd {
	search := q.search
	return func() tea.Msg {
		hits, err := search.Search(context.Background(), text, quickFindLimit)
		return searchResultsMsg{err: err, hits: hits, query: text}
	}
}

func (q *QuickFind) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultsMsg:
		if msg.query != q.input.Value() {
			return q, nil
		}
		q.err = msg.err
		q.hits = msg.hits
		if q.selectedIndex >= len(q.hits) {
			q.selectedIndex = 0
		}
		return q, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			q.Completed = true
			return q, nil
		case tea.KeyEnter:
			if q.selectedIndex < len(q.hits) {
				hit := q.hits[q.selectedIndex]
				q.Result = &hit
				q.Completed = true
			}
			return q, nil
		case tea.KeyUp:
			if q.selectedIndex > 0 {
				q.selectedIndex--
			}
			return q, nil
		case tea.KeyDown:
			if q.selectedIndex < len(q.hits)-1 {
				q.selectedIndex++
			}
			return q, nil
		}
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	if text := q.input.Value(); text != q.lastQuery {
		q.lastQuery = text
		q.selectedIndex = 0
		return q, tea.Batch(cmd, q.query(text))
	}
	return q, cmd
}

func (q *QuickFind) View() string {
	var lines []string
	switch {
	case q.err != nil:
		lines = append(lines, theme.ErrorStyle.Render("  "+q.err.Error()))
	case len(q.hits) == 0:
		lines = append(lines, theme.PaletteDescStyle.Render("  No matches"))
	}
	for i, hit := range q.hits {
		prefix := "  "
		if i == q.selectedIndex {
			prefix = "> "
		}
		lines = append(lines, prefix+highlight(hit.Label, hit.MatchedIndexes)+
			theme.PaletteDescStyle.Render("  "+hit.Kind))
	}
	for len(lines) < quickFindLimit {
		lines = append(lines, "")
	}

	width := q.width
	if width <= 0 {
		width = 80
	}
	inner := theme.PaletteTitleStyle.Render("Quick find") + "\n\n" +
		q.input.View() + "\n\n" +
		strings.Join(lines, "\n")
	return theme.PaletteBorderStyle.Width(width/2 + 10).Render(inner)
}

// highlight renders the matched runes of label in the match style
func highlight(label string, matched []int) string {
	if len(matched) == 0 {
		return theme.PaletteItemStyle.Render(label)
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var sb strings.Builder
	for i, r := range []rune(label) {
		if hit[i] {
			sb.WriteString(theme.PaletteMatchStyle.Render(string(r)))
		} else {
			sb.WriteString(theme.PaletteItemStyle.Render(string(r)))
		}
	}
	return sb.String()
}
