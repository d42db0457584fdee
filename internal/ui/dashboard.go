package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/ports"
	"github.com/rentdesk/rentdesk/internal/services"
	"github.com/rentdesk/rentdesk/internal/theme"
)

const dashboardOverdueRows = 8

// DashboardView is the home screen: headline figures and the overdue list
type DashboardView struct {
	clock   ports.Clock
	err     error
	loaded  bool
	overdue []overdueRow
	svc     Services
	summary *services.Summary
}

// NewDashboardView creates the home screen
func NewDashboardView(svc Services, clock ports.Clock) *DashboardView {
	return &DashboardView{clock: clock, svc: svc}
}

// Load fetches the summary and the overdue rentals with their names
func (v *DashboardView) Load() tea.Cmd {
	svc := v.svc
	return func() tea.Msg {
		var msg dashboardLoadedMsg
		var overdue []domain.Rental
		var names nameIndex

		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			var err error
			msg.summary, err = svc.Analytics.Summary(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			overdue, err = svc.Rentals.Overdue(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			names, err = loadNames(ctx, svc)
			return err
		})
		if msg.err = g.Wait(); msg.err != nil {
			return msg
		}

		for _, r := range overdue {
			msg.overdue = append(msg.overdue, overdueRow{
				Customer: names.customers[r.CustomerID],
				Item:     names.items[r.ItemID],
				Rental:   r,
			})
		}
		return msg
	}
}

func (v *DashboardView) apply(msg dashboardLoadedMsg) {
	v.err = msg.err
	v.loaded = true
	v.overdue = msg.overdue
	v.summary = msg.summary
}

func (v *DashboardView) View() string {
	header := theme.TitleStyle.Render("Dashboard")
	switch {
	case v.err != nil:
		return header + "\n" + theme.ErrorStyle.Render(v.err.Error())
	case !v.loaded || v.summary == nil:
		return header + "\n" + theme.MutedStyle.Render("loading...")
	}

	s := v.summary
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("customers", fmt.Sprint(s.Customers), theme.NormalStyle),
		card("items", fmt.Sprint(s.Items), theme.NormalStyle),
		card("out", fmt.Sprint(s.ActiveRentals), theme.ActiveStyle),
		card("overdue", fmt.Sprint(s.OverdueRentals), theme.OverdueStyle),
		card("reserved", fmt.Sprint(s.Reservations), theme.ReservedStyle),
		card("outstanding", domain.FormatCents(s.Outstanding), theme.NormalStyle),
	)

	var sb strings.Builder
	sb.WriteString(header + "\n" + cards + "\n\n")
	if len(v.overdue) == 0 {
		sb.WriteString(theme.MutedStyle.Render("Nothing is overdue."))
		return sb.String()
	}

	now := v.clock.Now()
	sb.WriteString(theme.SubtitleStyle.Render("Overdue"))
	for i, row := range v.overdue {
		if i == dashboardOverdueRows {
			sb.WriteString("\n" + theme.MutedStyle.Render(fmt.Sprintf("  and %d more, press g o", len(v.overdue)-i)))
			break
		}
		sb.WriteString("\n")
		sb.WriteString(theme.OverdueStyle.Render(fmt.Sprintf("  %3dd ", row.Rental.DaysOverdue(now))))
		sb.WriteString(theme.NormalStyle.Render(fmt.Sprintf("%-20s %-20s due %s",
			row.Item, row.Customer, row.Rental.DueDate.Local().Format(dateFormat))))
	}
	return sb.String()
}

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.ColorMuted).
	Padding(0, 2).
	MarginRight(1)

func card(label, value string, valueStyle lipgloss.Style) string {
	return cardStyle.Render(valueStyle.Bold(true).Render(value) + "\n" + theme.HelpLabelStyle.Render(label))
}
