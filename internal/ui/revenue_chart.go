package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/services"
	"github.com/rentdesk/rentdesk/internal/theme"
)

const (
	revenueChartHeight = 8
	revenueBarWidth    = 5
	revenueBarGap      = 1
	revenueMonths      = 6
)

// RenderRevenueChart renders monthly revenue as a bar chart. Shared by
// the analytics view and the analytics command.
func RenderRevenueChart(months []services.MonthRevenue) string {
	var sb strings.Builder

	var total, peak int64
	rentals := 0
	for _, m := range months {
		total += m.Amount
		rentals += m.Rentals
		if m.Amount > peak {
			peak = m.Amount
		}
	}

	legend := theme.ChartLegendStyle.Render("Revenue: ") +
		theme.RevenueStyle.Render("■") +
		theme.ChartLegendStyle.Render(fmt.Sprintf(" total %s (max %s)  rentals %d",
			domain.FormatCents(total), domain.FormatCents(peak), rentals))
	sb.WriteString(legend)
	sb.WriteString("\n\n")

	maxVal := float64(peak)
	if maxVal == 0 {
		maxVal = 1
	}

	axisStyle := lipgloss.NewStyle().Foreground(theme.ColorMuted)
	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	width := len(months)*(revenueBarWidth+revenueBarGap) + 1
	chart := barchart.New(width, revenueChartHeight,
		barchart.WithStyles(axisStyle, labelStyle),
	)
	chart.SetBarWidth(revenueBarWidth)
	chart.SetBarGap(revenueBarGap)
	chart.SetMax(maxVal)

	for _, m := range months {
		chart.Push(barchart.BarData{
			Label: m.Label(),
			Values: []barchart.BarValue{
				{Name: "revenue", Value: float64(m.Amount), Style: theme.RevenueStyle},
			},
		})
	}

	chart.Draw()
	sb.WriteString(chart.View())
	return sb.String()
}

// RenderLateFees renders the late fee table under the chart
func RenderLateFees(fees []services.LateFee, total int64) string {
	if len(fees) == 0 {
		return theme.MutedStyle.Render("No late fees accrued.")
	}

	var sb strings.Builder
	sb.WriteString(theme.SubtitleStyle.Render(fmt.Sprintf("Late fees: %s", domain.FormatCents(total))))
	for _, f := range fees {
		sb.WriteString("\n")
		sb.WriteString(theme.OverdueStyle.Render(fmt.Sprintf("  %3dd", f.DaysOverdue)))
		sb.WriteString(theme.NormalStyle.Render(fmt.Sprintf("  %-10s due %s  fee %s",
			shortID(f.Rental.ID), f.Rental.DueDate.Local().Format(dateFormat), domain.FormatCents(f.Fee))))
	}
	return sb.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// AnalyticsView is the /analytics screen
type AnalyticsView struct {
	dailyLateFee int64
	err          error
	feeTotal     int64
	fees         []services.LateFee
	loaded       bool
	months       []services.MonthRevenue
	service      *services.AnalyticsService
}

// NewAnalyticsView creates the analytics screen
func NewAnalyticsView(service *services.AnalyticsService, dailyLateFee int64) *AnalyticsView {
	return &AnalyticsView{dailyLateFee: dailyLateFee, service: service}
}

// Load fetches the revenue series and the late fees concurrently
func (v *AnalyticsView) Load() tea.Cmd {
	service, dailyLateFee := v.service, v.dailyLateFee
	return func() tea.Msg {
		var msg analyticsLoadedMsg
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			var err error
			msg.months, err = service.RevenueByMonth(ctx, revenueMonths)
			return err
		})
		g.Go(func() error {
			var err error
			msg.fees, msg.feeTotal, err = service.LateFees(ctx, dailyLateFee)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func (v *AnalyticsView) apply(msg analyticsLoadedMsg) {
	v.err = msg.err
	v.feeTotal = msg.feeTotal
	v.fees = msg.fees
	v.loaded = true
	v.months = msg.months
}

func (v *AnalyticsView) View() string {
	header := theme.TitleStyle.Render("Analytics")
	switch {
	case v.err != nil:
		return header + "\n" + theme.ErrorStyle.Render(v.err.Error())
	case !v.loaded:
		return header + "\n" + theme.MutedStyle.Render("loading...")
	}
	return header + "\n" + RenderRevenueChart(v.months) + "\n\n" + RenderLateFees(v.fees, v.feeTotal)
}
