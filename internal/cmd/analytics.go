package cmd

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/services"
	"github.com/rentdesk/rentdesk/internal/ui"
)

// AnalyticsCmd prints revenue by month and accrued late fees
type AnalyticsCmd struct {
	Months int `help:"Number of months to chart" default:"6"`
}

// Run executes the analytics command
func (a *AnalyticsCmd) Run(cli *CLI) error {
	analytics := cli.Container.AnalyticsService
	lateFee := cli.loadedSettings().LateFee()

	var (
		summary  *services.Summary
		months   []services.MonthRevenue
		fees     []services.LateFee
		feeTotal int64
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		summary, err = analytics.Summary(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		months, err = analytics.RevenueByMonth(ctx, a.Months)
		return err
	})
	g.Go(func() error {
		var err error
		fees, feeTotal, err = analytics.LateFees(ctx, lateFee)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to compute analytics: %w", err)
	}

	out := cli.stdout()
	fmt.Fprintf(out, "Customers %d  Items %d  Active rentals %d  Overdue %d  Reservations %d  Outstanding %s\n\n",
		summary.Customers,
		summary.Items,
		summary.ActiveRentals,
		summary.OverdueRentals,
		summary.Reservations,
		domain.FormatCents(summary.Outstanding))
	fmt.Fprintln(out, ui.RenderRevenueChart(months))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.RenderLateFees(fees, feeTotal))
	return nil
}
