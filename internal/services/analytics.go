package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/ports"
)

// Summary is the dashboard headline
type Summary struct {
	ActiveRentals  int
	Customers      int
	Items          int
	Outstanding    int64 // cents accrued on rentals still out
	OverdueRentals int
	Reservations   int
}

// MonthRevenue is the revenue of rentals started in one month
type MonthRevenue struct {
	Amount  int64 // cents
	Month   time.Time
	Rentals int
}

// Label renders the month as "Jan 06"
func (m MonthRevenue) Label() string {
	return m.Month.Format("Jan 06")
}

// LateFee is the penalty accrued by one overdue rental
type LateFee struct {
	DaysOverdue int
	Fee         int64 // cents
	Rental      domain.Rental
}

// AnalyticsService computes dashboard figures
type AnalyticsService struct {
	clock        ports.Clock
	customers    ports.CustomerRepository
	items        ports.ItemRepository
	rentals      ports.RentalRepository
	reservations ports.ReservationRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(repo ports.Repository, clock ports.Clock) *AnalyticsService {
	return &AnalyticsService{
		clock:        clock,
		customers:    repo,
		items:        repo,
		rentals:      repo,
		reservations: repo,
	}
}

// Summary loads the headline counts concurrently
func (s *AnalyticsService) Summary(ctx context.Context) (*Summary, error) {
	now := s.clock.Now()
	var summary Summary
	var active []domain.Rental

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		customers, err := s.customers.ListCustomers(ctx)
		if err != nil {
			return fmt.Errorf("failed to count customers: %w", err)
		}
		summary.Customers = len(customers)
		return nil
	})

	g.Go(func() error {
		items, err := s.items.ListItems(ctx, false)
		if err != nil {
			return fmt.Errorf("failed to count items: %w", err)
		}
		summary.Items = len(items)
		return nil
	})

	g.Go(func() error {
		rentals, err := s.rentals.ListRentals(ctx, domain.RentalFilter{Status: domain.RentalActive, Now: now})
		if err != nil {
			return fmt.Errorf("failed to load active rentals: %w", err)
		}
		active = rentals
		return nil
	})

	g.Go(func() error {
		reservations, err := s.reservations.ListReservations(ctx, "")
		if err != nil {
			return fmt.Errorf("failed to count reservations: %w", err)
		}
		summary.Reservations = len(reservations)
		return nil
	})

	if err := g.Wait(); err != nil {
		logging.Logger.Error("Failed to load summary", "error", err)
		return nil, err
	}

	summary.ActiveRentals = len(active)
	for _, r := range active {
		summary.Outstanding += r.Amount(now)
		if r.IsOverdue(now) {
			summary.OverdueRentals++
		}
	}

	return &summary, nil
}

// RevenueByMonth returns the last n months, oldest first, including
// months without rentals. Rentals still out count up to now.
func (s *AnalyticsService) RevenueByMonth(ctx context.Context, n int) ([]MonthRevenue, error) {
	if n < 1 {
		n = 1
	}
	now := s.clock.Now().UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	first := current.AddDate(0, -(n - 1), 0)

	rentals, err := s.rentals.ListRentals(ctx, domain.RentalFilter{From: first, Now: now})
	if err != nil {
		return nil, err
	}

	months := make([]MonthRevenue, n)
	for i := range months {
		months[i].Month = first.AddDate(0, i, 0)
	}
	for _, r := range rentals {
		start := r.StartDate.UTC()
		i := (start.Year()-first.Year())*12 + int(start.Month()) - int(first.Month())
		if i < 0 || i >= n {
			continue
		}
		months[i].Amount += r.Amount(now)
		months[i].Rentals++
	}

	return months, nil
}

// LateFees computes the penalty on every overdue rental
func (s *AnalyticsService) LateFees(ctx context.Context, dailyLateFee int64) ([]LateFee, int64, error) {
	now := s.clock.Now()
	overdue, err := s.rentals.ListRentals(ctx, domain.RentalFilter{Status: domain.RentalOverdue, Now: now})
	if err != nil {
		return nil, 0, err
	}

	var total int64
	fees := make([]LateFee, 0, len(overdue))
	for _, r := range overdue {
		days := r.DaysOverdue(now)
		fee := int64(days) * dailyLateFee
		total += fee
		fees = append(fees, LateFee{DaysOverdue: days, Fee: fee, Rental: r})
	}

	return fees, total, nil
}
