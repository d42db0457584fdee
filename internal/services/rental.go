package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/ports"
)

// RentalService checks items out and back in
type RentalService struct {
	clock     ports.Clock
	customers ports.CustomerRepository
	items     ports.ItemRepository
	rentals   ports.RentalRepository
}

// NewRentalService creates a new RentalService
func NewRentalService(
	rentals ports.RentalRepository,
	customers ports.CustomerRepository,
	items ports.ItemRepository,
	clock ports.Clock,
) *RentalService {
	return &RentalService{
		clock:     clock,
		customers: customers,
		items:     items,
		rentals:   rentals,
	}
}

// Create checks an item out to a customer starting today. The item's
// current daily rate is frozen on the rental.
func (s *RentalService) Create(ctx context.Context, params CreateRentalParams) (*domain.Rental, error) {
	if params.Days < 1 {
		return nil, fmt.Errorf("%w: rental must last at least one day", domain.ErrValidation)
	}

	customer, err := s.customers.GetCustomer(ctx, params.CustomerID)
	if err != nil {
		return nil, err
	}
	item, err := s.items.GetItem(ctx, params.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Active {
		return nil, fmt.Errorf("item %s is inactive: %w", item.Name, domain.ErrItemUnavailable)
	}

	start := s.clock.Now().UTC()
	rental := domain.Rental{
		CustomerID: customer.ID,
		DailyRate:  item.DailyRate,
		DueDate:    domain.StartOfDay(start).AddDate(0, 0, params.Days-1),
		ID:         uuid.NewString(),
		ItemID:     item.ID,
		Operator:   params.Operator,
		StartDate:  start,
	}
	if err := rental.Validate(); err != nil {
		return nil, err
	}

	if err := s.rentals.AddRental(ctx, rental); err != nil {
		logging.Logger.Warn("Rental rejected", "error", err, "item", item.ID, "customer", customer.ID)
		return nil, err
	}

	logging.Logger.Info("Rental created",
		"id", rental.ID,
		"item", item.Name,
		"customer", customer.Name,
		"due", rental.DueDate.Format("2006-01-02"),
		"operator", rental.Operator)
	return &rental, nil
}

// Return checks a rental back in now and settles the amount owed
func (s *RentalService) Return(ctx context.Context, id string) (*ReturnResult, error) {
	now := s.clock.Now().UTC()
	if err := s.rentals.ReturnRental(ctx, id, now); err != nil {
		return nil, err
	}
	rental, err := s.rentals.GetRental(ctx, id)
	if err != nil {
		return nil, err
	}

	// overdue days are counted as of the return, before ReturnedAt was set
	open := *rental
	open.ReturnedAt = nil
	result := &ReturnResult{
		Amount:      rental.Amount(now),
		DaysOverdue: open.DaysOverdue(now),
		Rental:      rental,
	}

	logging.Logger.Info("Rental returned", "id", id, "amount", result.Amount, "days_overdue", result.DaysOverdue)
	return result, nil
}

// List returns rentals matching filter. The filter's reference time
// defaults to now.
func (s *RentalService) List(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error) {
	if filter.Now.IsZero() {
		filter.Now = s.clock.Now()
	}
	return s.rentals.ListRentals(ctx, filter)
}

// Overdue returns the rentals still out after their due day
func (s *RentalService) Overdue(ctx context.Context) ([]domain.Rental, error) {
	return s.List(ctx, domain.RentalFilter{Status: domain.RentalOverdue})
}
