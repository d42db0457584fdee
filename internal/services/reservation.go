package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/ports"
)

// ReservationService holds items for future dates
type ReservationService struct {
	clock        ports.Clock
	customers    ports.CustomerRepository
	items        ports.ItemRepository
	reservations ports.ReservationRepository
}

// NewReservationService creates a new ReservationService
func NewReservationService(
	reservations ports.ReservationRepository,
	customers ports.CustomerRepository,
	items ports.ItemRepository,
	clock ports.Clock,
) *ReservationService {
	return &ReservationService{
		clock:        clock,
		customers:    customers,
		items:        items,
		reservations: reservations,
	}
}

// Create reserves an item over whole days. Ranges starting in the past
// are rejected.
func (s *ReservationService) Create(ctx context.Context, params CreateReservationParams) (*domain.Reservation, error) {
	reservation := domain.Reservation{
		CustomerID: params.CustomerID,
		From:       calendarDay(params.From),
		ID:         uuid.NewString(),
		ItemID:     params.ItemID,
		Operator:   params.Operator,
		To:         calendarDay(params.To),
	}
	if err := reservation.Validate(); err != nil {
		return nil, err
	}
	if reservation.From.Before(calendarDay(s.clock.Now())) {
		return nil, domain.ErrInvalidDateRange
	}

	if _, err := s.customers.GetCustomer(ctx, params.CustomerID); err != nil {
		return nil, err
	}
	if _, err := s.items.GetItem(ctx, params.ItemID); err != nil {
		return nil, err
	}

	if err := s.reservations.AddReservation(ctx, reservation); err != nil {
		logging.Logger.Warn("Reservation rejected", "error", err, "item", params.ItemID)
		return nil, err
	}

	logging.Logger.Info("Reservation created",
		"id", reservation.ID,
		"item", reservation.ItemID,
		"from", reservation.From.Format("2006-01-02"),
		"to", reservation.To.Format("2006-01-02"))
	return &reservation, nil
}

// List returns reservations, all of them when itemID is empty
func (s *ReservationService) List(ctx context.Context, itemID string) ([]domain.Reservation, error) {
	return s.reservations.ListReservations(ctx, itemID)
}

// calendarDay keeps the date of t at UTC midnight
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
