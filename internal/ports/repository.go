package ports

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/internal/domain"
)

// CustomerRepository stores customers
type CustomerRepository interface {
	AddCustomer(ctx context.Context, customer domain.Customer) error
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// ItemRepository stores rentable items
type ItemRepository interface {
	AddItem(ctx context.Context, item domain.Item) error
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context, includeInactive bool) ([]domain.Item, error)
}

// RentalRepository stores rentals. AddRental fails with
// domain.ErrItemUnavailable when the item is already out.
type RentalRepository interface {
	AddRental(ctx context.Context, rental domain.Rental) error
	GetRental(ctx context.Context, id string) (*domain.Rental, error)
	ListRentals(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error)
	ReturnRental(ctx context.Context, id string, at time.Time) error
}

// ReservationRepository stores reservations. AddReservation fails with
// domain.ErrReservationClash when the range overlaps another one.
type ReservationRepository interface {
	AddReservation(ctx context.Context, reservation domain.Reservation) error
	ListReservations(ctx context.Context, itemID string) ([]domain.Reservation, error)
}

// Repository is the composite interface
type Repository interface {
	CustomerRepository
	ItemRepository
	RentalRepository
	ReservationRepository
	Close() error
}
