package services

import (
	"time"

	"github.com/rentdesk/rentdesk/internal/domain"
)

// CreateCustomerParams contains parameters for registering a customer
type CreateCustomerParams struct {
	Email string
	Name  string
	Phone string
}

// CreateItemParams contains parameters for adding an item to the catalogue
type CreateItemParams struct {
	Category  string
	DailyRate int64 // cents
	Name      string
}

// CreateRentalParams contains parameters for checking an item out.
// Days counts the rental days including the start day.
type CreateRentalParams struct {
	CustomerID string
	Days       int
	ItemID     string
	Operator   string
}

// CreateReservationParams contains parameters for holding an item
type CreateReservationParams struct {
	CustomerID string
	From       time.Time
	ItemID     string
	Operator   string
	To         time.Time
}

// ReturnResult is what the desk needs to settle a returned rental
type ReturnResult struct {
	Amount      int64 // cents
	DaysOverdue int
	Rental      *domain.Rental
}
