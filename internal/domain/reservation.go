package domain

import (
	"fmt"
	"time"
)

// Reservation holds an item for a customer over a date range
type Reservation struct {
	CustomerID string
	From       time.Time
	ID         string
	ItemID     string
	Operator   string
	To         time.Time
}

// Validate checks the reservation dates and references
func (r Reservation) Validate() error {
	if r.CustomerID == "" || r.ItemID == "" {
		return fmt.Errorf("%w: customer and item required", ErrValidation)
	}
	if r.To.Before(r.From) {
		return ErrInvalidDateRange
	}
	return nil
}

// Overlaps reports whether [from, to] shares at least one day with the reservation
func (r Reservation) Overlaps(from, to time.Time) bool {
	return !StartOfDay(from).After(StartOfDay(r.To)) && !StartOfDay(r.From).After(StartOfDay(to))
}
