package domain

import (
	"fmt"
	"time"
)

// RentalStatus filters rentals by lifecycle
type RentalStatus string

const (
	RentalAny      RentalStatus = ""
	RentalActive   RentalStatus = "active"
	RentalOverdue  RentalStatus = "overdue"
	RentalReturned RentalStatus = "returned"
)

// Rental is an item handed out to a customer
type Rental struct {
	CustomerID string
	DailyRate  int64 // cents, copied from the item at checkout
	DueDate    time.Time
	ID         string
	ItemID     string
	Operator   string
	ReturnedAt *time.Time
	StartDate  time.Time
}

// RentalFilter narrows rental listings
type RentalFilter struct {
	CustomerID string
	From       time.Time // StartDate >= From when set
	Now        time.Time // reference time for RentalOverdue
	Status     RentalStatus
	To         time.Time // StartDate < To when set
}

// Validate checks the rental dates and references
func (r Rental) Validate() error {
	if r.CustomerID == "" || r.ItemID == "" {
		return fmt.Errorf("%w: customer and item required", ErrValidation)
	}
	// due on the start day is a one-day rental
	if StartOfDay(r.DueDate).Before(StartOfDay(r.StartDate)) {
		return ErrInvalidDateRange
	}
	return nil
}

// IsReturned reports whether the item came back
func (r Rental) IsReturned() bool {
	return r.ReturnedAt != nil
}

// IsOverdue reports whether the rental is still out after its due day
func (r Rental) IsOverdue(now time.Time) bool {
	if r.IsReturned() {
		return false
	}
	return now.After(EndOfDay(r.DueDate))
}

// DaysOverdue returns the number of started days past the due day
func (r Rental) DaysOverdue(now time.Time) int {
	if !r.IsOverdue(now) {
		return 0
	}
	return daysBetween(StartOfDay(r.DueDate), StartOfDay(now))
}

// DaysRented counts billable days, inclusive of the start day
func (r Rental) DaysRented(now time.Time) int {
	end := now
	if r.ReturnedAt != nil {
		end = *r.ReturnedAt
	}
	days := daysBetween(StartOfDay(r.StartDate), StartOfDay(end)) + 1
	if days < 1 {
		return 1
	}
	return days
}

// Amount is the rental charge in cents up to now (or the return time)
func (r Rental) Amount(now time.Time) int64 {
	return int64(r.DaysRented(now)) * r.DailyRate
}

// StartOfDay truncates t to midnight in its location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func daysBetween(from, to time.Time) int {
	// Date arithmetic through AddDate keeps DST days at one day each
	days := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
