package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestRental_IsOverdue(t *testing.T) {
	returned := day(2026, 3, 4, 10)
	tests := []struct {
		name     string
		rental   Rental
		now      time.Time
		expected bool
		days     int
	}{
		{"due later today", Rental{DueDate: day(2026, 3, 5, 9)}, day(2026, 3, 5, 20), false, 0},
		{"one day late", Rental{DueDate: day(2026, 3, 5, 9)}, day(2026, 3, 6, 1), true, 1},
		{"three days late", Rental{DueDate: day(2026, 3, 5, 9)}, day(2026, 3, 8, 12), true, 3},
		{"returned never overdue", Rental{DueDate: day(2026, 3, 1, 9), ReturnedAt: &returned}, day(2026, 3, 8, 12), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rental.IsOverdue(tt.now))
			assert.Equal(t, tt.days, tt.rental.DaysOverdue(tt.now))
		})
	}
}

func TestRental_Amount(t *testing.T) {
	r := Rental{StartDate: day(2026, 3, 1, 15), DueDate: day(2026, 3, 3, 9), DailyRate: 1250}

	assert.Equal(t, int64(1250), r.Amount(day(2026, 3, 1, 18)), "same day bills one day")
	assert.Equal(t, int64(3750), r.Amount(day(2026, 3, 3, 8)))

	returned := day(2026, 3, 2, 10)
	r.ReturnedAt = &returned
	assert.Equal(t, int64(2500), r.Amount(day(2026, 3, 9, 8)), "billing stops at return")
}

func TestReservation_Overlaps(t *testing.T) {
	r := Reservation{From: day(2026, 4, 10, 0), To: day(2026, 4, 12, 0)}

	assert.True(t, r.Overlaps(day(2026, 4, 12, 9), day(2026, 4, 14, 0)))
	assert.True(t, r.Overlaps(day(2026, 4, 1, 0), day(2026, 4, 30, 0)))
	assert.False(t, r.Overlaps(day(2026, 4, 13, 0), day(2026, 4, 14, 0)))
	assert.False(t, r.Overlaps(day(2026, 4, 1, 0), day(2026, 4, 9, 23)))
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Customer{}.Validate(), ErrValidation)
	assert.ErrorIs(t, Customer{Name: "Ada", Email: "nope"}.Validate(), ErrValidation)
	assert.NoError(t, Customer{Name: "Ada", Email: "ada@example.com"}.Validate())

	assert.ErrorIs(t, Item{Name: "Tent", DailyRate: -1}.Validate(), ErrValidation)
	assert.ErrorIs(t, Rental{CustomerID: "c", ItemID: "i", StartDate: day(2026, 1, 2, 0), DueDate: day(2026, 1, 1, 0)}.Validate(), ErrInvalidDateRange)
	assert.NoError(t, Rental{CustomerID: "c", ItemID: "i", StartDate: day(2026, 1, 2, 15), DueDate: day(2026, 1, 2, 0)}.Validate())
}

func TestIsKnownRoute(t *testing.T) {
	assert.True(t, IsKnownRoute(RouteRentalsOverdue))
	assert.False(t, IsKnownRoute("/nowhere"))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "12.05", FormatCents(1205))
	assert.Equal(t, "-0.50", FormatCents(-50))
}
