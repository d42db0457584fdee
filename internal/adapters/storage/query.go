package storage

import (
	"time"

	"gorm.io/gorm"

	"github.com/rentdesk/rentdesk/internal/domain"
)

// rentalScopes compiles a RentalFilter into GORM where clauses.
// Overdue is narrowed in SQL to unreturned rentals due before now; the
// calendar-day rule is applied to the rows afterwards.
func rentalScopes(filter domain.RentalFilter) []func(*gorm.DB) *gorm.DB {
	var scopes []func(*gorm.DB) *gorm.DB

	switch filter.Status {
	case domain.RentalActive:
		scopes = append(scopes, whereUnreturned)
	case domain.RentalReturned:
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("returned_at IS NOT NULL")
		})
	case domain.RentalOverdue:
		now := filter.Now.UTC()
		scopes = append(scopes, whereUnreturned, func(db *gorm.DB) *gorm.DB {
			return db.Where("due_date < ?", now)
		})
	}

	if filter.CustomerID != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("customer_id = ?", filter.CustomerID)
		})
	}
	if !filter.From.IsZero() {
		from := filter.From.UTC()
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("start_date >= ?", from)
		})
	}
	if !filter.To.IsZero() {
		to := filter.To.UTC()
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("start_date < ?", to)
		})
	}

	return scopes
}

func whereUnreturned(db *gorm.DB) *gorm.DB {
	return db.Where("returned_at IS NULL")
}

// matchesFilter applies the parts of a filter that SQL cannot express exactly
func matchesFilter(r domain.Rental, filter domain.RentalFilter) bool {
	if filter.Status == domain.RentalOverdue {
		return r.IsOverdue(filter.Now)
	}
	return true
}

// overlapScope selects reservations of itemID sharing a day with [from, to]
func overlapScope(itemID string, from, to time.Time) func(*gorm.DB) *gorm.DB {
	from, to = utcDay(from), utcDay(to)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("item_id = ? AND from_date <= ? AND to_date >= ?", itemID, to, from)
	}
}
