package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentdesk/rentdesk/internal/domain"
)

// AddRental implements RentalRepository.AddRental. The item must be
// active, not already out, and not reserved by someone else over the
// rental period.
func (r *SQLiteRepository) AddRental(ctx context.Context, rental domain.Rental) error {
	model := domainToRentalModel(rental)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var item ItemModel
			if err := tx.Where("id = ?", rental.ItemID).First(&item).Error; err != nil {
				return notFound(err, "item", rental.ItemID)
			}
			if !item.Active {
				return fmt.Errorf("item %s is inactive: %w", item.Name, domain.ErrItemUnavailable)
			}

			var out int64
			if err := tx.Model(&RentalModel{}).
				Scopes(whereUnreturned).
				Where("item_id = ?", rental.ItemID).
				Count(&out).Error; err != nil {
				return err
			}
			if out > 0 {
				return fmt.Errorf("item %s is already rented: %w", item.Name, domain.ErrItemUnavailable)
			}

			var clashes int64
			if err := tx.Model(&ReservationModel{}).
				Scopes(overlapScope(rental.ItemID, rental.StartDate, rental.DueDate)).
				Where("customer_id <> ?", rental.CustomerID).
				Count(&clashes).Error; err != nil {
				return err
			}
			if clashes > 0 {
				return fmt.Errorf("item %s: %w", item.Name, domain.ErrReservationClash)
			}

			if err := tx.Omit(clause.Associations).Create(&model).Error; err != nil {
				return err
			}
			return nil
		})
	}, 3)

	switch {
	case err == nil:
		return nil
	case isForeignKeyViolation(err):
		return fmt.Errorf("customer %s: %w", rental.CustomerID, domain.ErrNotFound)
	case errors.Is(err, domain.ErrItemUnavailable), errors.Is(err, domain.ErrReservationClash), errors.Is(err, domain.ErrNotFound):
		return err
	default:
		return fmt.Errorf("failed to create rental: %w", err)
	}
}

// GetRental implements RentalRepository.GetRental
func (r *SQLiteRepository) GetRental(ctx context.Context, id string) (*domain.Rental, error) {
	var model RentalModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		return nil, notFound(err, "rental", id)
	}
	rental := rentalModelToDomain(model)
	return &rental, nil
}

// ListRentals implements RentalRepository.ListRentals
func (r *SQLiteRepository) ListRentals(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error) {
	var models []RentalModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Scopes(rentalScopes(filter)...).
			Order("due_date ASC, id ASC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Rental, 0, len(models))
	for _, m := range models {
		rental := rentalModelToDomain(m)
		if matchesFilter(rental, filter) {
			result = append(result, rental)
		}
	}
	return result, nil
}

// ReturnRental implements RentalRepository.ReturnRental
func (r *SQLiteRepository) ReturnRental(ctx context.Context, id string, at time.Time) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var model RentalModel
			if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
				return notFound(err, "rental", id)
			}
			if model.ReturnedAt != nil {
				return fmt.Errorf("rental %s: %w", id, domain.ErrRentalReturned)
			}
			return tx.Model(&RentalModel{}).
				Where("id = ?", id).
				Update("returned_at", at.UTC()).Error
		})
	}, 3)
}
