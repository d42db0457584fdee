package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentdesk/rentdesk/internal/domain"
)

// AddReservation implements ReservationRepository.AddReservation
func (r *SQLiteRepository) AddReservation(ctx context.Context, reservation domain.Reservation) error {
	model := domainToReservationModel(reservation)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing []ReservationModel
			if err := tx.Scopes(overlapScope(reservation.ItemID, reservation.From, reservation.To)).
				Find(&existing).Error; err != nil {
				return err
			}
			for _, other := range existing {
				if reservationModelToDomain(other).Overlaps(reservation.From, reservation.To) {
					return fmt.Errorf("%w: %s to %s",
						domain.ErrReservationClash,
						other.FromDate.Format("2006-01-02"),
						other.ToDate.Format("2006-01-02"))
				}
			}
			return tx.Omit(clause.Associations).Create(&model).Error
		})
	}, 3)

	switch {
	case err == nil:
		return nil
	case isForeignKeyViolation(err):
		return fmt.Errorf("customer or item of reservation: %w", domain.ErrNotFound)
	case errors.Is(err, domain.ErrReservationClash):
		return err
	default:
		return fmt.Errorf("failed to create reservation: %w", err)
	}
}

// ListReservations implements ReservationRepository.ListReservations.
// An empty itemID lists all reservations.
func (r *SQLiteRepository) ListReservations(ctx context.Context, itemID string) ([]domain.Reservation, error) {
	var models []ReservationModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("from_date ASC, id ASC")
		if itemID != "" {
			query = query.Where("item_id = ?", itemID)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Reservation, len(models))
	for i, m := range models {
		result[i] = reservationModelToDomain(m)
	}
	return result, nil
}
