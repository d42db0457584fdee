package storage

import (
	"context"
	"fmt"

	"github.com/rentdesk/rentdesk/internal/domain"
)

// AddItem implements ItemRepository.AddItem
func (r *SQLiteRepository) AddItem(ctx context.Context, item domain.Item) error {
	model := domainToItemModel(item)
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to create item: %w", err)
		}
		return nil
	}, 3)
}

// GetItem implements ItemRepository.GetItem
func (r *SQLiteRepository) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	var model ItemModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		return nil, notFound(err, "item", id)
	}
	item := itemModelToDomain(model)
	return &item, nil
}

// ListItems implements ItemRepository.ListItems
func (r *SQLiteRepository) ListItems(ctx context.Context, includeInactive bool) ([]domain.Item, error) {
	var models []ItemModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("category ASC, name ASC")
		if !includeInactive {
			query = query.Where("active = ?", true)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Item, len(models))
	for i, m := range models {
		result[i] = itemModelToDomain(m)
	}
	return result, nil
}
