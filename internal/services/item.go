package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/ports"
)

// ItemService manages the rentable catalogue
type ItemService struct {
	repo ports.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(repo ports.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create validates and stores a new, active item
func (s *ItemService) Create(ctx context.Context, params CreateItemParams) (*domain.Item, error) {
	item := domain.Item{
		Active:    true,
		Category:  strings.ToLower(strings.TrimSpace(params.Category)),
		DailyRate: params.DailyRate,
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(params.Name),
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.AddItem(ctx, item); err != nil {
		logging.Logger.Error("Failed to create item", "error", err, "name", item.Name)
		return nil, err
	}

	logging.Logger.Info("Item created", "id", item.ID, "name", item.Name)
	return &item, nil
}

// Get returns one item
func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.GetItem(ctx, id)
}

// List returns the catalogue; inactive items only when asked for
func (s *ItemService) List(ctx context.Context, includeInactive bool) ([]domain.Item, error) {
	return s.repo.ListItems(ctx, includeInactive)
}
