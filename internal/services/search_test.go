package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rentdesk/rentdesk/internal/domain"
	portsmocks "github.com/rentdesk/rentdesk/internal/ports/mocks"
)

func newSearchFixture(t *testing.T) *SearchService {
	repo := portsmocks.NewMockRepository(t)
	repo.EXPECT().ListCustomers(mock.Anything).Return([]domain.Customer{
		{ID: "c1", Name: "Ana Silva", Email: "ana@example.com"},
		{ID: "c2", Name: "Rui Costa"},
	}, nil)
	repo.EXPECT().ListItems(mock.Anything, false).Return([]domain.Item{
		{ID: "i1", Name: "Drill", Category: "tools"},
		{ID: "i2", Name: "Kayak", Category: "outdoor"},
	}, nil)
	return NewSearchService(repo, repo)
}

func TestSearchService_Search(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		limit   int
		wantIDs []string
	}{
		{name: "empty query lists all", query: "", wantIDs: []string{"c1", "c2", "i1", "i2"}},
		{name: "limit", query: "", limit: 3, wantIDs: []string{"c1", "c2", "i1"}},
		{name: "item", query: "kay", wantIDs: []string{"i2"}},
		{name: "customer by surname", query: "costa", wantIDs: []string{"c2"}},
		{name: "no match", query: "zzz", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newSearchFixture(t)
			hits, err := svc.Search(context.Background(), tt.query, tt.limit)
			require.NoError(t, err)

			var ids []string
			for _, h := range hits {
				ids = append(ids, h.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSearchService_HitCarriesRoute(t *testing.T) {
	svc := newSearchFixture(t)

	hits, err := svc.Search(context.Background(), "kay", 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, HitItem, hits[0].Kind)
	assert.Equal(t, domain.RouteItems, hits[0].Route)
	assert.Equal(t, "Kayak (outdoor)", hits[0].Label)
	assert.Equal(t, []int{0, 1, 2}, hits[0].MatchedIndexes)
}

func TestSearchService_MatchedIndexesAreRunes(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	repo.EXPECT().ListCustomers(mock.Anything).Return([]domain.Customer{
		{ID: "c1", Name: "José Lopes"},
	}, nil)
	repo.EXPECT().ListItems(mock.Anything, false).Return(nil, nil)
	svc := NewSearchService(repo, repo)

	hits, err := svc.Search(context.Background(), "jl", 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, []int{0, 5}, hits[0].MatchedIndexes)
	assert.Equal(t, "L", string([]rune(hits[0].Label)[5]))
}

func TestSearchService_LoadError(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	boom := errors.New("locked")
	repo.EXPECT().ListCustomers(mock.Anything).Return(nil, boom)
	repo.EXPECT().ListItems(mock.Anything, false).Return(nil, nil).Maybe()

	_, err := NewSearchService(repo, repo).Search(context.Background(), "a", 0)
	assert.ErrorIs(t, err, boom)
}
