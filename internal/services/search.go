package services

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/errgroup"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/ports"
)

// Search hit kinds
const (
	HitCustomer = "customer"
	HitItem     = "item"
)

// SearchHit is one quick-find result
type SearchHit struct {
	ID             string
	Kind           string
	Label          string
	MatchedIndexes []int // rune positions in Label
	Route          string
}

// searchSource adapts hits to fuzzy.Source
type searchSource []SearchHit

func (s searchSource) String(i int) string { return s[i].Label }
func (s searchSource) Len() int            { return len(s) }

// SearchService answers quick-find queries over customers and items
type SearchService struct {
	customers ports.CustomerRepository
	items     ports.ItemRepository
}

// NewSearchService creates a new SearchService
func NewSearchService(customers ports.CustomerRepository, items ports.ItemRepository) *SearchService {
	return &SearchService{customers: customers, items: items}
}

// Search ranks customers and items against query. An empty query lists
// everything in catalogue order. limit <= 0 means no limit.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	source, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	var hits []SearchHit
	if query == "" {
		hits = source
	} else {
		for _, m := range fuzzy.FindFrom(query, source) {
			hit := source[m.Index]
			hit.MatchedIndexes = runeIndexes(hit.Label, m.MatchedIndexes)
			hits = append(hits, hit)
		}
	}

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// runeIndexes converts the byte offsets fuzzy reports into rune offsets
func runeIndexes(label string, byteOffsets []int) []int {
	if len(byteOffsets) == 0 {
		return nil
	}
	runeAt := make(map[int]int, len(label))
	n := 0
	for b := range label {
		runeAt[b] = n
		n++
	}
	out := make([]int, 0, len(byteOffsets))
	for _, b := range byteOffsets {
		if r, ok := runeAt[b]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (s *SearchService) load(ctx context.Context) (searchSource, error) {
	var customers []domain.Customer
	var items []domain.Item

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = s.customers.ListCustomers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.items.ListItems(ctx, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load search index: %w", err)
	}

	source := make(searchSource, 0, len(customers)+len(items))
	for _, c := range customers {
		label := c.Name
		if c.Email != "" {
			label = fmt.Sprintf("%s <%s>", c.Name, c.Email)
		}
		source = append(source, SearchHit{ID: c.ID, Kind: HitCustomer, Label: label, Route: domain.RouteCustomers})
	}
	for _, i := range items {
		label := i.Name
		if i.Category != "" {
			label = fmt.Sprintf("%s (%s)", i.Name, i.Category)
		}
		source = append(source, SearchHit{ID: i.ID, Kind: HitItem, Label: label, Route: domain.RouteItems})
	}
	return source, nil
}
