package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentdesk/rentdesk/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "rentdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func seed(t *testing.T, repo *SQLiteRepository) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.AddCustomer(ctx, domain.Customer{ID: "c1", Name: "Ana", Email: "ana@example.com"}))
	require.NoError(t, repo.AddCustomer(ctx, domain.Customer{ID: "c2", Name: "Rui"}))
	require.NoError(t, repo.AddItem(ctx, domain.Item{ID: "i1", Name: "Drill", Category: "tools", DailyRate: 1500, Active: true}))
	require.NoError(t, repo.AddItem(ctx, domain.Item{ID: "i2", Name: "Kayak", Category: "outdoor", DailyRate: 4000, Active: true}))
	require.NoError(t, repo.AddItem(ctx, domain.Item{ID: "i3", Name: "Old saw", Category: "tools", DailyRate: 500, Active: false}))
}

func TestCustomers(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo)
	ctx := context.Background()

	err := repo.AddCustomer(ctx, domain.Customer{ID: "c3", Name: "Other Ana", Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrCustomerExists)

	// customers without email never collide
	require.NoError(t, repo.AddCustomer(ctx, domain.Customer{ID: "c4", Name: "Zé"}))

	customers, err := repo.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "Ana", customers[0].Name)

	c, err := repo.GetCustomer(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", c.Email)

	_, err = repo.GetCustomer(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItems(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo)
	ctx := context.Background()

	active, err := repo.ListItems(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := repo.ListItems(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	item, err := repo.GetItem(ctx, "i3")
	require.NoError(t, err)
	assert.False(t, item.Active)
}

func TestRentals_Availability(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo)
	ctx := context.Background()

	rental := domain.Rental{ID: "r1", CustomerID: "c1", ItemID: "i1", StartDate: day("2026-05-01"), DueDate: day("2026-05-03"), DailyRate: 1500}
	require.NoError(t, repo.AddRental(ctx, rental))

	err := repo.AddRental(ctx, domain.Rental{ID: "r2", CustomerID: "c2", ItemID: "i1", StartDate: day("2026-05-02"), DueDate: day("2026-05-04")})
	assert.ErrorIs(t, err, domain.ErrItemUnavailable)

	err = repo.AddRental(ctx, domain.Rental{ID: "r3", CustomerID: "c2", ItemID: "i3", StartDate: day("2026-05-02"), DueDate: day("2026-05-04")})
	assert.ErrorIs(t, err, domain.ErrItemUnavailable, "inactive item")

	err = repo.AddRental(ctx, domain.Rental{ID: "r4", CustomerID: "c2", ItemID: "nope", StartDate: day("2026-05-02"), DueDate: day("2026-05-04")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.ReturnRental(ctx, "r1", day("2026-05-02").Add(10*time.Hour)))
	assert.ErrorIs(t, repo.ReturnRental(ctx, "r1", day("2026-05-02")), domain.ErrRentalReturned)
	assert.ErrorIs(t, repo.ReturnRental(ctx, "missing", day("2026-05-02")), domain.ErrNotFound)

	require.NoError(t, repo.AddRental(ctx, domain.Rental{ID: "r5", CustomerID: "c2", ItemID: "i1", StartDate: day("2026-05-02"), DueDate: day("2026-05-04")}))

	got, err := repo.GetRental(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, got.IsReturned())
}

func TestRentals_ReservedByOtherCustomer(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo)
	ctx := context.Background()

	require.NoError(t, repo.AddReservation(ctx, domain.Reservation{ID: "s1", CustomerID: "c1", ItemID: "i2", From: day("2026-06-10"), To: day("2026-06-12")}))

	err := repo.AddRental(ctx, domain.Rental{ID: "r1", CustomerID: "c2", ItemID: "i2", StartDate: day("2026-06-09"), DueDate: day("2026-06-10")})
	assert.ErrorIs(t, err, domain.ErrReservationClash)

	assert.NoError(t, repo.AddRental(ctx, domain.Rental{ID: "r2", CustomerID: "c1", ItemID: "i2", StartDate: day("2026-06-10"), DueDate: day("2026-06-12")}))
}

func TestListRentals_Filter(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo)
	ctx := context.Background()

	require.NoError(t, repo.AddRental(ctx, domain.Rental{ID: "r1", CustomerID: "c1", ItemID: "i1", StartDate: day("2026-04-01"), DueDate: day("2026-04-05")}))
	require.NoError(t, repo.AddRental(ctx, domain.Rental{ID: "r2", CustomerID: "c2", ItemID: "i2", StartDate: day("2026-04-20"), DueDate: day("2026-04-30")}))
	require.NoError(t, repo.ReturnRental(ctx, "r1", day("2026-04-04")))
	require.NoError(t, repo.AddRental(ctx, domain.Rental{ID: "r3", CustomerID: "c1", ItemID: "i1", StartDate: day("2026-04-28"), DueDate: day("2026-05-10")}))

	now := day("2026-05-01").Add(9 * time.Hour)

	tests := []struct {
		name   string
		filter domain.RentalFilter
		want   []string
	}{
		{name: "all", filter: domain.RentalFilter{}, want: []string{"r1", "r2", "r3"}},
		{name: "active", filter: domain.RentalFilter{Status: domain.RentalActive}, want: []string{"r2", "r3"}},
		{name: "returned", filter: domain.RentalFilter{Status: domain.RentalReturned}, want: []string{"r1"}},
		{name: "overdue", filter: domain.RentalFilter{Status: domain.RentalOverdue, Now: now}, want: []string{"r2"}},
		{name: "not yet overdue on due day", filter: domain.RentalFilter{Status: domain.RentalOverdue, Now: day("2026-04-30").Add(23 * time.Hour)}, want: nil},
		{name: "customer", filter: domain.RentalFilter{CustomerID: "c1"}, want: []string{"r1", "r3"}},
		{name: "date range", filter: domain.RentalFilter{From: day("2026-04-15"), To: day("2026-04-25")}, want: []string{"r2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rentals, err := repo.ListRentals(ctx, tt.filter)
			require.NoError(t, err)
			var ids []string
			for _, r := range rentals {
				ids = append(ids, r.ID)
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}
}

func TestReservations_Overlap(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo)
	ctx := context.Background()

	require.NoError(t, repo.AddReservation(ctx, domain.Reservation{ID: "s1", CustomerID: "c1", ItemID: "i2", From: day("2026-06-10"), To: day("2026-06-12")}))

	tests := []struct {
		name     string
		from, to string
		itemID   string
		wantErr  error
	}{
		{name: "same last day", from: "2026-06-12", to: "2026-06-14", itemID: "i2", wantErr: domain.ErrReservationClash},
		{name: "contained", from: "2026-06-11", to: "2026-06-11", itemID: "i2", wantErr: domain.ErrReservationClash},
		{name: "adjacent", from: "2026-06-13", to: "2026-06-15", itemID: "i2"},
		{name: "other item", from: "2026-06-10", to: "2026-06-12", itemID: "i1"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.AddReservation(ctx, domain.Reservation{
				ID: "x" + string(rune('a'+i)), CustomerID: "c2", ItemID: tt.itemID, From: day(tt.from), To: day(tt.to),
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	all, err := repo.ListReservations(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	kayak, err := repo.ListReservations(ctx, "i2")
	require.NoError(t, err)
	assert.Len(t, kayak, 2)
	assert.Equal(t, day("2026-06-10"), kayak[0].From)
}
