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

func byStatus(status domain.RentalStatus) any {
	return mock.MatchedBy(func(f domain.RentalFilter) bool { return f.Status == status })
}

func TestAnalyticsService_Summary(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	svc := NewAnalyticsService(repo, fixedClock("2026-05-05 10:00"))

	repo.EXPECT().ListCustomers(mock.Anything).Return([]domain.Customer{{ID: "c1"}, {ID: "c2"}}, nil)
	repo.EXPECT().ListItems(mock.Anything, false).Return([]domain.Item{{ID: "i1"}}, nil)
	repo.EXPECT().ListReservations(mock.Anything, "").Return([]domain.Reservation{{ID: "s1"}}, nil)
	repo.EXPECT().ListRentals(mock.Anything, byStatus(domain.RentalActive)).Return([]domain.Rental{
		{ID: "r1", DailyRate: 1000, StartDate: at("2026-05-01 09:00"), DueDate: at("2026-05-02 00:00")},
		{ID: "r2", DailyRate: 200, StartDate: at("2026-05-05 09:00"), DueDate: at("2026-05-09 00:00")},
	}, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Summary{
		ActiveRentals:  2,
		Customers:      2,
		Items:          1,
		Outstanding:    5*1000 + 200,
		OverdueRentals: 1,
		Reservations:   1,
	}, summary)
}

func TestAnalyticsService_SummaryError(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	svc := NewAnalyticsService(repo, fixedClock("2026-05-05 10:00"))
	boom := errors.New("disk on fire")

	repo.EXPECT().ListCustomers(mock.Anything).Return(nil, boom).Maybe()
	repo.EXPECT().ListItems(mock.Anything, false).Return(nil, nil).Maybe()
	repo.EXPECT().ListReservations(mock.Anything, "").Return(nil, nil).Maybe()
	repo.EXPECT().ListRentals(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	_, err := svc.Summary(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestAnalyticsService_RevenueByMonth(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	svc := NewAnalyticsService(repo, fixedClock("2026-05-15 10:00"))
	returned := at("2026-03-12 17:00")

	repo.EXPECT().ListRentals(mock.Anything, mock.MatchedBy(func(f domain.RentalFilter) bool {
		return f.From.Equal(at("2026-03-01 00:00"))
	})).Return([]domain.Rental{
		{ID: "r1", DailyRate: 1000, StartDate: at("2026-03-10 09:00"), DueDate: at("2026-03-12 00:00"), ReturnedAt: &returned},
		{ID: "r2", DailyRate: 500, StartDate: at("2026-05-01 09:00"), DueDate: at("2026-05-30 00:00")},
	}, nil)

	months, err := svc.RevenueByMonth(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, months, 3)

	assert.Equal(t, "Mar 26", months[0].Label())
	assert.Equal(t, int64(3000), months[0].Amount)
	assert.Equal(t, 1, months[0].Rentals)
	assert.Zero(t, months[1].Amount)
	assert.Equal(t, int64(15*500), months[2].Amount)
}

func TestAnalyticsService_LateFees(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	svc := NewAnalyticsService(repo, fixedClock("2026-05-15 10:00"))

	repo.EXPECT().ListRentals(mock.Anything, byStatus(domain.RentalOverdue)).Return([]domain.Rental{
		{ID: "r1", StartDate: at("2026-05-01 09:00"), DueDate: at("2026-05-10 00:00")},
		{ID: "r2", StartDate: at("2026-05-01 09:00"), DueDate: at("2026-05-14 00:00")},
	}, nil)

	fees, total, err := svc.LateFees(context.Background(), 500)
	require.NoError(t, err)
	require.Len(t, fees, 2)
	assert.Equal(t, 5, fees[0].DaysOverdue)
	assert.Equal(t, int64(2500), fees[0].Fee)
	assert.Equal(t, int64(500), fees[1].Fee)
	assert.Equal(t, int64(3000), total)
}
