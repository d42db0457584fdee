package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rentdesk/rentdesk/internal/domain"
	portsmocks "github.com/rentdesk/rentdesk/internal/ports/mocks"
)

func TestRentalService_Create(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	svc := NewRentalService(repo, repo, repo, fixedClock("2026-05-01 09:00"))
	ctx := context.Background()

	repo.EXPECT().GetCustomer(mock.Anything, "c1").Return(&domain.Customer{ID: "c1", Name: "Ana"}, nil)
	repo.EXPECT().GetItem(mock.Anything, "i1").Return(&domain.Item{ID: "i1", Name: "Drill", DailyRate: 1500, Active: true}, nil)

	var stored domain.Rental
	repo.EXPECT().AddRental(mock.Anything, mock.AnythingOfType("domain.Rental")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(domain.Rental) }).
		Return(nil).Once()

	rental, err := svc.Create(ctx, CreateRentalParams{CustomerID: "c1", ItemID: "i1", Days: 3, Operator: "rui"})
	require.NoError(t, err)
	assert.Equal(t, stored, *rental)
	assert.Equal(t, at("2026-05-03 00:00"), rental.DueDate)
	assert.Equal(t, int64(1500), rental.DailyRate)
	assert.Equal(t, "rui", rental.Operator)

	one, err := svc.Create(ctx, CreateRentalParams{CustomerID: "c1", ItemID: "i1", Days: 0})
	assert.Nil(t, one)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRentalService_CreateUnavailable(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	svc := NewRentalService(repo, repo, repo, fixedClock("2026-05-01 09:00"))
	ctx := context.Background()

	repo.EXPECT().GetCustomer(mock.Anything, "c1").Return(&domain.Customer{ID: "c1"}, nil)
	repo.EXPECT().GetItem(mock.Anything, "old").Return(&domain.Item{ID: "old", Active: false}, nil)
	repo.EXPECT().GetItem(mock.Anything, "out").Return(&domain.Item{ID: "out", Active: true}, nil)
	repo.EXPECT().AddRental(mock.Anything, mock.Anything).Return(domain.ErrItemUnavailable)

	_, err := svc.Create(ctx, CreateRentalParams{CustomerID: "c1", ItemID: "old", Days: 1})
	assert.ErrorIs(t, err, domain.ErrItemUnavailable)

	_, err = svc.Create(ctx, CreateRentalParams{CustomerID: "c1", ItemID: "out", Days: 1})
	assert.ErrorIs(t, err, domain.ErrItemUnavailable)
}

func TestRentalService_Return(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	now := at("2026-05-05 10:00")
	svc := NewRentalService(repo, repo, repo, fixedClock("2026-05-05 10:00"))

	repo.EXPECT().ReturnRental(mock.Anything, "r1", now).Return(nil).Once()
	repo.EXPECT().GetRental(mock.Anything, "r1").Return(&domain.Rental{
		ID:         "r1",
		DailyRate:  1000,
		StartDate:  at("2026-05-01 09:00"),
		DueDate:    at("2026-05-02 00:00"),
		ReturnedAt: &now,
	}, nil).Once()

	result, err := svc.Return(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), result.Amount)
	assert.Equal(t, 3, result.DaysOverdue)
}

func TestRentalService_Overdue(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	svc := NewRentalService(repo, repo, repo, fixedClock("2026-05-05 10:00"))

	repo.EXPECT().ListRentals(mock.Anything, domain.RentalFilter{
		Status: domain.RentalOverdue,
		Now:    at("2026-05-05 10:00"),
	}).Return([]domain.Rental{{ID: "r1"}}, nil).Once()

	rentals, err := svc.Overdue(context.Background())
	require.NoError(t, err)
	assert.Len(t, rentals, 1)
}

func TestReservationService_Create(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	svc := NewReservationService(repo, repo, repo, fixedClock("2026-05-05 10:00"))
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateReservationParams{CustomerID: "c1", ItemID: "i1", From: at("2026-05-04 00:00"), To: at("2026-05-06 00:00")})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange, "starts in the past")

	_, err = svc.Create(ctx, CreateReservationParams{CustomerID: "c1", ItemID: "i1", From: at("2026-05-08 00:00"), To: at("2026-05-06 00:00")})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	repo.EXPECT().GetCustomer(mock.Anything, "c1").Return(&domain.Customer{ID: "c1"}, nil)
	repo.EXPECT().GetItem(mock.Anything, "i1").Return(&domain.Item{ID: "i1"}, nil)
	repo.EXPECT().AddReservation(mock.Anything, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.From.Equal(at("2026-05-05 00:00")) && r.To.Equal(at("2026-05-07 00:00"))
	})).Return(nil).Once()
	repo.EXPECT().AddReservation(mock.Anything, mock.Anything).Return(domain.ErrReservationClash).Once()

	reservation, err := svc.Create(ctx, CreateReservationParams{CustomerID: "c1", ItemID: "i1", From: at("2026-05-05 15:00"), To: at("2026-05-07 08:00")})
	require.NoError(t, err)
	assert.NotEmpty(t, reservation.ID)

	_, err = svc.Create(ctx, CreateReservationParams{CustomerID: "c1", ItemID: "i1", From: at("2026-05-06 00:00"), To: at("2026-05-06 00:00")})
	assert.ErrorIs(t, err, domain.ErrReservationClash)
}
