// Package mocks holds testify mocks for the ports interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rentdesk/rentdesk/internal/domain"
)

// MockRepository is a mock of ports.Repository
type MockRepository struct {
	mock.Mock
}

// MockRepository_Expecter records expectations with typed helpers
type MockRepository_Expecter struct {
	mock *mock.Mock
}

// NewMockRepository creates a mock and asserts its expectations at cleanup
func NewMockRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepository {
	m := &MockRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRepository) EXPECT() *MockRepository_Expecter {
	return &MockRepository_Expecter{mock: &m.Mock}
}

func (m *MockRepository) AddCustomer(ctx context.Context, customer domain.Customer) error {
	ret := m.Called(ctx, customer)
	return ret.Error(0)
}

func (e *MockRepository_Expecter) AddCustomer(ctx, customer any) *mock.Call {
	return e.mock.On("AddCustomer", ctx, customer)
}

func (m *MockRepository) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	ret := m.Called(ctx, id)
	c, _ := ret.Get(0).(*domain.Customer)
	return c, ret.Error(1)
}

func (e *MockRepository_Expecter) GetCustomer(ctx, id any) *mock.Call {
	return e.mock.On("GetCustomer", ctx, id)
}

func (m *MockRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	ret := m.Called(ctx)
	c, _ := ret.Get(0).([]domain.Customer)
	return c, ret.Error(1)
}

func (e *MockRepository_Expecter) ListCustomers(ctx any) *mock.Call {
	return e.mock.On("ListCustomers", ctx)
}

func (m *MockRepository) AddItem(ctx context.Context, item domain.Item) error {
	ret := m.Called(ctx, item)
	return ret.Error(0)
}

func (e *MockRepository_Expecter) AddItem(ctx, item any) *mock.Call {
	return e.mock.On("AddItem", ctx, item)
}

func (m *MockRepository) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	ret := m.Called(ctx, id)
	i, _ := ret.Get(0).(*domain.Item)
	return i, ret.Error(1)
}

func (e *MockRepository_Expecter) GetItem(ctx, id any) *mock.Call {
	return e.mock.On("GetItem", ctx, id)
}

func (m *MockRepository) ListItems(ctx context.Context, includeInactive bool) ([]domain.Item, error) {
	ret := m.Called(ctx, includeInactive)
	i, _ := ret.Get(0).([]domain.Item)
	return i, ret.Error(1)
}

func (e *MockRepository_Expecter) ListItems(ctx, includeInactive any) *mock.Call {
	return e.mock.On("ListItems", ctx, includeInactive)
}

func (m *MockRepository) AddRental(ctx context.Context, rental domain.Rental) error {
	ret := m.Called(ctx, rental)
	return ret.Error(0)
}

func (e *MockRepository_Expecter) AddRental(ctx, rental any) *mock.Call {
	return e.mock.On("AddRental", ctx, rental)
}

func (m *MockRepository) GetRental(ctx context.Context, id string) (*domain.Rental, error) {
	ret := m.Called(ctx, id)
	r, _ := ret.Get(0).(*domain.Rental)
	return r, ret.Error(1)
}

func (e *MockRepository_Expecter) GetRental(ctx, id any) *mock.Call {
	return e.mock.On("GetRental", ctx, id)
}

func (m *MockRepository) ListRentals(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error) {
	ret := m.Called(ctx, filter)
	r, _ := ret.Get(0).([]domain.Rental)
	return r, ret.Error(1)
}

func (e *MockRepository_Expecter) ListRentals(ctx, filter any) *mock.Call {
	return e.mock.On("ListRentals", ctx, filter)
}

func (m *MockRepository) ReturnRental(ctx context.Context, id string, at time.Time) error {
	ret := m.Called(ctx, id, at)
	return ret.Error(0)
}

func (e *MockRepository_Expecter) ReturnRental(ctx, id, at any) *mock.Call {
	return e.mock.On("ReturnRental", ctx, id, at)
}

func (m *MockRepository) AddReservation(ctx context.Context, reservation domain.Reservation) error {
	ret := m.Called(ctx, reservation)
	return ret.Error(0)
}

func (e *MockRepository_Expecter) AddReservation(ctx, reservation any) *mock.Call {
	return e.mock.On("AddReservation", ctx, reservation)
}

func (m *MockRepository) ListReservations(ctx context.Context, itemID string) ([]domain.Reservation, error) {
	ret := m.Called(ctx, itemID)
	r, _ := ret.Get(0).([]domain.Reservation)
	return r, ret.Error(1)
}

func (e *MockRepository_Expecter) ListReservations(ctx, itemID any) *mock.Call {
	return e.mock.On("ListReservations", ctx, itemID)
}

func (m *MockRepository) Close() error {
	ret := m.Called()
	return ret.Error(0)
}

func (e *MockRepository_Expecter) Close() *mock.Call {
	return e.mock.On("Close")
}
