package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/ports"
)

// CustomerService registers and looks up customers
type CustomerService struct {
	clock ports.Clock
	repo  ports.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(repo ports.CustomerRepository, clock ports.Clock) *CustomerService {
	return &CustomerService{clock: clock, repo: repo}
}

// Create validates and stores a new customer
func (s *CustomerService) Create(ctx context.Context, params CreateCustomerParams) (*domain.Customer, error) {
	customer := domain.Customer{
		CreatedAt: s.clock.Now().UTC(),
		Email:     strings.ToLower(strings.TrimSpace(params.Email)),
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(params.Name),
		Phone:     strings.TrimSpace(params.Phone),
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.AddCustomer(ctx, customer); err != nil {
		logging.Logger.Error("Failed to create customer", "error", err, "name", customer.Name)
		return nil, err
	}

	logging.Logger.Info("Customer created", "id", customer.ID, "name", customer.Name)
	return &customer, nil
}

// Get returns one customer
func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

// List returns every customer ordered by name
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.ListCustomers(ctx)
}
