package storage

import (
	"context"
	"fmt"

	"github.com/rentdesk/rentdesk/internal/domain"
)

// AddCustomer implements CustomerRepository.AddCustomer
func (r *SQLiteRepository) AddCustomer(ctx context.Context, customer domain.Customer) error {
	model := domainToCustomerModel(customer)
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", customer.Email, domain.ErrCustomerExists)
	}
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// GetCustomer implements CustomerRepository.GetCustomer
func (r *SQLiteRepository) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	var model CustomerModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		return nil, notFound(err, "customer", id)
	}
	c := customerModelToDomain(model)
	return &c, nil
}

// ListCustomers implements CustomerRepository.ListCustomers
func (r *SQLiteRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var models []CustomerModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Customer, len(models))
	for i, m := range models {
		result[i] = customerModelToDomain(m)
	}
	return result, nil
}
