package domain

import "errors"

var (
	ErrCustomerExists   = errors.New("customer already exists")
	ErrInvalidDateRange = errors.New("end date is before start date")
	ErrItemUnavailable  = errors.New("item is not available")
	ErrNotFound         = errors.New("record not found")
	ErrRentalReturned   = errors.New("rental already returned")
	ErrReservationClash = errors.New("reservation overlaps an existing one")
	ErrValidation       = errors.New("validation failed")
)
