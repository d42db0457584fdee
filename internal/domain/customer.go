package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Customer is a person who rents or reserves items
type Customer struct {
	CreatedAt time.Time
	Email     string
	ID        string
	Name      string
	Phone     string
}

// Validate checks the fields required to store a customer
func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: customer name required", ErrValidation)
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return fmt.Errorf("%w: invalid email %q", ErrValidation, c.Email)
		}
	}
	return nil
}
