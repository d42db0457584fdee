package domain

import (
	"fmt"
	"strings"
)

// Item is something that can be rented
type Item struct {
	Active    bool
	Category  string
	DailyRate int64 // cents
	ID        string
	Name      string
}

// Validate checks the fields required to store an item
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: item name required", ErrValidation)
	}
	if i.DailyRate < 0 {
		return fmt.Errorf("%w: daily rate must not be negative", ErrValidation)
	}
	return nil
}

// FormatCents renders an amount in cents as a decimal string
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
