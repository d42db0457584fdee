package storage

import (
	"time"

	"github.com/rentdesk/rentdesk/internal/domain"
)

func customerModelToDomain(m CustomerModel) domain.Customer {
	email := ""
	if m.Email != nil {
		email = *m.Email
	}
	return domain.Customer{
		CreatedAt: m.CreatedAt,
		Email:     email,
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
	}
}

func domainToCustomerModel(c domain.Customer) CustomerModel {
	// NULL emails never collide on the unique index
	var email *string
	if c.Email != "" {
		email = &c.Email
	}
	return CustomerModel{
		CreatedAt: c.CreatedAt,
		Email:     email,
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
	}
}

func itemModelToDomain(m ItemModel) domain.Item {
	return domain.Item{
		Active:    m.Active,
		Category:  m.Category,
		DailyRate: m.DailyRate,
		ID:        m.ID,
		Name:      m.Name,
	}
}

func domainToItemModel(i domain.Item) ItemModel {
	return ItemModel{
		Active:    i.Active,
		Category:  i.Category,
		DailyRate: i.DailyRate,
		ID:        i.ID,
		Name:      i.Name,
	}
}

func rentalModelToDomain(m RentalModel) domain.Rental {
	var returnedAt *time.Time
	if m.ReturnedAt != nil {
		t := m.ReturnedAt.UTC()
		returnedAt = &t
	}
	return domain.Rental{
		CustomerID: m.CustomerID,
		DailyRate:  m.DailyRate,
		DueDate:    m.DueDate.UTC(),
		ID:         m.ID,
		ItemID:     m.ItemID,
		Operator:   m.Operator,
		ReturnedAt: returnedAt,
		StartDate:  m.StartDate.UTC(),
	}
}

func domainToRentalModel(r domain.Rental) RentalModel {
	var returnedAt *time.Time
	if r.ReturnedAt != nil {
		t := r.ReturnedAt.UTC()
		returnedAt = &t
	}
	return RentalModel{
		CustomerID: r.CustomerID,
		DailyRate:  r.DailyRate,
		DueDate:    r.DueDate.UTC(),
		ID:         r.ID,
		ItemID:     r.ItemID,
		Operator:   r.Operator,
		ReturnedAt: returnedAt,
		StartDate:  r.StartDate.UTC(),
	}
}

func reservationModelToDomain(m ReservationModel) domain.Reservation {
	return domain.Reservation{
		CustomerID: m.CustomerID,
		From:       m.FromDate.UTC(),
		ID:         m.ID,
		ItemID:     m.ItemID,
		Operator:   m.Operator,
		To:         m.ToDate.UTC(),
	}
}

func domainToReservationModel(r domain.Reservation) ReservationModel {
	return ReservationModel{
		CustomerID: r.CustomerID,
		FromDate:   utcDay(r.From),
		ID:         r.ID,
		ItemID:     r.ItemID,
		Operator:   r.Operator,
		ToDate:     utcDay(r.To),
	}
}

// utcDay keeps the calendar date of t and pins it to UTC midnight
func utcDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
