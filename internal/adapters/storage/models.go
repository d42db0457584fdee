package storage

import "time"

// CustomerModel is the GORM model for customers table
type CustomerModel struct {
	CreatedAt time.Time
	Email     *string `gorm:"uniqueIndex:idx_customer_email"`
	ID        string  `gorm:"primaryKey"`
	Name      string  `gorm:"not null"`
	Phone     string  `gorm:"not null;default:''"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CustomerModel) TableName() string { return "customers" }

// ItemModel is the GORM model for items table
type ItemModel struct {
	Active    bool   `gorm:"not null"`
	Category  string `gorm:"not null;default:'';index:idx_item_category"`
	CreatedAt time.Time
	DailyRate int64  `gorm:"not null;default:0;check:daily_rate >= 0"`
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ItemModel) TableName() string { return "items" }

// RentalModel is the GORM model for rentals table
type RentalModel struct {
	CreatedAt  time.Time
	CustomerID string     `gorm:"not null;index:idx_rental_customer"`
	DailyRate  int64      `gorm:"not null;default:0"`
	DueDate    time.Time  `gorm:"not null;index:idx_rental_due"`
	ID         string     `gorm:"primaryKey"`
	ItemID     string     `gorm:"not null;index:idx_rental_item"`
	Operator   string     `gorm:"not null;default:''"`
	ReturnedAt *time.Time `gorm:"default:null;index:idx_rental_returned"`
	StartDate  time.Time  `gorm:"not null;index:idx_rental_start"`
	UpdatedAt  time.Time

	Customer CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Item     ItemModel     `gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (RentalModel) TableName() string { return "rentals" }

// ReservationModel is the GORM model for reservations table.
// FromDate and ToDate are stored as UTC midnights.
type ReservationModel struct {
	CreatedAt  time.Time
	CustomerID string    `gorm:"not null;index:idx_reservation_customer"`
	FromDate   time.Time `gorm:"not null"`
	ID         string    `gorm:"primaryKey"`
	ItemID     string    `gorm:"not null;index:idx_reservation_item"`
	Operator   string    `gorm:"not null;default:''"`
	ToDate     time.Time `gorm:"not null"`
	UpdatedAt  time.Time

	Customer CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Item     ItemModel     `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ReservationModel) TableName() string { return "reservations" }
