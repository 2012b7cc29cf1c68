package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	StatusPaid    InvoiceStatus = "paid"
	StatusPending InvoiceStatus = "pending"
)

// Valid reports whether s is one of the two known statuses.
func (s InvoiceStatus) Valid() bool {
	return s == StatusPaid || s == StatusPending
}

// Invoice stores its amount in minor currency units (cents).
type Invoice struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;index;not null" json:"customer_id"`
	Customer   Customer       `json:"-"`
	Amount     int64          `gorm:"not null" json:"amount"`
	Status     InvoiceStatus  `gorm:"index" json:"status"`
	Date       datatypes.Date `gorm:"index" json:"date"`
}
