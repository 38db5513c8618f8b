package store

import (
	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/shared"
)

// Invoice links a customer to a purchased item
type Invoice struct {
	shared.BaseAggregateRoot
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates a new invoice for a customer and item
func NewInvoice(customerID, itemID uuid.UUID) (*Invoice, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		ItemID:            itemID,
	}, nil
}
