package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/shared"
)

// CustomerRepository defines the persistence contract for customers
type CustomerRepository interface {
	shared.Repository[Customer]
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Customer, error)
}

// AddressRepository defines the persistence contract for addresses
type AddressRepository interface {
	shared.Repository[Address]
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Address, error)
}

// ItemRepository defines the persistence contract for items
type ItemRepository interface {
	shared.Repository[Item]
}

// InvoiceRepository defines the persistence contract for invoices
type InvoiceRepository interface {
	shared.Repository[Invoice]
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Invoice, error)
}
