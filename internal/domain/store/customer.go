package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/shared"
)

// Customer represents a store customer. Exactly one Customer exists per
// user and it is provisioned automatically when the user is created.
type Customer struct {
	shared.BaseAggregateRoot
	UserID                uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ShippingSameAsBilling bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer owned by the given user
func NewCustomer(userID uuid.UUID) (*Customer, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}

	customer := &Customer{
		BaseAggregateRoot:     shared.NewBaseAggregateRoot(),
		UserID:                userID,
		ShippingSameAsBilling: true,
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// SetShippingSameAsBilling toggles whether the shipping address mirrors
// the billing address
func (c *Customer) SetShippingSameAsBilling(same bool) {
	c.ShippingSameAsBilling = same
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
