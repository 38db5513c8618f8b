package store

import (
	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/shared"
)

// Event types for the store context
const (
	EventTypeCustomerCreated = "store.customer.created"
)

// CustomerCreatedEvent is published when a customer record is provisioned
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	UserID     uuid.UUID `json:"user_id"`
}

// NewCustomerCreatedEvent creates a new CustomerCreatedEvent
func NewCustomerCreatedEvent(customer *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreated, "Customer", customer.ID),
		CustomerID:      customer.ID,
		UserID:          customer.UserID,
	}
}
