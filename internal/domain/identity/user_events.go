package identity

import (
	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/shared"
)

// Event types for the identity context
const (
	EventTypeUserCreated = "identity.user.created"
)

// UserCreatedEvent is published when a new user is created.
// The store context subscribes to it to provision a Customer record.
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, "User", user.ID),
		UserID:          user.ID,
		Email:           user.Email,
	}
}
