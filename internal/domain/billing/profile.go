package billing

import (
	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/shared"
)

// CustomerProfile mirrors a customer profile held by the payment gateway.
// The remote ProfileID is minted by the gateway before a local row may
// exist; local rows are a cache of remote state, never the source of it.
type CustomerProfile struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ProfileID string    `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for GORM
func (CustomerProfile) TableName() string {
	return "customer_profiles"
}

// NewCustomerProfile creates a local mirror of an already-registered
// remote profile
func NewCustomerProfile(userID uuid.UUID, profileID string) (*CustomerProfile, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if profileID == "" {
		return nil, shared.NewDomainError("INVALID_PROFILE_ID", "Remote profile ID cannot be empty")
	}

	return &CustomerProfile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		ProfileID:         profileID,
	}, nil
}
