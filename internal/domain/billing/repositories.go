package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/shared"
)

// CustomerProfileRepository defines the persistence contract for
// customer profiles
type CustomerProfileRepository interface {
	shared.Repository[CustomerProfile]
	FindByUserID(ctx context.Context, userID uuid.UUID) (*CustomerProfile, error)
}

// PaymentProfileRepository defines the persistence contract for
// customer payment profiles
type PaymentProfileRepository interface {
	shared.Repository[CustomerPaymentProfile]
	FindByProfile(ctx context.Context, customerProfileID uuid.UUID) ([]CustomerPaymentProfile, error)
	FindByProfileAndRemoteID(ctx context.Context, customerProfileID uuid.UUID, paymentProfileID string) (*CustomerPaymentProfile, error)
}
