package billing

import (
	"context"

	"github.com/google/uuid"
)

// PaymentData carries the raw payment instrument for a gateway request.
// It is never persisted: ExpirationDate and CardCode exist only in flight,
// and CardNumber is masked before any local write.
type PaymentData struct {
	CardNumber     string
	ExpirationDate string
	CardCode       string
}

// BillingData carries the billing identity attached to a payment instrument
type BillingData struct {
	FirstName string
	LastName  string
	Company   string
	Address   string
	City      string
	State     string
	Zip       string
	Country   string
	Phone     string
	Fax       string
}

// RemoteCreditCard is the card portion of a remote payment profile payload.
// The gateway returns the card number already masked.
type RemoteCreditCard struct {
	CardNumber string
}

// RemotePaymentProfile is the gateway's view of one stored payment
// instrument. Nil sections were absent from the remote payload.
type RemotePaymentProfile struct {
	PaymentProfileID string
	Billing          *BillingData
	CreditCard       *RemoteCreditCard
}

// Gateway is the port to the payment processor's customer information
// management API. The remote side is the source of truth for profile
// identifiers; local records only mirror it.
type Gateway interface {
	// AddProfile registers a customer profile, optionally with an initial
	// payment sub-profile, and returns the remote identifiers.
	AddProfile(ctx context.Context, userID uuid.UUID, payment PaymentData, billingData BillingData) (profileID string, paymentProfileIDs []string, err error)

	// GetProfile fetches the remote profile and its payment sub-profiles.
	GetProfile(ctx context.Context, profileID string) ([]RemotePaymentProfile, error)

	// CreatePaymentProfile creates a payment sub-profile under an existing
	// remote profile.
	CreatePaymentProfile(ctx context.Context, profileID string, payment PaymentData, billingData BillingData) (paymentProfileID string, err error)

	// UpdatePaymentProfile replaces the payment and billing data of a
	// remote payment sub-profile.
	UpdatePaymentProfile(ctx context.Context, profileID, paymentProfileID string, payment PaymentData, billingData BillingData) error

	// DeletePaymentProfile removes a remote payment sub-profile.
	DeletePaymentProfile(ctx context.Context, profileID, paymentProfileID string) error
}
