package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/samplestore/backend/internal/domain/shared"
)

// Event types for the billing context
const (
	EventTypePaymentSucceeded = "billing.payment.succeeded"
	EventTypePaymentFlagged   = "billing.payment.flagged"
)

// PaymentNotificationEvent is published when the gateway posts a payment
// result callback. Subscribers are extension points; none ship with
// defined behavior beyond logging.
type PaymentNotificationEvent struct {
	shared.BaseDomainEvent
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	ResponseCode  string          `json:"response_code"`
}

// NewPaymentSucceededEvent creates an event for an approved payment
func NewPaymentSucceededEvent(transactionID string, amount decimal.Decimal, responseCode string) *PaymentNotificationEvent {
	return &PaymentNotificationEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentSucceeded, "PaymentNotification", uuid.New()),
		TransactionID:   transactionID,
		Amount:          amount,
		ResponseCode:    responseCode,
	}
}

// NewPaymentFlaggedEvent creates an event for a declined or held payment
func NewPaymentFlaggedEvent(transactionID string, amount decimal.Decimal, responseCode string) *PaymentNotificationEvent {
	return &PaymentNotificationEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentFlagged, "PaymentNotification", uuid.New()),
		TransactionID:   transactionID,
		Amount:          amount,
		ResponseCode:    responseCode,
	}
}
