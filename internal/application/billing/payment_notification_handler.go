package billing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/domain/billing"
	"github.com/samplestore/backend/internal/domain/shared"
)

// PaymentNotificationService turns gateway payment callbacks into domain
// events on the bus
type PaymentNotificationService struct {
	eventBus shared.EventBus
}

// NewPaymentNotificationService creates a new PaymentNotificationService
func NewPaymentNotificationService(eventBus shared.EventBus) *PaymentNotificationService {
	return &PaymentNotificationService{eventBus: eventBus}
}

// Notify publishes the matching event for a payment callback. Response
// code "1" is an approved transaction; everything else is flagged.
func (s *PaymentNotificationService) Notify(ctx context.Context, req PaymentNotificationRequest) error {
	var event shared.DomainEvent
	if req.ResponseCode == "1" {
		event = billing.NewPaymentSucceededEvent(req.TransactionID, req.Amount, req.ResponseCode)
	} else {
		event = billing.NewPaymentFlaggedEvent(req.TransactionID, req.Amount, req.ResponseCode)
	}
	return s.eventBus.Publish(ctx, event)
}

// PaymentNotificationHandler logs payment result events. It is the
// default subscriber; applications hang their own handlers off the same
// event types.
type PaymentNotificationHandler struct {
	logger *zap.Logger
}

// NewPaymentNotificationHandler creates a new PaymentNotificationHandler
func NewPaymentNotificationHandler(logger *zap.Logger) *PaymentNotificationHandler {
	return &PaymentNotificationHandler{logger: logger}
}

// Handle logs the payment result
func (h *PaymentNotificationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	notification, ok := event.(*billing.PaymentNotificationEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %s", event.EventType())
	}

	fields := []zap.Field{
		zap.String("transaction_id", notification.TransactionID),
		zap.String("amount", notification.Amount.String()),
		zap.String("response_code", notification.ResponseCode),
	}

	switch event.EventType() {
	case billing.EventTypePaymentSucceeded:
		h.logger.Info("payment succeeded", fields...)
	default:
		h.logger.Warn("payment flagged", fields...)
	}
	return nil
}

// EventTypes returns the event types this handler subscribes to
func (h *PaymentNotificationHandler) EventTypes() []string {
	return []string{billing.EventTypePaymentSucceeded, billing.EventTypePaymentFlagged}
}

// Ensure PaymentNotificationHandler implements EventHandler
var _ shared.EventHandler = (*PaymentNotificationHandler)(nil)
