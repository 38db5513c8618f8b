package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/domain/identity"
	"github.com/samplestore/backend/internal/domain/shared"
)

// UserCreatedHandler provisions a Customer record whenever a user is
// created. Provisioning is idempotent, so replayed events are harmless.
type UserCreatedHandler struct {
	customerService *CustomerService
	logger          *zap.Logger
}

// NewUserCreatedHandler creates a new UserCreatedHandler
func NewUserCreatedHandler(customerService *CustomerService, logger *zap.Logger) *UserCreatedHandler {
	return &UserCreatedHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// Handle provisions the customer for the newly created user
func (h *UserCreatedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	created, ok := event.(*identity.UserCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %s", event.EventType())
	}

	customer, err := h.customerService.EnsureForUser(ctx, created.UserID)
	if err != nil {
		return fmt.Errorf("failed to provision customer for user %s: %w", created.UserID, err)
	}

	h.logger.Info("customer provisioned for new user",
		zap.String("user_id", created.UserID.String()),
		zap.String("customer_id", customer.ID.String()),
	)
	return nil
}

// EventTypes returns the event types this handler subscribes to
func (h *UserCreatedHandler) EventTypes() []string {
	return []string{identity.EventTypeUserCreated}
}

// Ensure UserCreatedHandler implements EventHandler
var _ shared.EventHandler = (*UserCreatedHandler)(nil)
