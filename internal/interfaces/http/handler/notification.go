package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/application/billing"
)

// NotificationHandler receives payment result callbacks from the gateway.
// The gateway posts form-encoded fields, not JSON.
type NotificationHandler struct {
	BaseHandler
	notificationService *billing.PaymentNotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *billing.PaymentNotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         NewBaseHandler(logger),
		notificationService: notificationService,
	}
}

// RegisterRoutes registers notification routes
func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/billing/notifications", h.Notify)
}

// Notify handles POST /billing/notifications
func (h *NotificationHandler) Notify(c *gin.Context) {
	var req billing.PaymentNotificationRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	if err := h.notificationService.Notify(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"received": true})
}
