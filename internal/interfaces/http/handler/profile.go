package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/application/billing"
)

// ProfileHandler handles gateway customer profile and payment profile
// endpoints
type ProfileHandler struct {
	BaseHandler
	profileService *billing.ProfileService
	paymentService *billing.PaymentProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(
	profileService *billing.ProfileService,
	paymentService *billing.PaymentProfileService,
	logger *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    NewBaseHandler(logger),
		profileService: profileService,
		paymentService: paymentService,
	}
}

// RegisterRoutes registers billing profile routes
func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profiles := r.Group("/billing/profiles")
	{
		profiles.POST("", h.Create)
		profiles.GET("/:id", h.Get)
		profiles.POST("/:id/sync", h.Sync)
		profiles.POST("/:id/payment-profiles", h.CreatePaymentProfile)
	}
	payments := r.Group("/billing/payment-profiles")
	{
		payments.GET("/:id", h.GetPaymentProfile)
		payments.PUT("/:id", h.UpdatePaymentProfile)
		payments.DELETE("/:id", h.DeletePaymentProfile)
	}
	r.GET("/users/:id/billing-profile", h.GetByUser)
}

// Create handles POST /billing/profiles
func (h *ProfileHandler) Create(c *gin.Context) {
	var req billing.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.profileService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /billing/profiles/:id
func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByUser handles GET /users/:id/billing-profile
func (h *ProfileHandler) GetByUser(c *gin.Context) {
	userID, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.profileService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Sync handles POST /billing/profiles/:id/sync
func (h *ProfileHandler) Sync(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.profileService.Sync(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreatePaymentProfile handles POST /billing/profiles/:id/payment-profiles
func (h *ProfileHandler) CreatePaymentProfile(c *gin.Context) {
	profileID, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req billing.CreatePaymentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.paymentService.Create(c.Request.Context(), profileID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetPaymentProfile handles GET /billing/payment-profiles/:id
func (h *ProfileHandler) GetPaymentProfile(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.paymentService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdatePaymentProfile handles PUT /billing/payment-profiles/:id
func (h *ProfileHandler) UpdatePaymentProfile(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req billing.UpdatePaymentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.paymentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeletePaymentProfile handles DELETE /billing/payment-profiles/:id
func (h *ProfileHandler) DeletePaymentProfile(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
