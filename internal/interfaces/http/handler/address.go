package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/application/store"
)

// AddressHandler handles standalone address endpoints. Creation and
// listing live under the owning customer in CustomerHandler.
type AddressHandler struct {
	BaseHandler
	addressService *store.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService *store.AddressService, logger *zap.Logger) *AddressHandler {
	return &AddressHandler{
		BaseHandler:    NewBaseHandler(logger),
		addressService: addressService,
	}
}

// RegisterRoutes registers address routes
func (h *AddressHandler) RegisterRoutes(r *gin.RouterGroup) {
	addresses := r.Group("/addresses")
	{
		addresses.GET("/:id", h.Get)
		addresses.PUT("/:id", h.Update)
		addresses.DELETE("/:id", h.Delete)
	}
}

// Get handles GET /addresses/:id
func (h *AddressHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.addressService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /addresses/:id
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req store.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.addressService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /addresses/:id
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	if err := h.addressService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
