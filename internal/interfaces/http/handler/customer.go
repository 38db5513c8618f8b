package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/application/store"
)

// CustomerHandler handles store customer endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *store.CustomerService
	addressService  *store.AddressService
	invoiceService  *store.InvoiceService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(
	customerService *store.CustomerService,
	addressService *store.AddressService,
	invoiceService *store.InvoiceService,
	logger *zap.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		BaseHandler:     NewBaseHandler(logger),
		customerService: customerService,
		addressService:  addressService,
		invoiceService:  invoiceService,
	}
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(r *gin.RouterGroup) {
	customers := r.Group("/customers")
	{
		customers.GET("/:id", h.Get)
		customers.PUT("/:id", h.Update)
		customers.POST("/:id/addresses", h.CreateAddress)
		customers.GET("/:id/addresses", h.ListAddresses)
		customers.GET("/:id/invoices", h.ListInvoices)
	}
	r.GET("/users/:id/customer", h.GetByUser)
}

// Get handles GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.customerService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByUser handles GET /users/:id/customer
func (h *CustomerHandler) GetByUser(c *gin.Context) {
	userID, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.customerService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req store.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateAddress handles POST /customers/:id/addresses
func (h *CustomerHandler) CreateAddress(c *gin.Context) {
	customerID, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req store.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.addressService.Create(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListAddresses handles GET /customers/:id/addresses
func (h *CustomerHandler) ListAddresses(c *gin.Context) {
	customerID, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.addressService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListInvoices handles GET /customers/:id/invoices
func (h *CustomerHandler) ListInvoices(c *gin.Context) {
	customerID, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.invoiceService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
