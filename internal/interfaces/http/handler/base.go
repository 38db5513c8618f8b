package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/domain/billing"
	"github.com/samplestore/backend/internal/domain/shared"
	"github.com/samplestore/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common response helpers for HTTP handlers
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a new BaseHandler
func NewBaseHandler(logger *zap.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// Success sends a 200 response with data
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a 200 response with data and pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 response with data
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the status derived from the code
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	requestID := c.GetString("request_id")
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// BadRequest sends a 400 response for binding and validation failures
func (h *BaseHandler) BadRequest(c *gin.Context, err error) {
	h.Error(c, dto.ErrCodeValidation, err.Error())
}

// HandleError maps an error to the appropriate HTTP response.
// Declined gateway responses map to 402; domain errors carry their own
// code; anything else is a 500 with the detail kept out of the response.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if billing.IsBillingError(err) {
		var billingErr *billing.BillingError
		message := "The payment gateway declined the request"
		if errors.As(err, &billingErr) && billingErr.Message != "" {
			message = billingErr.Message
		}
		h.Error(c, dto.ErrCodePaymentDeclined, message)
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.NormalizeErrorCode(domainErr.Code), domainErr.Message)
		return
	}

	if errors.Is(err, shared.ErrNotFound) {
		h.Error(c, dto.ErrCodeNotFound, "Resource not found")
		return
	}

	h.logger.Error("unhandled error",
		zap.String("request_id", c.GetString("request_id")),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	h.Error(c, dto.ErrCodeInternal, "An internal error occurred")
}
