package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/domain/billing"
	"github.com/samplestore/backend/internal/domain/shared"
	"github.com/samplestore/backend/internal/interfaces/http/dto"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

func TestBaseHandler_HandleError(t *testing.T) {
	h := NewBaseHandler(zap.NewNop())

	t.Run("declined gateway response maps to payment required", func(t *testing.T) {
		c, w := newTestContext(t)

		h.HandleError(c, billing.NewBillingError("E00027", "The transaction was unsuccessful."))

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrCodePaymentDeclined, resp.Error.Code)
		assert.Equal(t, "The transaction was unsuccessful.", resp.Error.Message)
	})

	t.Run("wrapped gateway sentinel still maps to payment required", func(t *testing.T) {
		c, w := newTestContext(t)

		h.HandleError(c, errors.Join(errors.New("update card"), billing.ErrGatewayDeclined))

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("domain error carries its own code", func(t *testing.T) {
		c, w := newTestContext(t)

		h.HandleError(c, shared.NewDomainError("ALREADY_EXISTS", "User already has a customer profile"))

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
	})

	t.Run("not found sentinel maps to 404", func(t *testing.T) {
		c, w := newTestContext(t)

		h.HandleError(c, shared.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("unknown error hides detail behind 500", func(t *testing.T) {
		c, w := newTestContext(t)

		h.HandleError(c, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
		assert.NotContains(t, resp.Error.Message, "pq:")
	})

	t.Run("error response carries the request id", func(t *testing.T) {
		c, w := newTestContext(t)
		c.Set("request_id", "req-123")

		h.HandleError(c, shared.ErrNotFound)

		resp := decodeError(t, w)
		assert.Equal(t, "req-123", resp.Error.RequestID)
	})
}
