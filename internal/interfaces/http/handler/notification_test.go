package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appbilling "github.com/samplestore/backend/internal/application/billing"
	"github.com/samplestore/backend/internal/domain/billing"
	"github.com/samplestore/backend/internal/domain/shared"
	"github.com/samplestore/backend/internal/infrastructure/event"
)

type recordedEvents struct {
	types []string
}

func (r *recordedEvents) Handle(ctx context.Context, e shared.DomainEvent) error {
	r.types = append(r.types, e.EventType())
	return nil
}

func (r *recordedEvents) EventTypes() []string { return nil }

func TestNotificationHandler_Notify(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newServer := func() (*gin.Engine, *recordedEvents) {
		bus := event.NewInMemoryEventBus(zap.NewNop())
		recorded := &recordedEvents{}
		bus.Subscribe(recorded)

		handler := NewNotificationHandler(appbilling.NewPaymentNotificationService(bus), zap.NewNop())
		engine := gin.New()
		handler.RegisterRoutes(engine.Group("/api/v1"))
		return engine, recorded
	}

	postForm := func(engine *gin.Engine, form url.Values) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/notifications",
			strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		engine.ServeHTTP(w, req)
		return w
	}

	t.Run("approved callback publishes succeeded event", func(t *testing.T) {
		engine, recorded := newServer()

		w := postForm(engine, url.Values{
			"x_trans_id":      {"2147483647"},
			"x_amount":        {"19.99"},
			"x_response_code": {"1"},
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{billing.EventTypePaymentSucceeded}, recorded.types)
	})

	t.Run("declined callback publishes flagged event", func(t *testing.T) {
		engine, recorded := newServer()

		w := postForm(engine, url.Values{
			"x_trans_id":      {"2147483648"},
			"x_amount":        {"5.00"},
			"x_response_code": {"2"},
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{billing.EventTypePaymentFlagged}, recorded.types)
	})
}
