package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "orderlifecycle/internal/adapters/in/http"
	"orderlifecycle/internal/core/application/usecases/commands"
	"orderlifecycle/internal/core/application/usecases/queries"
	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/routing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, d routing.Destination, msg lifecycle.Message) error {
	args := m.Called(ctx, d, msg)
	return args.Error(0)
}

type failingUoWFactory struct{}

func (failingUoWFactory) Create() commands.RedeliveryUoW {
	return failingUoW{}
}

type failingUoW struct{ commands.RedeliveryUoW }

func (failingUoW) Begin(context.Context) error {
	return errors.New("store unavailable")
}

func newTestServer(publisher *MockEventPublisher) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpadapter.NewServer(
		commands.NewPublishLifecycleEventCommandHandler(publisher, failingUoWFactory{}, logger),
		queries.NewListStatusesQueryHandler(),
		queries.NewResolveRouteQueryHandler(),
		queries.NewListParkedEventsQueryHandler(nil),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func do(e *echo.Echo, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.ErrorResponse {
	t.Helper()
	var resp httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestServer_Health(t *testing.T) {
	rec := do(newTestServer(new(MockEventPublisher)), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_ListStatuses(t *testing.T) {
	rec := do(newTestServer(new(MockEventPublisher)), http.MethodGet, "/api/v1/statuses", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var statuses []queries.ListStatusesQueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statuses))
	require.Len(t, statuses, 6)
	assert.Equal(t, "pending", statuses[0].Status)
	assert.Equal(t, []string{"accepted", "cancelled"}, statuses[0].Next)
}

func TestServer_CheckTransition(t *testing.T) {
	e := newTestServer(new(MockEventPublisher))

	t.Run("should answer no content for an allowed transition", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/statuses/transitions", `{"current":"received","next":"accepted"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should reject a disallowed transition", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/statuses/transitions", `{"current":"pending","next":"delivered"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, "ORDER_STATUS_TRANSITION_INVALID", resp.Code)
		assert.Equal(t, "transition from pending to delivered is not allowed", resp.Message)
	})

	t.Run("should answer conflict for a cancelled order", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/statuses/transitions", `{"current":"cancelled","next":"accepted"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ORDER_ALREADY_CANCELLED", decodeError(t, rec).Code)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/statuses/transitions", `{"current":"shipped","next":"accepted"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ORDER_INVALID_STATUS", decodeError(t, rec).Code)
	})
}

func TestServer_ResolveRoute(t *testing.T) {
	e := newTestServer(new(MockEventPublisher))

	t.Run("should return the destination", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/routes/preparing", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var d routing.Destination
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
		assert.Equal(t, routing.QueueOrderPreparing, d.Queue)
	})

	t.Run("should report an unmapped key as a server error with the caller's correlation id", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/routes/shipped", "", echo.HeaderXRequestID, "req-123")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, "UNMAPPED_ROUTING_DESTINATION", resp.Code)
		assert.Equal(t, "req-123", resp.CorrelationID)
		assert.False(t, resp.Timestamp.IsZero())
	})

	t.Run("should generate a correlation id when none is sent", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/routes/shipped", "")

		assert.Len(t, decodeError(t, rec).CorrelationID, 36)
	})
}

func TestServer_PublishEvent(t *testing.T) {
	readyBody := `{"orderId":"ord-42","status":"ready","updatedBy":"kitchen","readyAt":"2025-03-14T12:00:00Z"}`

	t.Run("should publish and return the destination", func(t *testing.T) {
		publisher := new(MockEventPublisher)
		publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		rec := do(newTestServer(publisher), http.MethodPost, "/api/v1/events/ready?current=preparing", readyBody)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var d routing.Destination
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
		assert.Equal(t, routing.RoutingKeyOrderReady, d.RoutingKey)
		publisher.AssertExpectations(t)
	})

	t.Run("should refuse a transition the order cannot make", func(t *testing.T) {
		publisher := new(MockEventPublisher)

		rec := do(newTestServer(publisher), http.MethodPost, "/api/v1/events/ready?current=pending", readyBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should report missing items", func(t *testing.T) {
		body := `{"orderId":"ord-1","status":"pending","deliveryMethod":"pickup","total":0}`

		rec := do(newTestServer(new(MockEventPublisher)), http.MethodPost, "/api/v1/events/created", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ORDER_ITEMS_REQUIRED", decodeError(t, rec).Code)
	})

	t.Run("should reject an unknown kind", func(t *testing.T) {
		rec := do(newTestServer(new(MockEventPublisher)), http.MethodPost, "/api/v1/events/shipped", "{}")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject an unknown current status", func(t *testing.T) {
		rec := do(newTestServer(new(MockEventPublisher)), http.MethodPost, "/api/v1/events/ready?current=lost", readyBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ORDER_INVALID_STATUS", decodeError(t, rec).Code)
	})

	t.Run("should answer a server error when the bus refuses the message", func(t *testing.T) {
		publisher := new(MockEventPublisher)
		publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("no brokers")).Once()

		rec := do(newTestServer(publisher), http.MethodPost, "/api/v1/events/ready?current=preparing", readyBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "EXTERNAL_SERVICE_ERROR", decodeError(t, rec).Code)
	})
}

func TestServer_ListParkedEvents_InvalidLimit(t *testing.T) {
	e := newTestServer(new(MockEventPublisher))

	for _, target := range []string{"/api/v1/redeliveries?limit=abc", "/api/v1/redeliveries?limit=0"} {
		rec := do(e, http.MethodGet, target, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}
