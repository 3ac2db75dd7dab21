package http

import (
	"net/http"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/pkg/result"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message       string    `json:"message"`
	Code          string    `json:"code"`
	Timestamp     time.Time `json:"timestamp"`
	CorrelationID string    `json:"correlationId"`
}

var statusCodes = map[result.Code]int{
	result.CodeNotFound:         http.StatusNotFound,
	result.CodeOrderNotFound:    http.StatusNotFound,
	result.CodeProductNotFound:  http.StatusNotFound,
	result.CodeCustomerNotFound: http.StatusNotFound,

	result.CodeValidationError:              http.StatusBadRequest,
	result.CodeOrderInvalidStatus:           http.StatusBadRequest,
	result.CodeOrderStatusTransitionInvalid: http.StatusBadRequest,
	result.CodeOrderItemsRequired:           http.StatusBadRequest,
	result.CodePaymentMethodInvalid:         http.StatusBadRequest,

	result.CodeUnauthorized: http.StatusUnauthorized,
	result.CodeForbidden:    http.StatusForbidden,

	result.CodeOrderAlreadyCancelled:   http.StatusConflict,
	result.CodeOrderAlreadyCompleted:   http.StatusConflict,
	result.CodePaymentAlreadyProcessed: http.StatusConflict,
	result.CodeProductOutOfStock:       http.StatusConflict,
}

// StatusCodeFor maps a failure code to an HTTP status. Unlisted codes, including
// NoCode and UNMAPPED_ROUTING_DESTINATION, are server errors.
func StatusCodeFor(code result.Code) int {
	if status, ok := statusCodes[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func respondError(c echo.Context, message string, code result.Code) error {
	return c.JSON(StatusCodeFor(code), ErrorResponse{
		Message:       message,
		Code:          code.String(),
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID(c),
	})
}

// correlationID prefers the caller's X-Request-ID, then the one set by the
// RequestID middleware, then a fresh UUID.
func correlationID(c echo.Context) string {
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return kernel.NewUUID().String()
}
