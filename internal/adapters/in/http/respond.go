package http

import (
	"net/http"

	"orderlifecycle/internal/pkg/result"

	"github.com/labstack/echo/v4"
)

func respond[T any](c echo.Context, r result.Result[T]) error {
	return respondWith(c, http.StatusOK, r)
}

func respondCreated[T any](c echo.Context, r result.Result[T]) error {
	return respondWith(c, http.StatusCreated, r)
}

func respondNoContent(c echo.Context, r result.Result[result.Unit]) error {
	if r.IsFailure() {
		return respondError(c, r.Message(), r.Code())
	}
	return c.NoContent(http.StatusNoContent)
}

func respondWith[T any](c echo.Context, status int, r result.Result[T]) error {
	value, ok := r.Value()
	if !ok {
		return respondError(c, r.Message(), r.Code())
	}
	return c.JSON(status, value)
}
