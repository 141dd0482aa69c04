package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aymenhafsi/electroshop/internal/service"
)

// respondError maps the service error taxonomy onto HTTP statuses. Stock
// errors are conflicts the buyer can retry; validation failures are plain
// bad requests.
func respondError(c echo.Context, l *slog.Logger, op string, err error) error {
	var status int
	var msg string

	switch {
	case errors.Is(err, service.ErrNotFound):
		status, msg = http.StatusNotFound, "not found"
	case errors.Is(err, service.ErrInsufficientStock):
		status, msg = http.StatusConflict, "insufficient stock"
	case errors.Is(err, service.ErrStockConflict):
		status, msg = http.StatusConflict, "stock changed, please retry"
	case errors.Is(err, service.ErrEmptyCart):
		status, msg = http.StatusBadRequest, "cart is empty"
	case errors.Is(err, service.ErrInvalidCheckoutData):
		status, msg = http.StatusBadRequest, "invalid checkout data"
	case errors.Is(err, service.ErrValidation):
		status, msg = http.StatusBadRequest, "invalid body"
	default:
		status, msg = http.StatusInternalServerError, "internal error"
	}

	if status >= 500 {
		l.Error(op, "status", status, "error", err)
	} else {
		l.Warn(op, "status", status, "error", err)
	}
	return c.JSON(status, map[string]string{"error": msg})
}
