package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aymenhafsi/electroshop/internal/logging"
	"github.com/aymenhafsi/electroshop/internal/middleware/auth"
	sessionmw "github.com/aymenhafsi/electroshop/internal/middleware/session"
	"github.com/aymenhafsi/electroshop/internal/service"
	"github.com/aymenhafsi/electroshop/internal/transport"
)

type CheckoutHTTP struct {
	Svc *service.CheckoutService
}

func (h *CheckoutHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout")

	userID, ok := auth.UserID(c)
	if !ok {
		l.Warn("checkout_error", "status", 401)
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	sid, ok := sessionmw.SessionID(c)
	if !ok {
		l.Warn("checkout_error", "status", 400)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing session"})
	}

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	order, err := h.Svc.Checkout(ctx, sid, userID, req)
	if err != nil {
		return respondError(c, l, "checkout_error", err)
	}

	l.Info("checkout_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, transport.CheckoutResponse{
		OrderID: order.ID,
		Total:   order.TotalPrice,
	})
}
