package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aymenhafsi/electroshop/internal/logging"
	sessionmw "github.com/aymenhafsi/electroshop/internal/middleware/session"
	"github.com/aymenhafsi/electroshop/internal/service"
	"github.com/aymenhafsi/electroshop/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) sessionID(c echo.Context) (string, error) {
	sid, ok := sessionmw.SessionID(c)
	if !ok {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing session")
	}
	return sid, nil
}

// GetCart returns the materialized view: only lines still covered by live
// stock, plus the exact total.
func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	sid, err := h.sessionID(c)
	if err != nil {
		return err
	}

	lines, total, err := h.Svc.Materialize(ctx, sid)
	if err != nil {
		return respondError(c, l, "get_cart_error", err)
	}
	return c.JSON(http.StatusOK, transport.CartView{Items: lines, Total: total})
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	sid, err := h.sessionID(c)
	if err != nil {
		return err
	}

	var req transport.CartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if req.ProductID == 0 {
		l.Warn("add_to_cart_error", "status", 400)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "product_id required"})
	}

	if err := h.Svc.Add(ctx, sid, req.ProductID, req.Quantity); err != nil {
		return respondError(c, l, "add_to_cart_error", err)
	}

	l.Info("add_to_cart_success", "product_id", req.ProductID, "quantity", req.Quantity)
	return c.JSON(http.StatusCreated, req)
}

// SetQuantity replaces the stored quantity for one product.
func (h *CartHTTP) SetQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.set_quantity")

	sid, err := h.sessionID(c)
	if err != nil {
		return err
	}

	var req transport.CartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_quantity_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if req.ProductID == 0 {
		l.Warn("set_quantity_error", "status", 400)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "product_id required"})
	}

	if err := h.Svc.SetQuantity(ctx, sid, req.ProductID, req.Quantity); err != nil {
		return respondError(c, l, "set_quantity_error", err)
	}

	l.Info("set_quantity_success", "product_id", req.ProductID, "quantity", req.Quantity)
	return c.JSON(http.StatusOK, req)
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	sid, err := h.sessionID(c)
	if err != nil {
		return err
	}

	var req transport.CartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("remove_from_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if req.ProductID == 0 {
		l.Warn("remove_from_cart_error", "status", 400)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "product_id required"})
	}

	if err := h.Svc.Remove(ctx, sid, req.ProductID); err != nil {
		return respondError(c, l, "remove_from_cart_error", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	sid, err := h.sessionID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Clear(ctx, sid); err != nil {
		return respondError(c, l, "clear_cart_error", err)
	}
	l.Info("cart_cleared")
	return c.NoContent(http.StatusNoContent)
}
