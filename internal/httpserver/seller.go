package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aymenhafsi/electroshop/internal/access"
	"github.com/aymenhafsi/electroshop/internal/logging"
	"github.com/aymenhafsi/electroshop/internal/middleware/auth"
	"github.com/aymenhafsi/electroshop/internal/service"
)

type SellerHTTP struct {
	Svc *service.SellerService
}

func (h *SellerHTTP) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "seller.dashboard")

	userID, ok := auth.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	role, _ := auth.RoleOf(c)
	if !access.CanViewSellerDashboard(role) {
		l.Warn("seller_dashboard_error", "status", 403)
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not enough rights"})
	}

	dashboard, err := h.Svc.Dashboard(ctx, userID)
	if err != nil {
		return respondError(c, l, "seller_dashboard_error", err)
	}
	return c.JSON(http.StatusOK, dashboard)
}
