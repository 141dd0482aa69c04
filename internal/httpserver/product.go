package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aymenhafsi/electroshop/internal/access"
	"github.com/aymenhafsi/electroshop/internal/events"
	"github.com/aymenhafsi/electroshop/internal/logging"
	"github.com/aymenhafsi/electroshop/internal/middleware/auth"
	"github.com/aymenhafsi/electroshop/internal/service"
	"github.com/aymenhafsi/electroshop/internal/transport"
	"github.com/aymenhafsi/electroshop/internal/util"
)

const productEventsTopic = "product_events"

type ProductHTTP struct {
	Svc      *service.CatalogService
	Producer *events.Producer
}

func (h *ProductHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, productEventsTopic, fmt.Sprint(event["userID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("product_event_publish_failed", "error", err)
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id is not an integer"})
	}

	product, err := h.Svc.GetProduct(ctx, uint(id))
	if err != nil {
		return respondError(c, l, "get_product_error", err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) GetProductBySlug(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_by_slug")

	product, err := h.Svc.GetProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		return respondError(c, l, "get_product_by_slug_error", err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	filter := transport.ProductFilter{
		CategorySlug: c.QueryParam("category"),
		SellerID:     uint(parseIntDefault(c.QueryParam("seller"), 0)),
		InStock:      c.QueryParam("in_stock") == "1",
	}

	total, items, err := h.Svc.ListProducts(ctx, filter, offset, limit)
	if err != nil {
		return respondError(c, l, "list_products_error", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	userID, _ := auth.UserID(c)
	role, _ := auth.RoleOf(c)
	if !access.CanManageCatalog(role) {
		l.Warn("create_product_error", "status", 403)
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not enough rights"})
	}

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	product, err := h.Svc.CreateProduct(ctx, req, userID)
	if err != nil {
		return respondError(c, l, "create_product_error", err)
	}

	h.publish(c, map[string]any{
		"type":      "product_created",
		"userID":    userID,
		"productID": product.ID,
		"name":      product.Name,
	})
	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("patch_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id is not an integer"})
	}

	userID, _ := auth.UserID(c)
	role, _ := auth.RoleOf(c)
	product, err := h.Svc.GetProduct(ctx, uint(id))
	if err != nil {
		return respondError(c, l, "patch_product_error", err)
	}
	if !access.CanEditProduct(userID, role, product) {
		l.Warn("patch_product_error", "status", 403, "product_id", id)
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not enough rights"})
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	updated, err := h.Svc.PatchProduct(ctx, req, uint(id))
	if err != nil {
		return respondError(c, l, "patch_product_error", err)
	}

	h.publish(c, map[string]any{
		"type":      "product_updated",
		"userID":    userID,
		"productID": updated.ID,
		"name":      updated.Name,
	})
	l.Info("patch_product_success", "product_id", updated.ID)
	return c.JSON(http.StatusOK, updated)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("delete_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id is not an integer"})
	}

	userID, _ := auth.UserID(c)
	role, _ := auth.RoleOf(c)
	product, err := h.Svc.GetProduct(ctx, uint(id))
	if err != nil {
		return respondError(c, l, "delete_product_error", err)
	}
	if !access.CanEditProduct(userID, role, product) {
		l.Warn("delete_product_error", "status", 403, "product_id", id)
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not enough rights"})
	}

	if err := h.Svc.DeleteProduct(ctx, uint(id)); err != nil {
		return respondError(c, l, "delete_product_error", err)
	}

	h.publish(c, map[string]any{
		"type":      "product_deleted",
		"userID":    userID,
		"productID": uint(id),
	})
	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_category_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	cat, err := h.Svc.CreateCategory(ctx, req)
	if err != nil {
		return respondError(c, l, "create_category_error", err)
	}
	l.Info("create_category_success", "category_id", cat.ID)
	return c.JSON(http.StatusCreated, cat)
}

func (h *ProductHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.list")

	cats, err := h.Svc.ListCategories(ctx)
	if err != nil {
		return respondError(c, l, "list_categories_error", err)
	}
	return c.JSON(http.StatusOK, cats)
}
