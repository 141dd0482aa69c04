package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aymenhafsi/electroshop/internal/middleware/auth"
	sessionmw "github.com/aymenhafsi/electroshop/internal/middleware/session"
	"github.com/aymenhafsi/electroshop/internal/models"
)

type Deps struct {
	ProductHandler  *ProductHTTP
	CartHandler     *CartHTTP
	CheckoutHandler *CheckoutHTTP
	OrderHandler    *OrderHTTP
	SellerHandler   *SellerHTTP
	JWTSecret       []byte
}

// Register wires every route. Reads live on GET; every cart/checkout/catalog
// mutation is POST, PUT or DELETE.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := auth.New(d.JWTSecret)

	e.GET("/products", d.ProductHandler.ListProducts)
	e.GET("/products/:id", d.ProductHandler.GetProduct)
	e.GET("/products/slug/:slug", d.ProductHandler.GetProductBySlug)
	e.GET("/categories", d.ProductHandler.ListCategories)

	catalog := e.Group("", authMW.RequireAuth)
	catalog.POST("/products", d.ProductHandler.CreateProduct,
		authMW.RequireRole(models.RoleSeller, models.RoleAdmin))
	catalog.PATCH("/products/:id", d.ProductHandler.PatchProduct,
		authMW.RequireRole(models.RoleSeller, models.RoleAdmin))
	catalog.DELETE("/products/:id", d.ProductHandler.DeleteProduct,
		authMW.RequireRole(models.RoleSeller, models.RoleAdmin))
	catalog.POST("/categories", d.ProductHandler.CreateCategory,
		authMW.RequireRole(models.RoleAdmin))

	cart := e.Group("/cart", sessionmw.EnsureSession)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PUT("", d.CartHandler.SetQuantity)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.DELETE("/items", d.CartHandler.RemoveFromCart)

	e.POST("/checkout", d.CheckoutHandler.Checkout, authMW.RequireAuth, sessionmw.EnsureSession)

	orders := e.Group("/orders", authMW.RequireAuth)
	orders.GET("", d.OrderHandler.ListOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)

	e.GET("/seller/dashboard", d.SellerHandler.Dashboard, authMW.RequireAuth)
}
