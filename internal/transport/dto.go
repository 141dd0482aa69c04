package transport

import (
	"github.com/shopspring/decimal"

	"github.com/aymenhafsi/electroshop/internal/models"
)

type ProductFilter struct {
	CategorySlug string
	SellerID     uint
	InStock      bool
}

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  uint            `json:"category_id"`
}

type PatchProductRequest struct {
	Name        *string          `json:"name"`
	Slug        *string          `json:"slug"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  *uint            `json:"category_id"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type CartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CartLine struct {
	Product  models.Product  `json:"product"`
	Quantity uint            `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type CheckoutRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone"`
	Wilaya        string `json:"wilaya"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

type CheckoutResponse struct {
	OrderID uint            `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
}

type SellerOrder struct {
	Order models.Order       `json:"order"`
	Items []models.OrderItem `json:"items"`
}

type SellerDashboard struct {
	Products     []models.Product `json:"products"`
	RecentOrders []SellerOrder    `json:"recent_orders"`
}
