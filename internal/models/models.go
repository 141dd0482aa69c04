package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Username string `gorm:"unique;not null"           json:"username"`
	Role     Role   `gorm:"not null;default:buyer"    json:"role"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type Category struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string `gorm:"unique;not null"          json:"slug"`
	Name        string `gorm:"not null"                 json:"name"`
	Description string `json:"description"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"            json:"id"`
	CategoryID  uint            `gorm:"index;not null"                      json:"category_id"`
	SellerID    uint            `gorm:"index;not null"                      json:"seller_id"`
	Slug        string          `gorm:"unique;not null"                     json:"slug"`
	Name        string          `gorm:"not null"                            json:"name"`
	Description string          `gorm:"not null"                            json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"         json:"price"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

type Order struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	UserID        uint            `gorm:"index;not null"              json:"user_id"`
	FirstName     string          `gorm:"not null"                    json:"first_name"`
	LastName      string          `gorm:"not null"                    json:"last_name"`
	Phone         string          `gorm:"not null"                    json:"phone"`
	Wilaya        string          `gorm:"not null"                    json:"wilaya"`
	Address       string          `gorm:"not null"                    json:"address"`
	PaymentMethod string          `gorm:"not null"                    json:"payment_method"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID"          json:"items"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	OrderID   uint            `gorm:"index;not null"              json:"order_id"`
	ProductID uint            `gorm:"not null"                    json:"product_id"`
	SellerID  uint            `gorm:"index;not null"              json:"seller_id"`
	Quantity  uint            `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

// Subtotal is quantity times the unit price captured at order time.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Payment struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	UserID        uint            `gorm:"index;not null"              json:"user_id"`
	OrderID       uint            `gorm:"uniqueIndex;not null"        json:"order_id"`
	FirstName     string          `gorm:"not null"                    json:"first_name"`
	LastName      string          `gorm:"not null"                    json:"last_name"`
	Phone         string          `gorm:"not null"                    json:"phone"`
	Wilaya        string          `gorm:"not null"                    json:"wilaya"`
	Address       string          `gorm:"not null"                    json:"address"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"not null"                    json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SessionEntry backs the opaque per-session key-value store. The cart lives
// serialized under a single fixed key per session.
type SessionEntry struct {
	SessionID string    `gorm:"primaryKey;size:64" json:"session_id"`
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     []byte    `gorm:"not null"           json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SessionEntry) TableName() string {
	return "session_entries"
}
