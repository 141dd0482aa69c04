package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aymenhafsi/electroshop/internal/models"
	"github.com/aymenhafsi/electroshop/internal/repo"
	"github.com/aymenhafsi/electroshop/internal/session"
	"github.com/aymenhafsi/electroshop/internal/transport"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.SessionEntry{},
	))
	return db
}

type testEnv struct {
	DB       *gorm.DB
	Repo     *repo.GormRepo
	Cart     *CartService
	Checkout *CheckoutService
	Seller   *SellerService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	r := repo.New(db)
	cart := &CartService{Repo: r, Sessions: session.NewGormStore(db)}

	return &testEnv{
		DB:       db,
		Repo:     r,
		Cart:     cart,
		Checkout: &CheckoutService{Repo: r, Cart: cart},
		Seller:   &SellerService{Repo: r},
	}
}

func seedProduct(t *testing.T, db *gorm.DB, sellerID uint, slug, price string, stock int) models.Product {
	t.Helper()

	product := models.Product{
		CategoryID:  1,
		SellerID:    sellerID,
		Slug:        slug,
		Name:        "product " + slug,
		Description: "test product",
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func validCheckout() transport.CheckoutRequest {
	return transport.CheckoutRequest{
		FirstName:     "Amine",
		LastName:      "Hafsi",
		Phone:         "+213550123456",
		Wilaya:        "Algiers",
		Address:       "12 Rue Didouche Mourad",
		PaymentMethod: PaymentCashOnDelivery,
	}
}
