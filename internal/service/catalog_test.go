package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aymenhafsi/electroshop/internal/transport"
)

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := &CatalogService{Repo: env.Repo}
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		Slug: "no-name", CategoryID: 1, Price: decimal.NewFromInt(1),
	}, 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{
		Name: "Negative", Slug: "negative", CategoryID: 1,
		Price: decimal.NewFromInt(-1),
	}, 1)
	require.ErrorIs(t, err, ErrValidation)

	product, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		Name: "Thermistor", Slug: "thermistor-ntc", Description: "10k NTC",
		CategoryID: 1, Price: decimal.RequireFromString("35.50"), Stock: 12,
	}, 4)
	require.NoError(t, err)
	require.Equal(t, uint(4), product.SellerID)
	require.Equal(t, 12, product.Stock)
}

func TestPatchProductPartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := &CatalogService{Repo: env.Repo}
	ctx := context.Background()
	product := seedProduct(t, env.DB, 1, "crystal-16mhz", "20.00", 30)

	newPrice := decimal.RequireFromString("18.00")
	updated, err := svc.PatchProduct(ctx, transport.PatchProductRequest{Price: &newPrice}, product.ID)
	require.NoError(t, err)
	require.True(t, updated.Price.Equal(newPrice))
	require.Equal(t, product.Name, updated.Name)
	require.Equal(t, 30, updated.Stock)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := &CatalogService{Repo: env.Repo}

	_, err := svc.GetProduct(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.DeleteProduct(context.Background(), 404), ErrNotFound)
}

func TestListProductsFilters(t *testing.T) {
	env := newTestEnv(t)
	svc := &CatalogService{Repo: env.Repo}
	ctx := context.Background()

	seedProduct(t, env.DB, 1, "in-stock", "10.00", 5)
	seedProduct(t, env.DB, 1, "sold-out", "10.00", 0)
	seedProduct(t, env.DB, 2, "other-seller", "10.00", 5)

	total, items, err := svc.ListProducts(ctx, transport.ProductFilter{InStock: true}, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, items, 2)

	total, _, err = svc.ListProducts(ctx, transport.ProductFilter{SellerID: 2}, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}
