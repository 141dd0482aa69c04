package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aymenhafsi/electroshop/internal/models"
)

func TestDashboardEmptySeller(t *testing.T) {
	env := newTestEnv(t)

	dash, err := env.Seller.Dashboard(context.Background(), 123)
	require.NoError(t, err)
	require.Empty(t, dash.Products)
	require.Empty(t, dash.RecentOrders)
}

func TestDashboardGroupsItemsByOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	mine := seedProduct(t, env.DB, 7, "stepper-motor", "2500.00", 20)
	other := seedProduct(t, env.DB, 8, "power-supply", "4000.00", 20)

	// Buyer one orders both products; buyer two orders only mine, later.
	require.NoError(t, env.Cart.Add(ctx, "sess-1", mine.ID, 2))
	require.NoError(t, env.Cart.Add(ctx, "sess-1", other.ID, 1))
	first, err := env.Checkout.Checkout(ctx, "sess-1", 100, validCheckout())
	require.NoError(t, err)

	// Backdate the first order so recency ordering is unambiguous.
	require.NoError(t, env.DB.Model(&models.Order{}).
		Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	require.NoError(t, env.Cart.Add(ctx, "sess-2", mine.ID, 1))
	second, err := env.Checkout.Checkout(ctx, "sess-2", 101, validCheckout())
	require.NoError(t, err)

	dash, err := env.Seller.Dashboard(ctx, 7)
	require.NoError(t, err)
	require.Len(t, dash.Products, 1)
	require.Equal(t, mine.ID, dash.Products[0].ID)

	// Two orders, newest first, and only items for seller 7.
	require.Len(t, dash.RecentOrders, 2)
	require.Equal(t, second.ID, dash.RecentOrders[0].Order.ID)
	require.Equal(t, first.ID, dash.RecentOrders[1].Order.ID)
	require.Len(t, dash.RecentOrders[0].Items, 1)
	require.Len(t, dash.RecentOrders[1].Items, 1)
	for _, o := range dash.RecentOrders {
		for _, item := range o.Items {
			require.Equal(t, uint(7), item.SellerID)
		}
	}
}

func TestDashboardKeepsSaleAfterProductReassigned(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := seedProduct(t, env.DB, 7, "oscilloscope-probe", "1200.00", 5)

	require.NoError(t, env.Cart.Add(ctx, "sess-1", product.ID, 1))
	order, err := env.Checkout.Checkout(ctx, "sess-1", 100, validCheckout())
	require.NoError(t, err)

	// Product moves to another seller after the sale.
	require.NoError(t, env.DB.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("seller_id", 9).Error)

	dash, err := env.Seller.Dashboard(ctx, 7)
	require.NoError(t, err)
	require.Len(t, dash.RecentOrders, 1)
	require.Equal(t, order.ID, dash.RecentOrders[0].Order.ID)

	// The new owner did not inherit the historical sale.
	dash, err = env.Seller.Dashboard(ctx, 9)
	require.NoError(t, err)
	require.Empty(t, dash.RecentOrders)
}
