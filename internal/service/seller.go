package service

import (
	"context"

	"github.com/aymenhafsi/electroshop/internal/models"
	"github.com/aymenhafsi/electroshop/internal/repo"
	"github.com/aymenhafsi/electroshop/internal/transport"
)

const recentSalesLimit = 50

// SellerService is a read-only projection over a seller's products and the
// order items that reference them. It owns no state and never mutates any.
type SellerService struct {
	Repo *repo.GormRepo
}

// Dashboard groups the seller's most recent sold items by parent order,
// newest order first. A seller with no activity gets empty slices, not an
// error.
func (s *SellerService) Dashboard(ctx context.Context, sellerID uint) (*transport.SellerDashboard, error) {
	products, err := s.Repo.SellerProducts(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	items, err := s.Repo.RecentOrderItems(ctx, sellerID, recentSalesLimit)
	if err != nil {
		return nil, err
	}

	// Items arrive newest-order first; keep that sequence while grouping.
	orderIDs := make([]uint, 0, len(items))
	grouped := make(map[uint][]models.OrderItem, len(items))
	for _, item := range items {
		if _, seen := grouped[item.OrderID]; !seen {
			orderIDs = append(orderIDs, item.OrderID)
		}
		grouped[item.OrderID] = append(grouped[item.OrderID], item)
	}

	orders, err := s.Repo.OrdersByIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Order, len(orders))
	for _, o := range orders {
		o.Items = nil
		byID[o.ID] = o
	}

	recent := make([]transport.SellerOrder, 0, len(orderIDs))
	for _, id := range orderIDs {
		recent = append(recent, transport.SellerOrder{
			Order: byID[id],
			Items: grouped[id],
		})
	}

	if products == nil {
		products = []models.Product{}
	}
	return &transport.SellerDashboard{
		Products:     products,
		RecentOrders: recent,
	}, nil
}
