package repo

import (
	"context"

	"github.com/aymenhafsi/electroshop/internal/models"
)

func (r *GormRepo) SellerProducts(ctx context.Context, sellerID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC, id DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// RecentOrderItems returns a seller's sold items, most recent parent order
// first. The seller_id on the item is the snapshot taken at order time, so
// reassigned products keep showing up for the seller who made the sale.
func (r *GormRepo) RecentOrderItems(ctx context.Context, sellerID uint, limit int) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.DB.WithContext(ctx).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.seller_id = ?", sellerID).
		Order("orders.created_at DESC, order_items.id DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) OrdersByIDs(ctx context.Context, ids []uint) ([]models.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
