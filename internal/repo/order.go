package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aymenhafsi/electroshop/internal/models"
)

// ErrStockConflict means a guarded stock decrement matched no row: the
// product's stock changed after the cart was materialized. The surrounding
// transaction is rolled back in full.
var ErrStockConflict = errors.New("stock conflict")

// CreateOrderWithPayment commits a materialized cart: order, items, payment
// and the stock decrements succeed or fail as one transaction. Items must
// already be sorted by ascending product id so concurrent checkouts touching
// the same products cannot deadlock.
func (r *GormRepo) CreateOrderWithPayment(ctx context.Context, order *models.Order) (*models.Payment, error) {
	var payment models.Payment

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range order.Items {
			item := &order.Items[i]
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("product %d: %w", item.ProductID, ErrStockConflict)
			}
		}

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		payment = models.Payment{
			UserID:        order.UserID,
			OrderID:       order.ID,
			FirstName:     order.FirstName,
			LastName:      order.LastName,
			Phone:         order.Phone,
			Wilaya:        order.Wilaya,
			Address:       order.Address,
			Amount:        order.TotalPrice,
			PaymentMethod: order.PaymentMethod,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, userID uint, offset, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Preload("Items").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
