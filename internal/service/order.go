package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aymenhafsi/electroshop/internal/models"
	"github.com/aymenhafsi/electroshop/internal/repo"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// GetOrder is owner-gated: another buyer's order reads as not found.
func (s *OrderService) GetOrder(ctx context.Context, id, userID uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uint, offset, limit int) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, userID, offset, limit)
}
