package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aymenhafsi/electroshop/internal/events"
	"github.com/aymenhafsi/electroshop/internal/logging"
	"github.com/aymenhafsi/electroshop/internal/models"
	"github.com/aymenhafsi/electroshop/internal/repo"
	"github.com/aymenhafsi/electroshop/internal/transport"
)

var (
	ErrEmptyCart           = errors.New("empty cart")
	ErrInvalidCheckoutData = errors.New("invalid checkout data")
	ErrStockConflict       = errors.New("stock conflict")
)

const orderEventsTopic = "order_events"

// CheckoutService is the only path from a cart to a durable order, and the
// only caller of the stock-decrementing commit. Materialize-time validation
// is advisory; the commit re-checks every line under the transaction and
// either applies everything or nothing.
type CheckoutService struct {
	Repo     *repo.GormRepo
	Cart     *CartService
	Producer *events.Producer
}

func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, buyerID uint, req transport.CheckoutRequest) (*models.Order, error) {
	lines, total, err := s.Cart.Materialize(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	wilaya, err := validateCheckout(req)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:        buyerID,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Phone:         strings.TrimSpace(req.Phone),
		Wilaya:        wilaya,
		Address:       strings.TrimSpace(req.Address),
		PaymentMethod: req.PaymentMethod,
		TotalPrice:    total,
	}
	// Lines arrive in ascending product-id order from Materialize; the
	// commit relies on that ordering.
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.Product.ID,
			SellerID:  line.Product.SellerID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		})
	}

	if _, err := s.Repo.CreateOrderWithPayment(ctx, order); err != nil {
		if errors.Is(err, repo.ErrStockConflict) {
			// Cart stays intact so the buyer can adjust and retry.
			return nil, fmt.Errorf("commit order: %w", ErrStockConflict)
		}
		return nil, err
	}

	l := logging.FromContext(ctx)
	if err := s.Cart.Clear(ctx, sessionID); err != nil {
		l.Error("clear_cart_after_checkout_failed", "order_id", order.ID, "error", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	event := map[string]any{
		"type":    "order_created",
		"orderID": order.ID,
		"userID":  buyerID,
		"total":   order.TotalPrice,
		"items":   len(order.Items),
	}
	if err := s.Producer.PublishEvent(publishCtx, orderEventsTopic, fmt.Sprint(buyerID), event); err != nil {
		l.Error("order_event_publish_failed", "order_id", order.ID, "error", err)
	}

	return order, nil
}

func validateCheckout(req transport.CheckoutRequest) (string, error) {
	required := map[string]string{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"phone":      req.Phone,
		"address":    req.Address,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return "", fmt.Errorf("%s required: %w", field, ErrInvalidCheckoutData)
		}
	}

	wilaya := CanonicalWilaya(req.Wilaya)
	if wilaya == "" {
		return "", fmt.Errorf("unknown wilaya %q: %w", req.Wilaya, ErrInvalidCheckoutData)
	}
	if !RecognizedPaymentMethod(req.PaymentMethod) {
		return "", fmt.Errorf("unknown payment method %q: %w", req.PaymentMethod, ErrInvalidCheckoutData)
	}
	return wilaya, nil
}
