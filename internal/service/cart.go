package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/aymenhafsi/electroshop/internal/repo"
	"github.com/aymenhafsi/electroshop/internal/session"
	"github.com/aymenhafsi/electroshop/internal/transport"
)

var (
	ErrValidation        = errors.New("validation")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// cartSessionKey is the single session key the serialized cart lives under.
const cartSessionKey = "cart"

// CartService keeps the per-session product -> quantity mapping. Mutations
// run an optimistic stock check against the catalog; Materialize re-checks
// against live stock, so stale entries are filtered on every read. Only the
// checkout commit is authoritative.
type CartService struct {
	Repo     *repo.GormRepo
	Sessions session.Store
}

func (s *CartService) load(ctx context.Context, sessionID string) (map[uint]uint, error) {
	raw, ok, err := s.Sessions.Get(ctx, sessionID, cartSessionKey)
	if err != nil {
		return nil, err
	}
	cart := make(map[uint]uint)
	if !ok || len(raw) == 0 {
		return cart, nil
	}
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) save(ctx context.Context, sessionID string, cart map[uint]uint) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.Sessions.Set(ctx, sessionID, cartSessionKey, raw)
}

// Add merges quantity into the existing entry after checking live stock.
func (s *CartService) Add(ctx context.Context, sessionID string, productID uint, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrInsufficientStock)
	}

	product, err := s.Repo.GetProduct(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	if err != nil {
		return err
	}

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}

	next := cart[productID] + uint(quantity)
	if next > uint(product.Stock) {
		return fmt.Errorf("want %d of product %d, %d in stock: %w",
			next, productID, product.Stock, ErrInsufficientStock)
	}

	cart[productID] = next
	return s.save(ctx, sessionID, cart)
}

// SetQuantity replaces the entry instead of accumulating; same stock rules
// as Add.
func (s *CartService) SetQuantity(ctx context.Context, sessionID string, productID uint, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrInsufficientStock)
	}

	product, err := s.Repo.GetProduct(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	if err != nil {
		return err
	}

	if uint(quantity) > uint(product.Stock) {
		return fmt.Errorf("want %d of product %d, %d in stock: %w",
			quantity, productID, product.Stock, ErrInsufficientStock)
	}

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}

	cart[productID] = uint(quantity)
	return s.save(ctx, sessionID, cart)
}

// Remove is idempotent: removing an absent entry is a no-op.
func (s *CartService) Remove(ctx context.Context, sessionID string, productID uint) error {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	delete(cart, productID)
	return s.save(ctx, sessionID, cart)
}

// Materialize builds line items for every entry still covered by live stock,
// in ascending product-id order, with an exact fixed-point total. Entries
// that fail re-validation (product gone, stock now below the stored
// quantity) are dropped from the view but left in the stored cart, so they
// reappear if stock is replenished.
func (s *CartService) Materialize(ctx context.Context, sessionID string) ([]transport.CartLine, decimal.Decimal, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	ids := make([]uint, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	lines := make([]transport.CartLine, 0, len(ids))
	total := decimal.Zero
	for _, id := range ids {
		quantity := cart[id]
		if quantity == 0 {
			continue
		}
		product, err := s.Repo.GetProduct(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, decimal.Zero, err
		}
		if quantity > uint(product.Stock) {
			continue
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
		lines = append(lines, transport.CartLine{
			Product:  *product,
			Quantity: quantity,
			Subtotal: subtotal,
		})
		total = total.Add(subtotal)
	}

	return lines, total, nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.save(ctx, sessionID, map[uint]uint{})
}
