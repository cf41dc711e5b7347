package cart

import (
	"context"
	"sync"
	"time"

	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// GetCartItems returns the user's cart in insertion order; an empty slice
	// when the user has no cart yet, never a miss.
	GetCartItems(ctx context.Context, userID string) ([]*CartItem, error)
	// AddToCart overwrites the existing (userID, productID) item in place —
	// quantity and selected options take the new values, the identifier and
	// CreatedAt survive. Otherwise a new item is appended with a fresh ID.
	AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error)
	// UpdateCartItem replaces quantity only; nil, nil when the pair is absent.
	UpdateCartItem(ctx context.Context, userID string, productID int, quantity float64) (*CartItem, error)
	// RemoveFromCart reports whether a removal occurred.
	RemoveFromCart(ctx context.Context, userID string, productID int) (bool, error)
	// ClearCart empties the user's cart; idempotent, always succeeds.
	ClearCart(ctx context.Context, userID string) error
}

type memoryRepository struct {
	mu     sync.RWMutex
	carts  map[string][]*CartItem
	nextID int
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		carts:  make(map[string][]*CartItem),
		nextID: 1,
	}
}

func (r *memoryRepository) GetCartItems(ctx context.Context, userID string) ([]*CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.carts[userID]
	out := make([]*CartItem, 0, len(items))
	for _, item := range items {
		copied := *item
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memoryRepository) AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddToCart"),
		zap.String("user_id", params.UserID),
		zap.Int("product_id", params.ProductID),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	items := r.carts[params.UserID]

	for i, item := range items {
		if item.ProductID == params.ProductID {
			updated := *item
			updated.Quantity = params.Quantity
			updated.SelectedOptions = params.SelectedOptions
			updated.UpdatedAt = now
			items[i] = &updated

			log.Debug("cart item overwritten", zap.Int("cart_item_id", updated.ID))
			copied := updated
			return &copied, nil
		}
	}

	item := &CartItem{
		ID:              r.nextID,
		UserID:          params.UserID,
		ProductID:       params.ProductID,
		Quantity:        params.Quantity,
		SelectedOptions: params.SelectedOptions,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.nextID++
	r.carts[params.UserID] = append(items, item)

	log.Debug("cart item appended", zap.Int("cart_item_id", item.ID))
	copied := *item
	return &copied, nil
}

func (r *memoryRepository) UpdateCartItem(ctx context.Context, userID string, productID int, quantity float64) (*CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}

	for i, item := range items {
		if item.ProductID == productID {
			updated := *item
			updated.Quantity = quantity
			updated.UpdatedAt = time.Now()
			items[i] = &updated

			copied := updated
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) RemoveFromCart(ctx context.Context, userID string, productID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.carts[userID]
	if !ok {
		return false, nil
	}

	kept := items[:0:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}

	r.carts[userID] = kept
	return true, nil
}

func (r *memoryRepository) ClearCart(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[userID] = []*CartItem{}
	return nil
}
