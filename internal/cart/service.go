package cart

import (
	"context"

	"halalpoultry-be/internal/logger"
	"halalpoultry-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	GetCart(ctx context.Context, userID string) ([]*CartItem, error)
	AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error)
	UpdateQuantity(ctx context.Context, userID string, productID int, quantity float64) (*CartItem, error)
	RemoveFromCart(ctx context.Context, userID string, productID int) error
	ClearCart(ctx context.Context, userID string) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) GetCart(ctx context.Context, userID string) ([]*CartItem, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}
	return s.repo.GetCartItems(ctx, userID)
}

// AddToCart performs advisory checks (product exists, in stock) before
// delegating; the repository itself validates nothing.
func (s *service) AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
		zap.String("user_id", params.UserID),
		zap.Int("product_id", params.ProductID),
	)

	if params.UserID == "" {
		return nil, ErrUserNotAuthenticated
	}
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.productRepo.GetProductByID(ctx, params.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	if !p.InStock {
		return nil, ErrProductOutOfStock
	}

	item, err := s.repo.AddToCart(ctx, params)
	if err != nil {
		log.Error("failed to add to cart", zap.Error(err))
		return nil, err
	}

	log.Info("cart updated", zap.Int("cart_item_id", item.ID))
	return item, nil
}

func (s *service) UpdateQuantity(ctx context.Context, userID string, productID int, quantity float64) (*CartItem, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.repo.UpdateCartItem(ctx, userID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}

func (s *service) RemoveFromCart(ctx context.Context, userID string, productID int) error {
	if userID == "" {
		return ErrUserNotAuthenticated
	}

	removed, err := s.repo.RemoveFromCart(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *service) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUserNotAuthenticated
	}
	return s.repo.ClearCart(ctx, userID)
}
