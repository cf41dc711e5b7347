package order

import (
	"context"

	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

// Detail pairs an order with its line items for the detail endpoint.
type Detail struct {
	Order
	Items []*OrderItem `json:"items"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create places an order for the authenticated user. The stored order starts
// as pending unless the caller supplies a status, and placing it empties the
// user's cart.
func (s *Service) Create(ctx context.Context, params CreateOrderParams, items []CreateOrderItemParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
	)

	if params.UserID == "" {
		return nil, ErrUserNotAuthenticated
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if params.Status != "" {
		if _, err := ParseStatus(string(params.Status)); err != nil {
			return nil, err
		}
	}

	o, err := s.repo.CreateOrder(ctx, params, items)
	if err != nil {
		log.Error("create order failed", zap.Error(err))
		return nil, err
	}
	return o, nil
}

func (s *Service) GetOrders(ctx context.Context, userID string) ([]*Order, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}
	return s.repo.GetOrdersByUser(ctx, userID)
}

// GetOrderDetail loads one order with its items. Users only see their own
// orders; a match owned by someone else reports ErrForbidden.
func (s *Service) GetOrderDetail(ctx context.Context, userID string, orderID int) (*Detail, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}

	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}

	items, err := s.repo.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &Detail{Order: *o, Items: items}, nil
}

// UpdateStatus moves an order along the status graph. Unknown statuses and
// illegal transitions are rejected before anything is written.
func (s *Service) UpdateStatus(ctx context.Context, orderID int, rawStatus string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateStatus"),
		zap.Int("order_id", orderID),
	)

	next, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if !o.Status.CanTransitionTo(next) {
		log.Warn("illegal status transition",
			zap.String("from", string(o.Status)),
			zap.String("to", string(next)),
		)
		return nil, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, orderID, next)
	if err != nil {
		log.Error("update status failed", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}
	return updated, nil
}
