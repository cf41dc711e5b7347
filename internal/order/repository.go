package order

import (
	"context"
	"sync"
	"time"

	"halalpoultry-be/internal/cart"
	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// CreateOrder stores the order and its items in one synchronous step,
	// stamping each item with the new order ID, and clears the buyer's cart
	// as a side effect. It does not check the items against the cart, nor the
	// total against the items; both are caller obligations.
	CreateOrder(ctx context.Context, params CreateOrderParams, items []CreateOrderItemParams) (*Order, error)
	GetOrdersByUser(ctx context.Context, userID string) ([]*Order, error)
	// GetOrderByID returns nil, nil on a miss.
	GetOrderByID(ctx context.Context, id int) (*Order, error)
	// GetOrderItems returns an empty slice when no items are recorded.
	GetOrderItems(ctx context.Context, orderID int) ([]*OrderItem, error)
	// UpdateOrderStatus writes the new status; nil, nil when the order is
	// absent. Transition legality is enforced by the service.
	UpdateOrderStatus(ctx context.Context, id int, status Status) (*Order, error)
}

type memoryRepository struct {
	mu          sync.RWMutex
	orders      map[int]*Order
	orderItems  map[int][]*OrderItem
	orderOrder  []int
	nextOrderID int
	nextItemID  int

	carts cart.Repository
}

// NewMemoryRepository takes the cart repository so checkout can clear the
// buyer's cart inside the same synchronous operation.
func NewMemoryRepository(carts cart.Repository) Repository {
	return &memoryRepository{
		orders:      make(map[int]*Order),
		orderItems:  make(map[int][]*OrderItem),
		nextOrderID: 1,
		nextItemID:  1,
		carts:       carts,
	}
}

func (r *memoryRepository) CreateOrder(ctx context.Context, params CreateOrderParams, items []CreateOrderItemParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.String("user_id", params.UserID),
	)

	r.mu.Lock()

	now := time.Now()
	status := params.Status
	if status == "" {
		status = StatusPending
	}

	o := &Order{
		ID:              r.nextOrderID,
		UserID:          params.UserID,
		Status:          status,
		Total:           params.Total,
		ShippingAddress: params.ShippingAddress,
		BillingAddress:  params.BillingAddress,
		PaymentMethod:   params.PaymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.nextOrderID++

	stored := make([]*OrderItem, 0, len(items))
	for _, item := range items {
		stored = append(stored, &OrderItem{
			ID:              r.nextItemID,
			OrderID:         o.ID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			Price:           item.Price,
			SelectedOptions: item.SelectedOptions,
		})
		r.nextItemID++
	}

	r.orders[o.ID] = o
	r.orderItems[o.ID] = stored
	r.orderOrder = append(r.orderOrder, o.ID)

	r.mu.Unlock()

	if err := r.carts.ClearCart(ctx, params.UserID); err != nil {
		return nil, err
	}

	log.Info("order created",
		zap.Int("order_id", o.ID),
		zap.Int("items", len(stored)),
		zap.Float64("total", o.Total),
	)

	copied := *o
	return &copied, nil
}

func (r *memoryRepository) GetOrdersByUser(ctx context.Context, userID string) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*Order{}
	for _, id := range r.orderOrder {
		o := r.orders[id]
		if o.UserID == userID {
			copied := *o
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memoryRepository) GetOrderByID(ctx context.Context, id int) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *o
	return &copied, nil
}

func (r *memoryRepository) GetOrderItems(ctx context.Context, orderID int) ([]*OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.orderItems[orderID]
	out := make([]*OrderItem, 0, len(items))
	for _, item := range items {
		copied := *item
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memoryRepository) UpdateOrderStatus(ctx context.Context, id int, status Status) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}

	updated := *o
	updated.Status = status
	updated.UpdatedAt = time.Now()
	r.orders[id] = &updated

	copied := updated
	return &copied, nil
}
