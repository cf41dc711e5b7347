package order

import (
	"context"
	"database/sql"
	"fmt"

	"halalpoultry-be/internal/cart"
	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateOrder(ctx context.Context, params CreateOrderParams, items []CreateOrderItemParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.String("user_id", params.UserID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("begin tx failed", zap.Error(err))
		return nil, fmt.Errorf("begin create order tx: %w", err)
	}
	defer tx.Rollback()

	status := params.Status
	if status == "" {
		status = StatusPending
	}

	o := &Order{
		UserID:          params.UserID,
		Status:          status,
		Total:           params.Total,
		ShippingAddress: params.ShippingAddress,
		BillingAddress:  params.BillingAddress,
		PaymentMethod:   params.PaymentMethod,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, status, total, shipping_address, billing_address, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, params.UserID, string(status), params.Total, params.ShippingAddress, params.BillingAddress, params.PaymentMethod).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("insert order failed", zap.Error(err))
		return nil, fmt.Errorf("insert order: %w", err)
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price, selected_options)
			VALUES ($1, $2, $3, $4, $5)
		`, o.ID, item.ProductID, item.Quantity, item.Price, item.SelectedOptions)
		if err != nil {
			log.Error("insert order item failed", zap.Error(err), zap.Int("product_id", item.ProductID))
			return nil, fmt.Errorf("insert order item: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, params.UserID)
	if err != nil {
		log.Error("clear cart failed", zap.Error(err))
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit failed", zap.Error(err))
		return nil, fmt.Errorf("commit create order tx: %w", err)
	}

	log.Info("order created", zap.Int("order_id", o.ID), zap.Int("items", len(items)))
	return o, nil
}

func (r *postgresRepository) GetOrdersByUser(ctx context.Context, userID string) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, status, total, shipping_address, billing_address, payment_method, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	out := []*Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *postgresRepository) GetOrderByID(ctx context.Context, id int) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, status, total, shipping_address, billing_address, payment_method, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id)

	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepository) GetOrderItems(ctx context.Context, orderID int) ([]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, price, selected_options
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	out := []*OrderItem{}
	for rows.Next() {
		item := &OrderItem{}
		var opts cart.SelectedOptions
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price, &opts); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		item.SelectedOptions = opts
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *postgresRepository) UpdateOrderStatus(ctx context.Context, id int, status Status) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, status, total, shipping_address, billing_address, payment_method, created_at, updated_at
	`, id, string(status))

	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	o := &Order{}
	var status string
	err := row.Scan(&o.ID, &o.UserID, &status, &o.Total, &o.ShippingAddress, &o.BillingAddress, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Status = Status(status)
	return o, nil
}
