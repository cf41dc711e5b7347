package cart

import (
	"context"
	"database/sql"

	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

const cartColumns = `
	id,
	user_id,
	product_id,
	quantity,
	selected_options,
	created_at,
	updated_at
`

func scanCartItem(row interface{ Scan(...any) error }) (*CartItem, error) {
	var item CartItem
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.SelectedOptions,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepository) GetCartItems(ctx context.Context, userID string) ([]*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCartItems"),
		zap.String("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cartColumns+` FROM cart_items WHERE user_id = $1 ORDER BY id ASC`, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	out := []*CartItem{}
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postgresRepository) AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddToCart"),
		zap.String("user_id", params.UserID),
		zap.Int("product_id", params.ProductID),
	)

	// Overwrite-on-conflict keeps the same item identifier and created_at,
	// matching the in-memory contract.
	query := `
	INSERT INTO cart_items (user_id, product_id, quantity, selected_options)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, product_id) DO UPDATE SET
		quantity = EXCLUDED.quantity,
		selected_options = EXCLUDED.selected_options,
		updated_at = NOW()
	RETURNING ` + cartColumns

	row := r.db.QueryRowContext(ctx, query,
		params.UserID, params.ProductID, params.Quantity, params.SelectedOptions)

	item, err := scanCartItem(row)
	if err != nil {
		log.Error("failed to add to cart", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *postgresRepository) UpdateCartItem(ctx context.Context, userID string, productID int, quantity float64) (*CartItem, error) {
	query := `
	UPDATE cart_items
	SET quantity = $1, updated_at = NOW()
	WHERE user_id = $2 AND product_id = $3
	RETURNING ` + cartColumns

	row := r.db.QueryRowContext(ctx, query, quantity, userID, productID)
	return scanCartItem(row)
}

func (r *postgresRepository) RemoveFromCart(ctx context.Context, userID string, productID int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *postgresRepository) ClearCart(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}
