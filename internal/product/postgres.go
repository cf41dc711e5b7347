package product

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

const productColumns = `
	id,
	name,
	description,
	slug,
	price,
	image_url,
	category_id,
	featured,
	in_stock,
	minimum_order_quantity,
	unit,
	options,
	created_at,
	updated_at
`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Slug,
		&p.Price,
		&p.ImageURL,
		&p.CategoryID,
		&p.Featured,
		&p.InStock,
		&p.MinimumOrderQuantity,
		&p.Unit,
		&p.Options,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "repository"))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("product query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	out := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("product scan failed", zap.Error(err))
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postgresRepository) GetProducts(ctx context.Context) ([]*Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id ASC`)
}

func (r *postgresRepository) GetProductsByCategory(ctx context.Context, categoryID int) ([]*Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE category_id = $1 ORDER BY id ASC`, categoryID)
}

func (r *postgresRepository) GetFeaturedProducts(ctx context.Context) ([]*Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE featured ORDER BY id ASC`)
}

func (r *postgresRepository) SearchProducts(ctx context.Context, query string) ([]*Product, error) {
	pattern := "%" + query + "%"
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE name ILIKE $1 OR description ILIKE $1
		 ORDER BY id ASC`, pattern)
}

func (r *postgresRepository) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	return scanProduct(row)
}

func (r *postgresRepository) GetProductByID(ctx context.Context, id int) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (r *postgresRepository) CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.String("slug", params.Slug),
	)

	query := `
	INSERT INTO products (
		name, description, slug, price, image_url, category_id,
		featured, in_stock, minimum_order_quantity, unit, options
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING ` + productColumns

	row := r.db.QueryRowContext(ctx, query,
		params.Name,
		params.Description,
		params.Slug,
		params.Price,
		params.ImageURL,
		params.CategoryID,
		params.Featured,
		params.InStock,
		params.MinimumOrderQuantity,
		params.Unit,
		params.Options,
	)

	p, err := scanProduct(row)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return p, nil
}
