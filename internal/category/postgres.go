package category

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

func (r *postgresRepository) GetCategories(ctx context.Context) ([]*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCategories"),
	)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, slug FROM categories ORDER BY id ASC`)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	out := []*Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Slug); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postgresRepository) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, slug FROM categories WHERE slug = $1`, slug).
		Scan(&c.ID, &c.Name, &c.Description, &c.Slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) GetCategoryByID(ctx context.Context, id int) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, slug FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) CreateCategory(ctx context.Context, params CreateCategoryParams) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, description, slug)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, slug
	`, params.Name, params.Description, params.Slug).
		Scan(&c.ID, &c.Name, &c.Description, &c.Slug)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create category", zap.Error(err))
		return nil, err
	}
	return &c, nil
}
