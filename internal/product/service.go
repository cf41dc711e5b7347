package product

import (
	"context"

	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

// ListFilter mirrors the catalog query parameters: at most one of the
// filters applies, in the order category, search, featured.
type ListFilter struct {
	CategoryID *int
	Search     *string
	Featured   bool
}

type Service interface {
	// ListProducts dispatches to the matching repository filter.
	ListProducts(ctx context.Context, filter ListFilter) ([]*Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListProducts(ctx context.Context, filter ListFilter) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	switch {
	case filter.CategoryID != nil:
		log.Debug("listing by category", zap.Int("category_id", *filter.CategoryID))
		return s.repo.GetProductsByCategory(ctx, *filter.CategoryID)
	case filter.Search != nil && *filter.Search != "":
		log.Debug("listing by search", zap.String("query", *filter.Search))
		return s.repo.SearchProducts(ctx, *filter.Search)
	case filter.Featured:
		return s.repo.GetFeaturedProducts(ctx)
	default:
		return s.repo.GetProducts(ctx)
	}
}

func (s *service) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	return s.repo.GetProductBySlug(ctx, slug)
}

func (s *service) GetProductByID(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error) {
	return s.repo.CreateProduct(ctx, params)
}
