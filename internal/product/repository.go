package product

import (
	"context"
	"strings"
	"sync"
	"time"

	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// GetProducts returns all products in insertion order.
	GetProducts(ctx context.Context) ([]*Product, error)
	// GetProductsByCategory filters by exact category ID; empty slice when
	// nothing matches.
	GetProductsByCategory(ctx context.Context, categoryID int) ([]*Product, error)
	// GetProductBySlug returns nil, nil on a miss.
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	GetFeaturedProducts(ctx context.Context) ([]*Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error)
	// SearchProducts matches the query case-insensitively as a substring of
	// name or description. A missing description never matches.
	SearchProducts(ctx context.Context, query string) ([]*Product, error)
}

type memoryRepository struct {
	mu       sync.RWMutex
	products map[int]*Product
	order    []int
	nextID   int
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		products: make(map[int]*Product),
		nextID:   1,
	}
}

func (r *memoryRepository) all() []*Product {
	out := make([]*Product, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.products[id]
		out = append(out, &copied)
	}
	return out
}

func (r *memoryRepository) GetProducts(ctx context.Context) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.all(), nil
}

func (r *memoryRepository) GetProductsByCategory(ctx context.Context, categoryID int) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*Product{}
	for _, p := range r.all() {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryRepository) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.products[id].Slug == slug {
			copied := *r.products[id]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) GetProductByID(ctx context.Context, id int) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *memoryRepository) GetFeaturedProducts(ctx context.Context) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*Product{}
	for _, p := range r.all() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryRepository) CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	p := &Product{
		ID:                   r.nextID,
		Name:                 params.Name,
		Description:          params.Description,
		Slug:                 params.Slug,
		Price:                params.Price,
		ImageURL:             params.ImageURL,
		CategoryID:           params.CategoryID,
		Featured:             params.Featured,
		InStock:              params.InStock,
		MinimumOrderQuantity: params.MinimumOrderQuantity,
		Unit:                 params.Unit,
		Options:              params.Options,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	r.nextID++
	r.products[p.ID] = p
	r.order = append(r.order, p.ID)

	logger.FromCtx(ctx).Debug("product created",
		zap.Int("product_id", p.ID),
		zap.String("slug", p.Slug),
	)

	copied := *p
	return &copied, nil
}

func (r *memoryRepository) SearchProducts(ctx context.Context, query string) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(query)
	out := []*Product{}
	for _, p := range r.all() {
		if strings.Contains(strings.ToLower(p.Name), lowered) {
			out = append(out, p)
			continue
		}
		if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), lowered) {
			out = append(out, p)
		}
	}
	return out, nil
}
