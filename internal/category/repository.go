package category

import (
	"context"
	"sync"

	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// GetCategories returns all categories in insertion order.
	GetCategories(ctx context.Context) ([]*Category, error)
	// GetCategoryBySlug returns nil, nil on a miss.
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	GetCategoryByID(ctx context.Context, id int) (*Category, error)
	// CreateCategory assigns the next serial identifier. The store does not
	// enforce slug uniqueness; callers must avoid collisions.
	CreateCategory(ctx context.Context, params CreateCategoryParams) (*Category, error)
}

type memoryRepository struct {
	mu         sync.RWMutex
	categories map[int]*Category
	order      []int
	nextID     int
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		categories: make(map[int]*Category),
		nextID:     1,
	}
}

func (r *memoryRepository) GetCategories(ctx context.Context) ([]*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Category, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.categories[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.categories[id].Slug == slug {
			copied := *r.categories[id]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) GetCategoryByID(ctx context.Context, id int) (*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *memoryRepository) CreateCategory(ctx context.Context, params CreateCategoryParams) (*Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &Category{
		ID:          r.nextID,
		Name:        params.Name,
		Description: params.Description,
		Slug:        params.Slug,
	}
	r.nextID++
	r.categories[c.ID] = c
	r.order = append(r.order, c.ID)

	logger.FromCtx(ctx).Debug("category created",
		zap.Int("category_id", c.ID),
		zap.String("slug", c.Slug),
	)

	copied := *c
	return &copied, nil
}
