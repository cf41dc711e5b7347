package category

import "context"

type Service interface {
	GetCategories(ctx context.Context) ([]*Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	GetCategoryByID(ctx context.Context, id int) (*Category, error)
	CreateCategory(ctx context.Context, params CreateCategoryParams) (*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.GetCategories(ctx)
}

func (s *service) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	return s.repo.GetCategoryBySlug(ctx, slug)
}

func (s *service) GetCategoryByID(ctx context.Context, id int) (*Category, error) {
	return s.repo.GetCategoryByID(ctx, id)
}

func (s *service) CreateCategory(ctx context.Context, params CreateCategoryParams) (*Category, error) {
	return s.repo.CreateCategory(ctx, params)
}
