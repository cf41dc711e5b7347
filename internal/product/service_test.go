package product

import (
	"context"
	"testing"

	"halalpoultry-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProducts(ctx context.Context) ([]*Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetProductsByCategory(ctx context.Context, categoryID int) ([]*Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) GetProductByID(ctx context.Context, id int) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) GetFeaturedProducts(ctx context.Context) ([]*Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) SearchProducts(ctx context.Context, query string) ([]*Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func TestService_ListProducts(t *testing.T) {
	ctx := context.Background()
	sample := []*Product{{ID: 1, Slug: "whole-chicken"}}

	t.Run("CategoryFilter_Wins", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		catID := 1
		mockRepo.On("GetProductsByCategory", ctx, 1).Return(sample, nil)

		res, err := svc.ListProducts(ctx, ListFilter{CategoryID: &catID, Featured: true})
		assert.NoError(t, err)
		assert.Equal(t, sample, res)
		mockRepo.AssertNotCalled(t, "GetFeaturedProducts")
	})

	t.Run("SearchFilter", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("SearchProducts", ctx, "wing").Return(sample, nil)

		res, err := svc.ListProducts(ctx, ListFilter{Search: utils.StrPtr("wing")})
		assert.NoError(t, err)
		assert.Equal(t, sample, res)
	})

	t.Run("EmptySearch_FallsThrough", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("GetProducts", ctx).Return(sample, nil)

		res, err := svc.ListProducts(ctx, ListFilter{Search: utils.StrPtr("")})
		assert.NoError(t, err)
		assert.Equal(t, sample, res)
	})

	t.Run("Featured", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("GetFeaturedProducts", ctx).Return(sample, nil)

		res, err := svc.ListProducts(ctx, ListFilter{Featured: true})
		assert.NoError(t, err)
		assert.Equal(t, sample, res)
	})

	t.Run("Unfiltered", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("GetProducts", ctx).Return(sample, nil)

		res, err := svc.ListProducts(ctx, ListFilter{})
		assert.NoError(t, err)
		assert.Equal(t, sample, res)
	})
}
