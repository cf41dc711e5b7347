package user

import (
	"context"
	"errors"
	"testing"

	"halalpoultry-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUser(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) UpsertUser(ctx context.Context, params UpsertUserParams) (*User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*User, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

// --- Tests ---

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		params := UpsertUserParams{ID: "user-1", Email: utils.StrPtr("owner@resto.com")}
		expected := &User{ID: "user-1"}
		mockRepo.On("UpsertUser", ctx, params).Return(expected, nil)

		res, err := svc.Login(ctx, params)
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
		mockRepo.AssertExpectations(t)
	})

	t.Run("MissingID", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Login(ctx, UpsertUserParams{})
		assert.ErrorIs(t, err, ErrMissingUserID)
		mockRepo.AssertNotCalled(t, "UpsertUser")
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("UpsertUser", ctx, mock.Anything).Return(nil, errors.New("db error"))

		_, err := svc.Login(ctx, UpsertUserParams{ID: "user-1"})
		assert.Error(t, err)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		params := UpdateUserParams{PhoneNumber: utils.StrPtr("050-1111111")}
		expected := &User{ID: "user-1", PhoneNumber: params.PhoneNumber}
		mockRepo.On("UpdateUser", ctx, "user-1", params).Return(expected, nil)

		res, err := svc.UpdateProfile(ctx, "user-1", params)
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
	})

	t.Run("NotFound_MappedToError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("UpdateUser", ctx, "missing", mock.Anything).Return(nil, nil)

		_, err := svc.UpdateProfile(ctx, "missing", UpdateUserParams{})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingID", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.GetUser(ctx, "")
		assert.ErrorIs(t, err, ErrMissingUserID)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		expected := &User{ID: "user-1"}
		mockRepo.On("GetUser", ctx, "user-1").Return(expected, nil)

		res, err := svc.GetUser(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
	})
}
