package user

import (
	"context"

	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines identity-facing business logic over the repository.
type Service interface {
	// Login upserts the user record from a verified identity event.
	Login(ctx context.Context, params UpsertUserParams) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// UpdateProfile applies a partial patch; ErrUserNotFound when absent.
	UpdateProfile(ctx context.Context, id string, params UpdateUserParams) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, params UpsertUserParams) (*User, error) {
	if params.ID == "" {
		return nil, ErrMissingUserID
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
		zap.String("user_id", params.ID),
	)

	u, err := s.repo.UpsertUser(ctx, params)
	if err != nil {
		log.Error("failed to upsert user on login", zap.Error(err))
		return nil, err
	}

	log.Info("identity refreshed")
	return u, nil
}

func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, ErrMissingUserID
	}
	return s.repo.GetUser(ctx, id)
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetUserByEmail(ctx, email)
}

func (s *service) UpdateProfile(ctx context.Context, id string, params UpdateUserParams) (*User, error) {
	if id == "" {
		return nil, ErrMissingUserID
	}

	u, err := s.repo.UpdateUser(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
