package user

import (
	"context"
	"sync"
	"time"

	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// GetUser returns nil, nil when no user carries the ID.
	GetUser(ctx context.Context, id string) (*User, error)
	// GetUserByEmail performs a case-sensitive exact match over all users,
	// returning the first hit in insertion order, or nil, nil.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// UpsertUser overwrites an existing record (preserving CreatedAt) or
	// creates a new one. It never fails on valid-shaped input.
	UpsertUser(ctx context.Context, params UpsertUserParams) (*User, error)
	// UpdateUser merges the patch onto the existing record; nil, nil when the
	// user does not exist.
	UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*User, error)
}

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
	order []string
}

func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]*User)}
}

func (r *memoryRepository) GetUser(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *memoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		u := r.users[id]
		if u.Email != nil && *u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) UpsertUser(ctx context.Context, params UpsertUserParams) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertUser"),
		zap.String("user_id", params.ID),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	createdAt := now
	if existing, ok := r.users[params.ID]; ok {
		createdAt = existing.CreatedAt
	} else {
		r.order = append(r.order, params.ID)
	}

	u := &User{
		ID:                params.ID,
		Email:             params.Email,
		FirstName:         params.FirstName,
		LastName:          params.LastName,
		ProfileImageURL:   params.ProfileImageURL,
		IsRestaurant:      params.IsRestaurant,
		RestaurantName:    params.RestaurantName,
		RestaurantAddress: params.RestaurantAddress,
		PhoneNumber:       params.PhoneNumber,
		CreatedAt:         createdAt,
		UpdatedAt:         now,
	}
	r.users[params.ID] = u

	log.Debug("user upserted")

	copied := *u
	return &copied, nil
}

func (r *memoryRepository) UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	updated := *existing
	if params.Email != nil {
		updated.Email = params.Email
	}
	if params.FirstName != nil {
		updated.FirstName = params.FirstName
	}
	if params.LastName != nil {
		updated.LastName = params.LastName
	}
	if params.ProfileImageURL != nil {
		updated.ProfileImageURL = params.ProfileImageURL
	}
	if params.IsRestaurant != nil {
		updated.IsRestaurant = *params.IsRestaurant
	}
	if params.RestaurantName != nil {
		updated.RestaurantName = params.RestaurantName
	}
	if params.RestaurantAddress != nil {
		updated.RestaurantAddress = params.RestaurantAddress
	}
	if params.PhoneNumber != nil {
		updated.PhoneNumber = params.PhoneNumber
	}
	updated.ID = existing.ID
	updated.UpdatedAt = time.Now()

	r.users[id] = &updated

	copied := updated
	return &copied, nil
}
