package contact

import (
	"context"
	"sync"
	"time"
)

type Repository interface {
	// CreateMessage assigns an identifier and creation timestamp, stores the
	// message, and returns it. It never fails for valid input.
	CreateMessage(ctx context.Context, params CreateMessageParams) (*Message, error)
}

type memoryRepository struct {
	mu       sync.Mutex
	messages []*Message
	nextID   int
}

func NewMemoryRepository() Repository {
	return &memoryRepository{nextID: 1}
}

func (r *memoryRepository) CreateMessage(ctx context.Context, params CreateMessageParams) (*Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := &Message{
		ID:             r.nextID,
		RestaurantName: params.RestaurantName,
		ContactPerson:  params.ContactPerson,
		Email:          params.Email,
		PhoneNumber:    params.PhoneNumber,
		Message:        params.Message,
		CreatedAt:      time.Now(),
	}
	r.nextID++
	r.messages = append(r.messages, m)

	copied := *m
	return &copied, nil
}
