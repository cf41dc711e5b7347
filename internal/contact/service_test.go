package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateMessage(ctx context.Context, params CreateMessageParams) (*Message, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Message), args.Error(1)
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	valid := CreateMessageParams{
		RestaurantName: "Spice Garden",
		ContactPerson:  "Ayesha Khan",
		Email:          "ayesha@spicegarden.example",
		Message:        "Looking for weekly bulk chicken supply.",
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("CreateMessage", ctx, valid).Return(&Message{ID: 1, RestaurantName: valid.RestaurantName}, nil)

		m, err := svc.Submit(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, 1, m.ID)
		repo.AssertExpectations(t)
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		for _, params := range []CreateMessageParams{
			{ContactPerson: "A", Email: "a@b.c", Message: "hi"},
			{RestaurantName: "R", Email: "a@b.c", Message: "hi"},
			{RestaurantName: "R", ContactPerson: "A", Message: "hi"},
			{RestaurantName: "R", ContactPerson: "A", Email: "a@b.c"},
			{RestaurantName: "   ", ContactPerson: "A", Email: "a@b.c", Message: "hi"},
		} {
			_, err := svc.Submit(ctx, params)
			assert.ErrorIs(t, err, ErrMissingFields)
		}
		repo.AssertNotCalled(t, "CreateMessage")
	})
}
