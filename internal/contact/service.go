package contact

import (
	"context"
	"errors"
	"strings"

	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

var ErrMissingFields = errors.New("restaurant name, contact person, email, and message are required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, params CreateMessageParams) (*Message, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Submit"),
	)

	if strings.TrimSpace(params.RestaurantName) == "" ||
		strings.TrimSpace(params.ContactPerson) == "" ||
		strings.TrimSpace(params.Email) == "" ||
		strings.TrimSpace(params.Message) == "" {
		return nil, ErrMissingFields
	}

	m, err := s.repo.CreateMessage(ctx, params)
	if err != nil {
		log.Error("store contact message failed", zap.Error(err))
		return nil, err
	}

	log.Info("contact message received",
		zap.Int("message_id", m.ID),
		zap.String("restaurant", m.RestaurantName),
	)
	return m, nil
}
