package contact

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateMessage(ctx context.Context, params CreateMessageParams) (*Message, error) {
	m := &Message{
		RestaurantName: params.RestaurantName,
		ContactPerson:  params.ContactPerson,
		Email:          params.Email,
		PhoneNumber:    params.PhoneNumber,
		Message:        params.Message,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO contact_messages (restaurant_name, contact_person, email, phone_number, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, params.RestaurantName, params.ContactPerson, params.Email, params.PhoneNumber, params.Message).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	return m, nil
}
