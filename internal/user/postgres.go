package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"halalpoultry-be/internal/logger"

	"go.uber.org/zap"
)

// postgresRepository is the persistent binding of the same contract the
// in-memory repository serves. Schema lives in migrations/0001_init.sql.
type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

const userColumns = `
	id,
	email,
	first_name,
	last_name,
	profile_image_url,
	is_restaurant,
	restaurant_name,
	restaurant_address,
	phone_number,
	created_at,
	updated_at
`

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.ProfileImageURL,
		&u.IsRestaurant,
		&u.RestaurantName,
		&u.RestaurantAddress,
		&u.PhoneNumber,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepository) GetUser(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	// Exact, case-sensitive match to stay contract-identical with the
	// in-memory repository.
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 ORDER BY created_at ASC LIMIT 1`, email)
	return scanUser(row)
}

func (r *postgresRepository) UpsertUser(ctx context.Context, params UpsertUserParams) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertUser"),
		zap.String("user_id", params.ID),
	)

	query := `
	INSERT INTO users (
		id, email, first_name, last_name, profile_image_url,
		is_restaurant, restaurant_name, restaurant_address, phone_number
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
		email = EXCLUDED.email,
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		profile_image_url = EXCLUDED.profile_image_url,
		is_restaurant = EXCLUDED.is_restaurant,
		restaurant_name = EXCLUDED.restaurant_name,
		restaurant_address = EXCLUDED.restaurant_address,
		phone_number = EXCLUDED.phone_number,
		updated_at = NOW()
	RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query,
		params.ID,
		params.Email,
		params.FirstName,
		params.LastName,
		params.ProfileImageURL,
		params.IsRestaurant,
		params.RestaurantName,
		params.RestaurantAddress,
		params.PhoneNumber,
	)

	u, err := scanUser(row)
	if err != nil {
		log.Error("failed to upsert user", zap.Error(err))
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*User, error) {
	set := []string{}
	args := []any{}

	add := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if params.Email != nil {
		add("email", *params.Email)
	}
	if params.FirstName != nil {
		add("first_name", *params.FirstName)
	}
	if params.LastName != nil {
		add("last_name", *params.LastName)
	}
	if params.ProfileImageURL != nil {
		add("profile_image_url", *params.ProfileImageURL)
	}
	if params.IsRestaurant != nil {
		add("is_restaurant", *params.IsRestaurant)
	}
	if params.RestaurantName != nil {
		add("restaurant_name", *params.RestaurantName)
	}
	if params.RestaurantAddress != nil {
		add("restaurant_address", *params.RestaurantAddress)
	}
	if params.PhoneNumber != nil {
		add("phone_number", *params.PhoneNumber)
	}

	if len(set) == 0 {
		// Empty patch still refreshes updated_at, matching the in-memory merge.
		return r.touchUser(ctx, id)
	}

	set = append(set, "updated_at = NOW()")
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args)+1, userColumns,
	)
	args = append(args, id)

	return scanUser(r.db.QueryRowContext(ctx, query, args...))
}

func (r *postgresRepository) touchUser(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE users SET updated_at = NOW() WHERE id = $1 RETURNING `+userColumns, id)
	return scanUser(row)
}
