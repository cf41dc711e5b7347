package user

import "time"

// User identity is issued by the external identity provider; the store never
// generates user IDs.
type User struct {
	ID                string    `json:"id"`
	Email             *string   `json:"email,omitempty"`
	FirstName         *string   `json:"firstName,omitempty"`
	LastName          *string   `json:"lastName,omitempty"`
	ProfileImageURL   *string   `json:"profileImageUrl,omitempty"`
	IsRestaurant      bool      `json:"isRestaurant"`
	RestaurantName    *string   `json:"restaurantName,omitempty"`
	RestaurantAddress *string   `json:"restaurantAddress,omitempty"`
	PhoneNumber       *string   `json:"phoneNumber,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type UpsertUserParams struct {
	ID                string
	Email             *string
	FirstName         *string
	LastName          *string
	ProfileImageURL   *string
	IsRestaurant      bool
	RestaurantName    *string
	RestaurantAddress *string
	PhoneNumber       *string
}

// UpdateUserParams is a partial patch: nil fields are left untouched.
type UpdateUserParams struct {
	Email             *string
	FirstName         *string
	LastName          *string
	ProfileImageURL   *string
	IsRestaurant      *bool
	RestaurantName    *string
	RestaurantAddress *string
	PhoneNumber       *string
}
