package contact

import "time"

// Message is an inbox entry from the contact form. The application only ever
// appends; nothing reads it back over the API.
type Message struct {
	ID             int       `json:"id"`
	RestaurantName string    `json:"restaurantName"`
	ContactPerson  string    `json:"contactPerson"`
	Email          string    `json:"email"`
	PhoneNumber    *string   `json:"phoneNumber,omitempty"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CreateMessageParams struct {
	RestaurantName string
	ContactPerson  string
	Email          string
	PhoneNumber    *string
	Message        string
}
