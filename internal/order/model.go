package order

import (
	"time"

	"halalpoultry-be/internal/cart"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus rejects anything outside the known status set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

// legalTransitions is the allowed status graph: cancellation is only possible
// before shipping, and completed/cancelled are terminal.
var legalTransitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusCompleted},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID              int       `json:"id"`
	UserID          string    `json:"userId"`
	Status          Status    `json:"status"`
	Total           float64   `json:"total"`
	ShippingAddress *string   `json:"shippingAddress,omitempty"`
	BillingAddress  *string   `json:"billingAddress,omitempty"`
	PaymentMethod   *string   `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// OrderItem snapshots the product price at order time; it never follows the
// live product price.
type OrderItem struct {
	ID              int                  `json:"id"`
	OrderID         int                  `json:"orderId"`
	ProductID       int                  `json:"productId"`
	Quantity        float64              `json:"quantity"`
	Price           float64              `json:"price"`
	SelectedOptions cart.SelectedOptions `json:"selectedOptions,omitempty"`
}

type CreateOrderParams struct {
	UserID          string
	Status          Status
	Total           float64
	ShippingAddress *string
	BillingAddress  *string
	PaymentMethod   *string
}

type CreateOrderItemParams struct {
	ProductID       int
	Quantity        float64
	Price           float64
	SelectedOptions cart.SelectedOptions
}
