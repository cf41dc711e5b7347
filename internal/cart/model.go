package cart

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// SelectedOptions maps an option axis name to the value the buyer chose,
// e.g. {"Type": "Skinless"}. It round-trips through jsonb in the persistent
// binding.
type SelectedOptions map[string]string

func (s SelectedOptions) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *SelectedOptions) Scan(src any) error {
	if src == nil {
		*s = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return errors.New("selected options: unsupported scan source")
	}
	return json.Unmarshal(b, s)
}

// CartItem is unique per (UserID, ProductID) within a user's cart.
type CartItem struct {
	ID              int             `json:"id"`
	UserID          string          `json:"userId"`
	ProductID       int             `json:"productId"`
	Quantity        float64         `json:"quantity"`
	SelectedOptions SelectedOptions `json:"selectedOptions,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type AddToCartParams struct {
	UserID          string
	ProductID       int
	Quantity        float64
	SelectedOptions SelectedOptions
}
