package product

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// OptionAxis is one named variation dimension of a product, e.g.
// {Name: "Type", Values: ["With Skin", "Skinless"]}.
type OptionAxis struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// OptionAxes keeps axis order; it round-trips through a jsonb column in the
// persistent binding.
type OptionAxes []OptionAxis

func (o OptionAxes) Value() (driver.Value, error) {
	if o == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(o)
}

func (o *OptionAxes) Scan(src any) error {
	if src == nil {
		*o = OptionAxes{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return errors.New("options: unsupported scan source")
	}
	return json.Unmarshal(b, o)
}

type Product struct {
	ID                   int        `json:"id"`
	Name                 string     `json:"name"`
	Description          *string    `json:"description,omitempty"`
	Slug                 string     `json:"slug"`
	Price                float64    `json:"price"`
	ImageURL             *string    `json:"imageUrl,omitempty"`
	CategoryID           int        `json:"categoryId"`
	Featured             bool       `json:"featured"`
	InStock              bool       `json:"inStock"`
	MinimumOrderQuantity float64    `json:"minimumOrderQuantity"`
	Unit                 string     `json:"unit"`
	Options              OptionAxes `json:"options"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

type CreateProductParams struct {
	Name                 string
	Description          *string
	Slug                 string
	Price                float64
	ImageURL             *string
	CategoryID           int
	Featured             bool
	InStock              bool
	MinimumOrderQuantity float64
	Unit                 string
	Options              OptionAxes
}
