package products

import "time"

// Product is a sellable item with its per-branch stock level.
type Product struct {
	ID             int64     `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Barcode        *string   `json:"barcode,omitempty"`
	UnitPrice      float64   `json:"unit_price"`
	VATRate        float64   `json:"vat_rate"`
	IsActive       bool      `json:"is_active"`
	QuantityOnHand int64     `json:"quantity_on_hand"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
