package domain

import (
	"github.com/google/uuid"
)

// CartItem is one line in the cart: a distinct product, its quantity and
// the unit price captured at add-time. The price is locked when the line is
// created and never recomputed, even if the product's price changes later.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// Cart aggregates the line items and the totals derived from them.
// Items are kept in insertion order of distinct products, with at most one
// line per product. The derived fields are always a pure function of Items.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	Subtotal   float64    `json:"subtotal"`
	Tax        float64    `json:"tax"`
	Shipping   float64    `json:"shipping"`
	Total      float64    `json:"total"`
}
