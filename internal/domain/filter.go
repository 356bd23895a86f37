package domain

// SortMode selects the ordering of a filtered catalog view
type SortMode string

const (
	SortPriceAsc   SortMode = "price-asc"
	SortPriceDesc  SortMode = "price-desc"
	SortRatingDesc SortMode = "rating-desc"
	SortNewest     SortMode = "newest"
)

// ProductFilter describes a desired catalog view. Absent fields mean
// "no constraint on that dimension"; a zero-value filter matches everything.
type ProductFilter struct {
	Search   string   `json:"search,omitempty"`
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	SortBy   SortMode `json:"sort_by,omitempty"`
}
