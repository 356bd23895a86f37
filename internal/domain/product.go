package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog entry in the marketplace
type Product struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title" validate:"required,min=1,max=255"`
	Description        string    `json:"description"`
	Price              float64   `json:"price" validate:"gte=0"`
	DiscountPercentage float64   `json:"discount_percentage,omitempty" validate:"gte=0,lte=100"`
	Rating             float64   `json:"rating" validate:"gte=0,lte=5"`
	Stock              int       `json:"stock" validate:"gte=0"`
	Brand              string    `json:"brand"`
	Category           string    `json:"category" validate:"required"`
	Thumbnail          string    `json:"thumbnail"`
	Images             []string  `json:"images,omitempty"`
	VendorID           uuid.UUID `json:"vendor_id"`
	VendorName         string    `json:"vendor_name"`
	Badges             []string  `json:"badges,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// EffectivePrice returns the price after applying the product's discount
// percentage, if any.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPercentage > 0 {
		return p.Price * (1 - p.DiscountPercentage/100)
	}
	return p.Price
}

// ProductRepository defines the interface for catalog data access
type ProductRepository interface {
	// Create adds a new product to the catalog
	Create(ctx context.Context, product *Product) error

	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// List retrieves the full product collection in insertion order
	List(ctx context.Context) ([]*Product, error)

	// ListByVendor retrieves all products belonging to a vendor
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*Product, error)

	// Update updates an existing product
	Update(ctx context.Context, product *Product) error

	// Delete removes a product from the catalog
	Delete(ctx context.Context, id uuid.UUID) error

	// Categories returns the distinct category tags in the catalog
	Categories(ctx context.Context) ([]string, error)
}
