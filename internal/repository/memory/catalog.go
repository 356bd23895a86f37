// Package memory implements the repository ports over in-process data.
// The storefront runs against a seeded mock dataset rather than a real
// backend; these stores stand in for it.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rohitkr5850/storefront/internal/domain"
)

// CatalogRepository is an in-memory product store seeded with the mock
// dataset. Insertion order is preserved so the filter pipeline's stable
// sorts are reproducible.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []*domain.Product
}

// NewCatalogRepository creates a catalog store seeded with the mock dataset
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{products: seedProducts()}
}

// NewEmptyCatalogRepository creates an unseeded catalog store (used in tests)
func NewEmptyCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Create adds a new product to the catalog
func (r *CatalogRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == product.ID {
			return domain.ErrAlreadyExists
		}
	}

	cp := *product
	r.products = append(r.products, &cp)
	return nil
}

// GetByID retrieves a product by ID
func (r *CatalogRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List retrieves the full product collection in insertion order
func (r *CatalogRepository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// ListByVendor retrieves all products belonging to a vendor
func (r *CatalogRepository) ListByVendor(_ context.Context, vendorID uuid.UUID) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Product
	for _, p := range r.products {
		if p.VendorID == vendorID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Update updates an existing product
func (r *CatalogRepository) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			cp := *product
			cp.CreatedAt = p.CreatedAt
			cp.UpdatedAt = time.Now()
			r.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete removes a product from the catalog
func (r *CatalogRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Categories returns the distinct category tags in the catalog, sorted
func (r *CatalogRepository) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, p := range r.products {
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}
