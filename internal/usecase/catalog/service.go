// Package catalog provides the product filtering/sorting pipeline and the
// catalog service the storefront browses through.
package catalog

import (
	"context"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/pkg/validator"
)

// SearchCache defines the interface for caching filtered catalog views
type SearchCache interface {
	GetSearchResults(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	SetSearchResults(ctx context.Context, filter domain.ProductFilter, products []*domain.Product) error
	InvalidateSearchResults(ctx context.Context) error
}

// Service handles catalog business logic: filtered browsing backed by the
// search cache, and the vendor-facing product management that invalidates it.
type Service struct {
	repo     domain.ProductRepository
	cache    SearchCache
	validate *validatorv10.Validate
	logger   *logger.Logger
}

// NewService creates a new catalog service
func NewService(repo domain.ProductRepository, cache SearchCache, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		validate: validator.Get(),
		logger:   log,
	}
}

// Search returns the filtered, sorted catalog view for the given filter
func (s *Service) Search(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	products, err := s.cache.GetSearchResults(ctx, filter)
	if err == nil {
		s.logger.Debugf("Cache hit for catalog search %+v", filter)
		return products, nil
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", err)
		return nil, err
	}

	result := ApplyFilter(all, filter)

	if err := s.cache.SetSearchResults(ctx, filter, result); err != nil {
		s.logger.Warnf("Failed to cache catalog search results: %v", err)
	}

	return result, nil
}

// GetByID retrieves a product by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Product not found: %s", id)
		} else {
			s.logger.Error("Failed to get product", err)
		}
		return nil, err
	}

	return product, nil
}

// Categories returns the distinct category tags in the catalog
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", err)
		return nil, err
	}
	return categories, nil
}

// ListByVendor retrieves all products belonging to a vendor
func (s *Service) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*domain.Product, error) {
	products, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		s.logger.Error("Failed to list vendor products", err)
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a new product to the catalog
func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) error {
	if err := s.validate.Struct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return domain.ErrInvalidInput
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", err)
		return err
	}

	s.invalidateSearch(ctx)

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"title":      product.Title,
	}).Info("Product created successfully")

	return nil
}

// UpdateProduct updates an existing product
func (s *Service) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if err := s.validate.Struct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", err)
		return err
	}

	s.invalidateSearch(ctx)

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"title":      product.Title,
	}).Info("Product updated successfully")

	return nil
}

// DeleteProduct removes a product from the catalog
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete product", err)
		return err
	}

	s.invalidateSearch(ctx)

	s.logger.WithFields(map[string]interface{}{
		"product_id": id,
	}).Info("Product deleted successfully")

	return nil
}

// invalidateSearch drops all cached catalog views. Stale views would show
// products that no longer exist or miss ones just added.
func (s *Service) invalidateSearch(ctx context.Context) {
	if err := s.cache.InvalidateSearchResults(ctx); err != nil {
		s.logger.Warnf("Failed to invalidate catalog search cache: %v", err)
	}
}
