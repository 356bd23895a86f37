package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rohitkr5850/storefront/internal/delivery/http/request"
	"github.com/rohitkr5850/storefront/internal/delivery/http/response"
	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/usecase/catalog"
)

// CatalogHandler handles HTTP requests for browsing and managing products
type CatalogHandler struct {
	service *catalog.Service
	logger  *logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *catalog.Service, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  log,
	}
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	Title              string   `json:"title" validate:"required,min=1,max=255"`
	Description        string   `json:"description,omitempty"`
	Price              float64  `json:"price" validate:"required,gte=0"`
	DiscountPercentage float64  `json:"discount_percentage,omitempty"`
	Stock              int      `json:"stock" validate:"gte=0"`
	Brand              string   `json:"brand,omitempty"`
	Category           string   `json:"category" validate:"required"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
	Images             []string `json:"images,omitempty"`
	VendorID           string   `json:"vendor_id" validate:"required,uuid"`
	VendorName         string   `json:"vendor_name,omitempty"`
	Badges             []string `json:"badges,omitempty"`
}

// Search handles GET /api/v1/products
// @Summary Browse the catalog
// @Description Get the filtered, sorted product list. All filters are optional and combine as an intersection.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param search query string false "Substring match on title, description and category (case-insensitive)"
// @Param category query string false "Exact category match"
// @Param min_price query number false "Minimum price (inclusive)"
// @Param max_price query number false "Maximum price (inclusive)"
// @Param rating query number false "Minimum rating (inclusive)"
// @Param sort_by query string false "Sort mode: price-asc, price-desc, rating-desc, newest" default(newest)
// @Success 200 {object} map[string]interface{} "Filtered product list"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [get]
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ProductFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		MinPrice: request.GetFloatQuery(r, "min_price"),
		MaxPrice: request.GetFloatQuery(r, "max_price"),
		Rating:   request.GetFloatQuery(r, "rating"),
		SortBy:   domain.SortMode(q.Get("sort_by")),
	}

	products, err := h.service.Search(r.Context(), filter)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.List(w, products, len(products))
}

// GetByID handles GET /api/v1/products/:id
// @Summary Get a product by ID
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} map[string]interface{} "Product details"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [get]
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, product)
}

// Categories handles GET /api/v1/categories
// @Summary List catalog categories
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Distinct category tags"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories [get]
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, categories)
}

// ListByVendor handles GET /api/v1/vendor/products
// @Summary List a vendor's products
// @Tags Vendor
// @Accept json
// @Produce json
// @Param vendor_id query string true "Vendor ID (UUID)"
// @Success 200 {object} map[string]interface{} "Vendor's product list"
// @Failure 400 {object} map[string]string "Invalid vendor ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /vendor/products [get]
func (h *CatalogHandler) ListByVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, err := request.GetUUIDQuery(r, "vendor_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	products, err := h.service.ListByVendor(r.Context(), vendorID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.List(w, products, len(products))
}

// Create handles POST /api/v1/vendor/products
// @Summary Create a product
// @Tags Vendor
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product details"
// @Success 201 {object} map[string]interface{} "Product created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /vendor/products [post]
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := req.toProduct(uuid.New())
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := h.service.CreateProduct(r.Context(), product); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, product)
}

// Update handles PUT /api/v1/vendor/products/:id
// @Summary Update a product
// @Tags Vendor
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body ProductRequest true "Updated product details"
// @Success 200 {object} map[string]interface{} "Product updated successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /vendor/products/{id} [put]
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req ProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	existing, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	product, err := req.toProduct(id)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	product.Rating = existing.Rating
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()

	if err := h.service.UpdateProduct(r.Context(), product); err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, product)
}

// Delete handles DELETE /api/v1/vendor/products/:id
// @Summary Delete a product
// @Tags Vendor
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Product deleted successfully"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /vendor/products/{id} [delete]
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

func (r *ProductRequest) toProduct(id uuid.UUID) (*domain.Product, error) {
	vendorID, err := uuid.Parse(r.VendorID)
	if err != nil {
		return nil, err
	}

	return &domain.Product{
		ID:                 id,
		Title:              r.Title,
		Description:        r.Description,
		Price:              r.Price,
		DiscountPercentage: r.DiscountPercentage,
		Stock:              r.Stock,
		Brand:              r.Brand,
		Category:           r.Category,
		Thumbnail:          r.Thumbnail,
		Images:             r.Images,
		VendorID:           vendorID,
		VendorName:         r.VendorName,
		Badges:             r.Badges,
	}, nil
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *CatalogHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in catalog handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
