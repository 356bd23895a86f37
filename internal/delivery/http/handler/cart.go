package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/rohitkr5850/storefront/internal/delivery/http/request"
	"github.com/rohitkr5850/storefront/internal/delivery/http/response"
	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/usecase/cart"
	"github.com/rohitkr5850/storefront/internal/usecase/catalog"
)

// CartHandler handles HTTP requests for the shopping cart. The cart engine
// has no stock awareness; this handler clamps quantities against the catalog
// before handing items to it.
type CartHandler struct {
	cart    *cart.Service
	catalog *catalog.Service
	logger  *logger.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, catalogService *catalog.Service, log *logger.Logger) *CartHandler {
	return &CartHandler{
		cart:    cartService,
		catalog: catalogService,
		logger:  log,
	}
}

// AddItemRequest represents the request body for adding a product to the cart
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest represents the request body for setting a line's quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /api/v1/cart
// @Summary Get the current cart
// @Tags Cart
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Cart with derived totals"
// @Router /cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.cart.Cart())
}

// AddItem handles POST /api/v1/cart/items
// @Summary Add a product to the cart
// @Description Add quantity units of a product. The effective price is captured at add time. Quantity is clamped to available stock.
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Product and quantity"
// @Success 200 {object} map[string]interface{} "Updated cart"
// @Failure 400 {object} map[string]string "Invalid request or product out of stock"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.catalog.GetByID(r.Context(), productID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if product.Stock <= 0 {
		response.Error(w, http.StatusBadRequest, "Product is out of stock")
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	if quantity > product.Stock {
		quantity = product.Stock
	}

	updated := h.cart.AddToCart(r.Context(), product, quantity)
	response.Success(w, updated)
}

// UpdateItem handles PUT /api/v1/cart/items/:id
// @Summary Set a cart line's quantity
// @Description Set the absolute quantity of a line. Zero or negative removes the line. Unknown lines are a no-op.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item ID (UUID)"
// @Param item body UpdateItemRequest true "New quantity"
// @Success 200 {object} map[string]interface{} "Updated cart"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /cart/items/{id} [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	var req UpdateItemRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated := h.cart.UpdateQuantity(r.Context(), itemID, req.Quantity)
	response.Success(w, updated)
}

// RemoveItem handles DELETE /api/v1/cart/items/:id
// @Summary Remove a line from the cart
// @Description Removing an absent line is a no-op, not an error.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item ID (UUID)"
// @Success 200 {object} map[string]interface{} "Updated cart"
// @Failure 400 {object} map[string]string "Invalid cart item ID"
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	updated := h.cart.RemoveFromCart(r.Context(), itemID)
	response.Success(w, updated)
}

// Clear handles DELETE /api/v1/cart
// @Summary Empty the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Empty cart with zeroed totals"
// @Router /cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	updated := h.cart.Clear(r.Context())
	response.Success(w, updated)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *CartHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in cart handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
