package handler

import (
	"errors"
	"net/http"

	"github.com/rohitkr5850/storefront/internal/delivery/http/request"
	"github.com/rohitkr5850/storefront/internal/delivery/http/response"
	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/usecase/auth"
	"github.com/rohitkr5850/storefront/internal/usecase/cart"
	"github.com/rohitkr5850/storefront/internal/usecase/order"
)

// OrderHandler handles HTTP requests for checkout and order tracking
type OrderHandler struct {
	orders *order.Service
	cart   *cart.Service
	auth   *auth.Service
	logger *logger.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service, cartService *cart.Service, authService *auth.Service, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orderService,
		cart:   cartService,
		auth:   authService,
		logger: log,
	}
}

// CheckoutRequest represents the request body for placing an order
type CheckoutRequest struct {
	ShippingAddress domain.Address `json:"shipping_address" validate:"required"`
	PaymentMethod   string         `json:"payment_method" validate:"required"`
}

// Checkout handles POST /api/v1/checkout
// @Summary Place an order from the current cart
// @Description Turn the cart into a pending order with the cart's totals carried over unchanged, then empty the cart.
// @Tags Orders
// @Accept json
// @Produce json
// @Param checkout body CheckoutRequest true "Shipping address and payment method"
// @Success 201 {object} map[string]interface{} "Created order"
// @Failure 400 {object} map[string]string "Invalid request or empty cart"
// @Failure 401 {object} map[string]string "Not signed in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkout [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user := h.auth.Current()
	if user == nil {
		response.Error(w, http.StatusUnauthorized, "Sign in to check out")
		return
	}

	var req CheckoutRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	placed, err := h.orders.Checkout(r.Context(), user.ID, h.cart.Cart(), req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		h.handleError(w, err)
		return
	}

	// The cart is spent once the order exists.
	h.cart.Clear(r.Context())

	response.Created(w, placed)
}

// GetByID handles GET /api/v1/orders/:id
// @Summary Get an order by ID
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} map[string]interface{} "Order details"
// @Failure 400 {object} map[string]string "Invalid order ID"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	placed, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, placed)
}

// ListByUser handles GET /api/v1/orders
// @Summary List a user's orders
// @Tags Orders
// @Accept json
// @Produce json
// @Param user_id query string true "User ID (UUID)"
// @Success 200 {object} map[string]interface{} "Orders newest first"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /orders [get]
func (h *OrderHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := request.GetUUIDQuery(r, "user_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	orders, err := h.orders.ListByUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.List(w, orders, len(orders))
}

// Cancel handles POST /api/v1/orders/:id/cancel
// @Summary Cancel an order
// @Description Only orders that have not shipped yet can be cancelled.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} map[string]interface{} "Cancelled order"
// @Failure 400 {object} map[string]string "Order cannot be cancelled"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	cancelled, err := h.orders.Cancel(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, cancelled)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *OrderHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in order handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
