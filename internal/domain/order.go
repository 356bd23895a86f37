package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfillment state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Next returns the status following s in the fulfillment flow.
// Delivered and cancelled orders have no next status.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusPending:
		return OrderStatusProcessing, true
	case OrderStatusProcessing:
		return OrderStatusShipped, true
	case OrderStatusShipped:
		return OrderStatusDelivered, true
	default:
		return s, false
	}
}

// Address is a shipping destination
type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// OrderItem is a purchased line, copied from the cart at checkout
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	VendorID  uuid.UUID `json:"vendor_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// Order represents a placed order. Totals are carried over from the cart
// unchanged at checkout time.
type Order struct {
	ID                uuid.UUID   `json:"id"`
	UserID            uuid.UUID   `json:"user_id"`
	Items             []OrderItem `json:"items"`
	Subtotal          float64     `json:"subtotal"`
	Tax               float64     `json:"tax"`
	Shipping          float64     `json:"shipping"`
	Total             float64     `json:"total"`
	Status            OrderStatus `json:"status"`
	ShippingAddress   Address     `json:"shipping_address"`
	PaymentMethod     string      `json:"payment_method"`
	TrackingNumber    string      `json:"tracking_number"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// Create stores a new order
	Create(ctx context.Context, order *Order) error

	// GetByID retrieves an order by ID
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// ListByUser retrieves all orders placed by a user, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Order, error)

	// List retrieves all orders, newest first
	List(ctx context.Context) ([]*Order, error)

	// UpdateStatus transitions an order to the given status
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
}
