// Package order handles checkout and order tracking. Checkout snapshots the
// cart into an order; a real payment provider would sit behind the event
// boundary, so no payment processing happens here.
package order

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/pkg/validator"
)

// estimatedDeliveryLead is how far out the delivery estimate is set at checkout
const estimatedDeliveryLead = 5 * 24 * time.Hour

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// OrderEvent represents an event related to an order
type OrderEvent struct {
	EventType string             `json:"event_type"`
	Timestamp time.Time          `json:"timestamp"`
	OrderID   uuid.UUID          `json:"order_id"`
	UserID    uuid.UUID          `json:"user_id"`
	Status    domain.OrderStatus `json:"status"`
}

// Service handles order business logic with event publishing
type Service struct {
	repo      domain.OrderRepository
	publisher EventPublisher
	validate  *validatorv10.Validate
	logger    *logger.Logger
}

// NewService creates a new order service
func NewService(repo domain.OrderRepository, publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		validate:  validator.Get(),
		logger:    log,
	}
}

// Checkout turns the given cart into a pending order. The cart's totals are
// carried over unchanged; the caller is responsible for clearing the cart
// once checkout succeeds.
func (s *Service) Checkout(ctx context.Context, userID uuid.UUID, cart domain.Cart, address domain.Address, paymentMethod string) (*domain.Order, error) {
	if len(cart.Items) == 0 {
		s.logger.Debug("Checkout attempted with empty cart")
		return nil, domain.ErrInvalidInput
	}

	if err := s.validate.Struct(address); err != nil {
		s.logger.Error("Shipping address validation failed", err)
		return nil, domain.ErrInvalidInput
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, domain.OrderItem{
			ID:        uuid.New(),
			ProductID: item.ProductID,
			Title:     item.Product.Title,
			VendorID:  item.Product.VendorID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	now := time.Now()
	estimated := now.Add(estimatedDeliveryLead)

	order := &domain.Order{
		ID:                uuid.New(),
		UserID:            userID,
		Items:             items,
		Subtotal:          cart.Subtotal,
		Tax:               cart.Tax,
		Shipping:          cart.Shipping,
		Total:             cart.Total,
		Status:            domain.OrderStatusPending,
		ShippingAddress:   address,
		PaymentMethod:     paymentMethod,
		TrackingNumber:    newTrackingNumber(),
		EstimatedDelivery: &estimated,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", err)
		return nil, err
	}

	s.publishEvent(ctx, "order.created", order)

	s.logger.WithFields(map[string]interface{}{
		"order_id": order.ID,
		"user_id":  userID,
		"total":    order.Total,
	}).Info("Order placed successfully")

	return order, nil
}

// GetByID retrieves an order by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Order not found: %s", id)
		} else {
			s.logger.Error("Failed to get order", err)
		}
		return nil, err
	}

	return order, nil
}

// ListByUser retrieves all orders placed by a user, newest first
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list orders", err)
		return nil, err
	}
	return orders, nil
}

// Cancel marks an order as cancelled. Only orders that have not shipped yet
// can be cancelled.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.OrderStatusPending && order.Status != domain.OrderStatusProcessing {
		s.logger.Debugf("Order %s cannot be cancelled in status %s", id, order.Status)
		return nil, domain.ErrInvalidInput
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.OrderStatusCancelled); err != nil {
		s.logger.Error("Failed to cancel order", err)
		return nil, err
	}

	order.Status = domain.OrderStatusCancelled

	s.publishEvent(ctx, "order.cancelled", order)

	s.logger.WithFields(map[string]interface{}{
		"order_id": id,
	}).Info("Order cancelled")

	return order, nil
}

// publishEvent publishes an order event (non-blocking)
func (s *Service) publishEvent(ctx context.Context, eventType string, order *domain.Order) {
	event := OrderEvent{
		EventType: eventType,
		Timestamp: time.Now(),
		OrderID:   order.ID,
		UserID:    order.UserID,
		Status:    order.Status,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal event for order %s", order.ID)
		return
	}

	// Publish in background to avoid blocking
	go func() {
		if err := s.publisher.Publish(context.Background(), "orders.events", data); err != nil {
			s.logger.Errorf(err, "Failed to publish event for order %s", order.ID)
		}
	}()
}

// newTrackingNumber generates a carrier-style tracking code
func newTrackingNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "TRK-" + id[:12]
}
