package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rohitkr5850/storefront/internal/domain"
)

// OrderRepository is an in-memory order store. It starts empty; orders are
// created through checkout.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
}

// NewOrderRepository creates an empty order store
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[uuid.UUID]*domain.Order)}
}

// Create stores a new order
func (r *OrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; ok {
		return domain.ErrAlreadyExists
	}

	cp := cloneOrder(order)
	r.orders[order.ID] = cp
	return nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneOrder(o), nil
}

// ListByUser retrieves all orders placed by a user, newest first
func (r *OrderRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// List retrieves all orders, newest first
func (r *OrderRepository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	sortNewestFirst(out)
	return out, nil
}

// UpdateStatus transitions an order to the given status
func (r *OrderRepository) UpdateStatus(_ context.Context, id uuid.UUID, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

func cloneOrder(o *domain.Order) *domain.Order {
	cp := *o
	cp.Items = make([]domain.OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	if o.EstimatedDelivery != nil {
		t := *o.EstimatedDelivery
		cp.EstimatedDelivery = &t
	}
	return &cp
}

func sortNewestFirst(orders []*domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
