// Package cart implements the shopping cart engine: line items keyed by
// product, derived totals, and persistence to the durable key-value slot
// after every mutation.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/storage"
)

const (
	// taxRate is the flat tax applied to the subtotal
	taxRate = 0.07

	// flatShippingFee is charged unless the subtotal qualifies for free shipping
	flatShippingFee = 10.0

	// freeShippingThreshold must be STRICTLY exceeded for shipping to be free;
	// a subtotal of exactly 100.00 still pays the flat fee
	freeShippingThreshold = 100.0
)

// Service is the cart engine. It holds the cart in memory, mirrors it to the
// key-value slot under a fixed key, and notifies subscribers after every
// mutation.
type Service struct {
	store  storage.Store
	key    string
	logger *logger.Logger

	mu          sync.RWMutex
	cart        domain.Cart
	subscribers []func(domain.Cart)
}

// NewService creates a cart engine, restoring any previously persisted cart.
// A missing or unparseable persisted value falls back to the empty cart; the
// corrupt value is discarded and no error reaches the caller.
func NewService(ctx context.Context, store storage.Store, key string, log *logger.Logger) *Service {
	s := &Service{
		store:  store,
		key:    key,
		logger: log,
	}
	s.cart = s.restore(ctx)
	return s
}

func (s *Service) restore(ctx context.Context) domain.Cart {
	val, err := s.store.Get(ctx, s.key)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			s.logger.Warnf("Failed to read persisted cart, starting empty: %v", err)
		}
		return domain.Cart{}
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		s.logger.Warnf("Discarding unparseable persisted cart: %v", err)
		if removeErr := s.store.Remove(ctx, s.key); removeErr != nil {
			s.logger.Warnf("Failed to remove corrupt cart value: %v", removeErr)
		}
		return domain.Cart{}
	}

	// Totals are rederived from the restored items so the cart can never come
	// back in a state where the derived fields disagree with the item set.
	restored := calculateTotals(cart.Items)

	s.logger.WithFields(map[string]interface{}{
		"items":       len(restored.Items),
		"total_items": restored.TotalItems,
	}).Info("Restored cart from storage")

	return restored
}

// AddToCart adds quantity units of the product to the cart. The effective
// unit price (after the product's discount, if any) is captured into the
// line and never recomputed. If a line for this product already exists its
// quantity is incremented and its captured price left untouched.
//
// Stock limits are not enforced here; the call site clamps quantity before
// invoking the engine.
func (s *Service) AddToCart(ctx context.Context, product *domain.Product, quantity int) domain.Cart {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	items := s.cart.Items

	found := false
	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}

	if !found {
		items = append(items, domain.CartItem{
			ID:        uuid.New(),
			ProductID: product.ID,
			Product:   *product,
			Quantity:  quantity,
			Price:     product.EffectivePrice(),
		})
	}

	s.cart = calculateTotals(items)
	snapshot := s.snapshotLocked()
	s.persist(ctx, snapshot)
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot
}

// RemoveFromCart removes the line with the given identifier. Removing an
// absent line is a no-op, not an error.
func (s *Service) RemoveFromCart(ctx context.Context, itemID uuid.UUID) domain.Cart {
	s.mu.Lock()
	items := s.cart.Items
	for i := range items {
		if items[i].ID == itemID {
			items = append(items[:i], items[i+1:]...)
			break
		}
	}

	s.cart = calculateTotals(items)
	snapshot := s.snapshotLocked()
	s.persist(ctx, snapshot)
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot
}

// UpdateQuantity sets the quantity of the line with the given identifier.
// A quantity of zero or less deletes the line; zero-quantity lines are never
// persisted. Updating an absent line is a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) domain.Cart {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, itemID)
	}

	s.mu.Lock()
	items := s.cart.Items
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			break
		}
	}

	s.cart = calculateTotals(items)
	snapshot := s.snapshotLocked()
	s.persist(ctx, snapshot)
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot
}

// Clear resets the cart to empty with all totals zero
func (s *Service) Clear(ctx context.Context) domain.Cart {
	s.mu.Lock()
	s.cart = domain.Cart{}
	snapshot := s.snapshotLocked()
	s.persist(ctx, snapshot)
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot
}

// Cart returns a copy of the current cart
func (s *Service) Cart() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// OnChange registers a callback invoked with a cart snapshot after every
// mutation. Callbacks run synchronously on the mutating call.
func (s *Service) OnChange(fn func(domain.Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// snapshotLocked copies the cart; the caller must hold at least a read lock
func (s *Service) snapshotLocked() domain.Cart {
	cp := s.cart
	cp.Items = make([]domain.CartItem, len(s.cart.Items))
	copy(cp.Items, s.cart.Items)
	return cp
}

// persist mirrors the cart to the key-value slot. Persistence failures are
// logged and swallowed: the in-memory cart stays authoritative and mutations
// never fail on storage errors.
func (s *Service) persist(ctx context.Context, cart domain.Cart) {
	data, err := json.Marshal(cart)
	if err != nil {
		s.logger.Warnf("Failed to marshal cart for persistence: %v", err)
		return
	}

	if err := s.store.Set(ctx, s.key, string(data)); err != nil {
		s.logger.Warnf("Failed to persist cart: %v", err)
	}
}

func (s *Service) notify(cart domain.Cart) {
	s.mu.RLock()
	subs := make([]func(domain.Cart), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(cart)
	}
}

// calculateTotals derives the aggregate fields from the item collection.
// An empty cart is all zeros; otherwise tax is 7% of the subtotal and
// shipping is a flat fee waived only when the subtotal strictly exceeds the
// free-shipping threshold. No rounding is applied here; two-decimal
// formatting is a display concern.
func calculateTotals(items []domain.CartItem) domain.Cart {
	if len(items) == 0 {
		return domain.Cart{}
	}

	totalItems := 0
	subtotal := 0.0
	for _, item := range items {
		totalItems += item.Quantity
		subtotal += item.Price * float64(item.Quantity)
	}

	tax := subtotal * taxRate
	shipping := flatShippingFee
	if subtotal > freeShippingThreshold {
		shipping = 0
	}

	return domain.Cart{
		Items:      items,
		TotalItems: totalItems,
		Subtotal:   subtotal,
		Tax:        tax,
		Shipping:   shipping,
		Total:      subtotal + tax + shipping,
	}
}
