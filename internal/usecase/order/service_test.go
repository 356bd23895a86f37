package order

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/repository/memory"
)

// capturePublisher records published events for assertions
type capturePublisher struct {
	mu       sync.Mutex
	subjects []string
	payloads [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, subject string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, data)
	return nil
}

func (p *capturePublisher) waitForEvents(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p.mu.Lock()
		count := len(p.subjects)
		p.mu.Unlock()
		if count >= n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d published events", n)
}

func testAddress() domain.Address {
	return domain.Address{
		Street:  "42 Market St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62701",
		Country: "USA",
	}
}

func testCart() domain.Cart {
	vendorID := uuid.New()
	items := []domain.CartItem{
		{
			ID:        uuid.New(),
			ProductID: uuid.New(),
			Product:   domain.Product{Title: "Headphones", VendorID: vendorID},
			Quantity:  2,
			Price:     60,
		},
	}
	return domain.Cart{
		Items:      items,
		TotalItems: 2,
		Subtotal:   120,
		Tax:        8.4,
		Shipping:   0,
		Total:      128.4,
	}
}

func TestService_Checkout_CreatesPendingOrder(t *testing.T) {
	repo := memory.NewOrderRepository()
	publisher := &capturePublisher{}
	service := NewService(repo, publisher, logger.New("test"))

	userID := uuid.New()
	cart := testCart()

	order, err := service.Checkout(context.Background(), userID, cart, testAddress(), "credit-card")

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, userID, order.UserID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Headphones", order.Items[0].Title)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// Totals are carried over from the cart unchanged.
	assert.InDelta(t, cart.Subtotal, order.Subtotal, 1e-9)
	assert.InDelta(t, cart.Tax, order.Tax, 1e-9)
	assert.InDelta(t, cart.Shipping, order.Shipping, 1e-9)
	assert.InDelta(t, cart.Total, order.Total, 1e-9)

	assert.NotEmpty(t, order.TrackingNumber)
	require.NotNil(t, order.EstimatedDelivery)
	assert.True(t, order.EstimatedDelivery.After(order.CreatedAt))

	stored, err := repo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
}

func TestService_Checkout_PublishesOrderCreated(t *testing.T) {
	repo := memory.NewOrderRepository()
	publisher := &capturePublisher{}
	service := NewService(repo, publisher, logger.New("test"))

	_, err := service.Checkout(context.Background(), uuid.New(), testCart(), testAddress(), "paypal")
	require.NoError(t, err)

	publisher.waitForEvents(t, 1)
	assert.Equal(t, "orders.events", publisher.subjects[0])
}

func TestService_Checkout_EmptyCart(t *testing.T) {
	repo := memory.NewOrderRepository()
	publisher := &capturePublisher{}
	service := NewService(repo, publisher, logger.New("test"))

	order, err := service.Checkout(context.Background(), uuid.New(), domain.Cart{}, testAddress(), "credit-card")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_Checkout_InvalidAddress(t *testing.T) {
	repo := memory.NewOrderRepository()
	publisher := &capturePublisher{}
	service := NewService(repo, publisher, logger.New("test"))

	address := testAddress()
	address.City = ""

	order, err := service.Checkout(context.Background(), uuid.New(), testCart(), address, "credit-card")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := memory.NewOrderRepository()
	publisher := &capturePublisher{}
	service := NewService(repo, publisher, logger.New("test"))

	order, err := service.GetByID(context.Background(), uuid.New())

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ListByUser_ReturnsOnlyOwnOrders(t *testing.T) {
	repo := memory.NewOrderRepository()
	publisher := &capturePublisher{}
	service := NewService(repo, publisher, logger.New("test"))
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	_, err := service.Checkout(ctx, alice, testCart(), testAddress(), "credit-card")
	require.NoError(t, err)
	_, err = service.Checkout(ctx, bob, testCart(), testAddress(), "credit-card")
	require.NoError(t, err)

	orders, err := service.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, alice, orders[0].UserID)
}

func TestService_Cancel_PendingOrder(t *testing.T) {
	repo := memory.NewOrderRepository()
	publisher := &capturePublisher{}
	service := NewService(repo, publisher, logger.New("test"))
	ctx := context.Background()

	placed, err := service.Checkout(ctx, uuid.New(), testCart(), testAddress(), "credit-card")
	require.NoError(t, err)

	cancelled, err := service.Cancel(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)
}

func TestService_Cancel_ShippedOrderRejected(t *testing.T) {
	repo := memory.NewOrderRepository()
	publisher := &capturePublisher{}
	service := NewService(repo, publisher, logger.New("test"))
	ctx := context.Background()

	placed, err := service.Checkout(ctx, uuid.New(), testCart(), testAddress(), "credit-card")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, placed.ID, domain.OrderStatusShipped))

	cancelled, err := service.Cancel(ctx, placed.ID)
	assert.Nil(t, cancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
