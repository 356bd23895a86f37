package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/storage"
)

const testCartKey = "storefront:cart"

func newTestService(t *testing.T) (*Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	log := logger.New("test")
	return NewService(context.Background(), store, testCartKey, log), store
}

func testProduct(price float64, discount float64) *domain.Product {
	return &domain.Product{
		ID:                 uuid.New(),
		Title:              "Test Product",
		Price:              price,
		DiscountPercentage: discount,
		Category:           "Electronics",
		Stock:              100,
	}
}

// assertInvariant checks that the derived fields agree with a recomputation
// over the item collection.
func assertInvariant(t *testing.T, cart domain.Cart) {
	t.Helper()

	totalItems := 0
	subtotal := 0.0
	for _, item := range cart.Items {
		totalItems += item.Quantity
		subtotal += item.Price * float64(item.Quantity)
	}

	assert.Equal(t, totalItems, cart.TotalItems)
	assert.InDelta(t, subtotal, cart.Subtotal, 1e-9)
	assert.InDelta(t, cart.Subtotal+cart.Tax+cart.Shipping, cart.Total, 1e-9)
}

func TestService_AddToCart_NewItem(t *testing.T) {
	service, _ := newTestService(t)
	product := testProduct(20, 0)

	cart := service.AddToCart(context.Background(), product, 2)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, product.ID, cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 20.0, cart.Items[0].Price, 1e-9)
	assert.NotEqual(t, uuid.Nil, cart.Items[0].ID)
	assertInvariant(t, cart)
}

func TestService_AddToCart_DeduplicatesByProduct(t *testing.T) {
	service, _ := newTestService(t)
	product := testProduct(15, 0)

	service.AddToCart(context.Background(), product, 2)
	cart := service.AddToCart(context.Background(), product, 3)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems)
	assertInvariant(t, cart)
}

func TestService_AddToCart_AppliesDiscountAtAddTime(t *testing.T) {
	service, _ := newTestService(t)
	product := testProduct(200, 25)

	cart := service.AddToCart(context.Background(), product, 1)

	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 150.0, cart.Items[0].Price, 1e-9)
}

func TestService_AddToCart_PriceLockedAgainstLaterChanges(t *testing.T) {
	service, _ := newTestService(t)
	product := testProduct(100, 0)

	service.AddToCart(context.Background(), product, 1)

	// A later catalog price change must not touch the captured line price.
	product.Price = 250
	cart := service.AddToCart(context.Background(), product, 1)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 100.0, cart.Items[0].Price, 1e-9)
	assert.InDelta(t, 200.0, cart.Subtotal, 1e-9)
}

func TestService_RemoveFromCart_Idempotent(t *testing.T) {
	service, _ := newTestService(t)
	product := testProduct(30, 0)

	cart := service.AddToCart(context.Background(), product, 1)
	itemID := cart.Items[0].ID

	first := service.RemoveFromCart(context.Background(), itemID)
	assert.Empty(t, first.Items)

	second := service.RemoveFromCart(context.Background(), itemID)
	assert.Equal(t, first, second)
	assertInvariant(t, second)
}

func TestService_UpdateQuantity_SetsAbsoluteValue(t *testing.T) {
	service, _ := newTestService(t)
	product := testProduct(10, 0)

	cart := service.AddToCart(context.Background(), product, 5)
	itemID := cart.Items[0].ID

	cart = service.UpdateQuantity(context.Background(), itemID, 2)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 20.0, cart.Subtotal, 1e-9)
	assertInvariant(t, cart)
}

func TestService_UpdateQuantity_ZeroDeletesLine(t *testing.T) {
	service, _ := newTestService(t)
	product := testProduct(10, 0)

	cart := service.AddToCart(context.Background(), product, 3)
	itemID := cart.Items[0].ID

	cart = service.UpdateQuantity(context.Background(), itemID, 0)
	assert.Empty(t, cart.Items)

	cart = service.AddToCart(context.Background(), product, 3)
	cart = service.UpdateQuantity(context.Background(), cart.Items[0].ID, -4)
	assert.Empty(t, cart.Items)
}

func TestService_UpdateQuantity_UnknownItemNoOp(t *testing.T) {
	service, _ := newTestService(t)
	product := testProduct(10, 0)

	before := service.AddToCart(context.Background(), product, 1)
	after := service.UpdateQuantity(context.Background(), uuid.New(), 7)

	assert.Equal(t, before, after)
}

func TestService_Clear_ResetsToZero(t *testing.T) {
	service, store := newTestService(t)

	service.AddToCart(context.Background(), testProduct(50, 0), 2)
	cart := service.Clear(context.Background())

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
	assert.Zero(t, cart.Subtotal)
	assert.Zero(t, cart.Tax)
	assert.Zero(t, cart.Shipping)
	assert.Zero(t, cart.Total)

	// The cleared cart is what ends up persisted.
	val, err := store.Get(context.Background(), testCartKey)
	require.NoError(t, err)
	var persisted domain.Cart
	require.NoError(t, json.Unmarshal([]byte(val), &persisted))
	assert.Empty(t, persisted.Items)
}

func TestService_Totals_TaxRate(t *testing.T) {
	service, _ := newTestService(t)

	cart := service.AddToCart(context.Background(), testProduct(50, 0), 1)

	assert.InDelta(t, 50.0, cart.Subtotal, 1e-9)
	assert.InDelta(t, 3.50, cart.Tax, 1e-9)
}

func TestService_Totals_ShippingThreshold(t *testing.T) {
	service, _ := newTestService(t)

	// Exactly 100.00: free shipping requires STRICTLY more than 100.
	cart := service.AddToCart(context.Background(), testProduct(50, 0), 2)
	assert.InDelta(t, 100.0, cart.Subtotal, 1e-9)
	assert.InDelta(t, 10.0, cart.Shipping, 1e-9)

	service.Clear(context.Background())

	cart = service.AddToCart(context.Background(), testProduct(100.01, 0), 1)
	assert.InDelta(t, 0.0, cart.Shipping, 1e-9)
}

func TestService_Totals_InvariantAcrossMutationSequence(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	p1 := testProduct(19.99, 0)
	p2 := testProduct(45, 10)
	p3 := testProduct(5.25, 0)

	cart := service.AddToCart(ctx, p1, 3)
	assertInvariant(t, cart)

	cart = service.AddToCart(ctx, p2, 1)
	assertInvariant(t, cart)

	cart = service.AddToCart(ctx, p3, 10)
	assertInvariant(t, cart)

	cart = service.UpdateQuantity(ctx, cart.Items[0].ID, 1)
	assertInvariant(t, cart)

	cart = service.RemoveFromCart(ctx, cart.Items[1].ID)
	assertInvariant(t, cart)

	cart = service.AddToCart(ctx, p1, 2)
	assertInvariant(t, cart)
}

func TestService_PersistsAfterEveryMutation(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	readPersisted := func() domain.Cart {
		val, err := store.Get(ctx, testCartKey)
		require.NoError(t, err)
		var cart domain.Cart
		require.NoError(t, json.Unmarshal([]byte(val), &cart))
		return cart
	}

	inMemory := service.AddToCart(ctx, testProduct(12, 0), 2)
	assert.Equal(t, inMemory.TotalItems, readPersisted().TotalItems)

	inMemory = service.UpdateQuantity(ctx, inMemory.Items[0].ID, 5)
	assert.Equal(t, inMemory.TotalItems, readPersisted().TotalItems)

	inMemory = service.RemoveFromCart(ctx, inMemory.Items[0].ID)
	assert.Equal(t, 0, readPersisted().TotalItems)
}

func TestService_RestoresPersistedCart(t *testing.T) {
	store := storage.NewMemoryStore()
	log := logger.New("test")
	ctx := context.Background()

	first := NewService(ctx, store, testCartKey, log)
	product := testProduct(25, 0)
	first.AddToCart(ctx, product, 4)

	second := NewService(ctx, store, testCartKey, log)
	cart := second.Cart()

	require.Len(t, cart.Items, 1)
	assert.Equal(t, product.ID, cart.Items[0].ProductID)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assertInvariant(t, cart)
}

func TestService_CorruptPersistedCartFallsBackEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	log := logger.New("test")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, testCartKey, "{not json"))

	service := NewService(ctx, store, testCartKey, log)
	cart := service.Cart()

	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)

	// The corrupt value is discarded.
	_, err := store.Get(ctx, testCartKey)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestService_OnChange_NotifiedAfterMutations(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	var notifications []domain.Cart
	service.OnChange(func(c domain.Cart) {
		notifications = append(notifications, c)
	})

	cart := service.AddToCart(ctx, testProduct(10, 0), 1)
	service.RemoveFromCart(ctx, cart.Items[0].ID)

	require.Len(t, notifications, 2)
	assert.Equal(t, 1, notifications[0].TotalItems)
	assert.Equal(t, 0, notifications[1].TotalItems)
}
