package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/repository/memory"
	"github.com/rohitkr5850/storefront/internal/storage"
	"github.com/rohitkr5850/storefront/internal/usecase/auth"
	"github.com/rohitkr5850/storefront/internal/usecase/cart"
	"github.com/rohitkr5850/storefront/internal/usecase/catalog"
	"github.com/rohitkr5850/storefront/internal/usecase/order"
)

// dropPublisher satisfies the event publisher without a broker
type dropPublisher struct{}

func (dropPublisher) Publish(context.Context, string, []byte) error { return nil }

type orderHandlerFixture struct {
	handler *OrderHandler
	cart    *cart.Service
	auth    *auth.Service
	orders  *memory.OrderRepository
	catalog *catalog.Service
}

func setupOrderHandler(t *testing.T) *orderHandlerFixture {
	t.Helper()
	log := logger.New("test")
	ctx := context.Background()

	orders := memory.NewOrderRepository()
	catalogService := catalog.NewService(memory.NewCatalogRepository(), missCache{}, log)
	cartService := cart.NewService(ctx, storage.NewMemoryStore(), "test:cart", log)
	authService := auth.NewService(ctx, memory.NewUserRepository(), storage.NewMemoryStore(), "test:user", log)
	orderService := order.NewService(orders, dropPublisher{}, log)

	return &orderHandlerFixture{
		handler: NewOrderHandler(orderService, cartService, authService, log),
		cart:    cartService,
		auth:    authService,
		orders:  orders,
		catalog: catalogService,
	}
}

func checkoutBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(CheckoutRequest{
		ShippingAddress: domain.Address{
			Street:  "42 Market St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62701",
			Country: "USA",
		},
		PaymentMethod: "credit-card",
	})
	require.NoError(t, err)
	return body
}

func (f *orderHandlerFixture) fillCart(t *testing.T) {
	t.Helper()
	product, err := f.catalog.GetByID(context.Background(), uuid.MustParse("11111111-0000-4000-8000-000000000001"))
	require.NoError(t, err)
	f.cart.AddToCart(context.Background(), product, 1)
}

func (f *orderHandlerFixture) signIn(t *testing.T) *domain.User {
	t.Helper()
	user, err := f.auth.Login(context.Background(), "alex@example.com", "pw")
	require.NoError(t, err)
	return user
}

func TestOrderHandler_Checkout_Success(t *testing.T) {
	f := setupOrderHandler(t)
	user := f.signIn(t)
	f.fillCart(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(checkoutBody(t)))
	w := httptest.NewRecorder()

	f.handler.Checkout(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data domain.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.Data.UserID)
	assert.Equal(t, domain.OrderStatusPending, resp.Data.Status)

	// Checkout spends the cart.
	assert.Empty(t, f.cart.Cart().Items)
}

func TestOrderHandler_Checkout_NotSignedIn(t *testing.T) {
	f := setupOrderHandler(t)
	f.fillCart(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(checkoutBody(t)))
	w := httptest.NewRecorder()

	f.handler.Checkout(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, f.cart.Cart().Items)
}

func TestOrderHandler_Checkout_EmptyCart(t *testing.T) {
	f := setupOrderHandler(t)
	f.signIn(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(checkoutBody(t)))
	w := httptest.NewRecorder()

	f.handler.Checkout(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_GetByID_NotFound(t *testing.T) {
	f := setupOrderHandler(t)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+id, nil)
	req = withURLParam(req, "id", id)
	w := httptest.NewRecorder()

	f.handler.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_ListByUser_MissingUserID(t *testing.T) {
	f := setupOrderHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	w := httptest.NewRecorder()

	f.handler.ListByUser(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_Cancel_PendingOrder(t *testing.T) {
	f := setupOrderHandler(t)
	f.signIn(t)
	f.fillCart(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(checkoutBody(t)))
	w := httptest.NewRecorder()
	f.handler.Checkout(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data domain.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.ID.String()

	cancelReq := httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+id+"/cancel", nil)
	cancelReq = withURLParam(cancelReq, "id", id)
	cancelW := httptest.NewRecorder()

	f.handler.Cancel(cancelW, cancelReq)

	require.Equal(t, http.StatusOK, cancelW.Code)
	var cancelled struct {
		Data domain.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(cancelW.Body.Bytes(), &cancelled))
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Data.Status)
}
