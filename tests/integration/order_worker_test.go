//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitkr5850/storefront/internal/config"
	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/repository/memory"
	"github.com/rohitkr5850/storefront/internal/worker"
)

func placeTestOrder(t *testing.T, repo domain.OrderRepository) *domain.Order {
	t.Helper()

	now := time.Now()
	order := &domain.Order{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Items: []domain.OrderItem{{
			ID:        uuid.New(),
			ProductID: uuid.New(),
			Title:     "Worker Test Product",
			VendorID:  uuid.New(),
			Quantity:  1,
			Price:     49.99,
		}},
		Subtotal:  49.99,
		Tax:       3.5,
		Shipping:  10,
		Total:     63.49,
		Status:    domain.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestStatusWorker_EndToEnd(t *testing.T) {
	// Load config
	cfg, err := config.Load()
	require.NoError(t, err)

	// Setup logger
	log := logger.New(cfg.Env)

	// Connect to NATS
	nc, err := nats.Connect(cfg.NATS.URL)
	require.NoError(t, err)
	defer nc.Close()

	// Create order store and worker with a short advance interval
	orderRepo := memory.NewOrderRepository()
	statusWorker := worker.NewStatusWorker(orderRepo, 200*time.Millisecond, log)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = statusWorker.Shutdown(shutdownCtx)
	}()

	// Subscribe to order events
	_, err = nc.Subscribe("orders.events", func(msg *nats.Msg) {
		_ = statusWorker.HandleEvent(msg.Data)
	})
	require.NoError(t, err)

	ctx := context.Background()
	order := placeTestOrder(t, orderRepo)

	// Publish the checkout event
	event := worker.OrderEvent{
		EventType: "order.created",
		Timestamp: time.Now(),
		OrderID:   order.ID,
		UserID:    order.UserID,
		Status:    domain.OrderStatusPending,
	}
	eventData, _ := json.Marshal(event)
	require.NoError(t, nc.Publish("orders.events", eventData))

	// Wait for the full pipeline: pending -> processing -> shipped -> delivered
	require.Eventually(t, func() bool {
		current, err := orderRepo.GetByID(ctx, order.ID)
		return err == nil && current.Status == domain.OrderStatusDelivered
	}, 5*time.Second, 50*time.Millisecond, "Order should reach delivered")

	// Nothing left scheduled once the order is delivered
	assert.Zero(t, statusWorker.GetPendingCount())
}

func TestStatusWorker_CancellationStopsProgression(t *testing.T) {
	// Load config
	cfg, err := config.Load()
	require.NoError(t, err)

	// Setup logger
	log := logger.New(cfg.Env)

	// Connect to NATS
	nc, err := nats.Connect(cfg.NATS.URL)
	require.NoError(t, err)
	defer nc.Close()

	// A long interval keeps the first advance pending while we cancel
	orderRepo := memory.NewOrderRepository()
	statusWorker := worker.NewStatusWorker(orderRepo, time.Minute, log)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = statusWorker.Shutdown(shutdownCtx)
	}()

	// Subscribe to order events
	_, err = nc.Subscribe("orders.events", func(msg *nats.Msg) {
		_ = statusWorker.HandleEvent(msg.Data)
	})
	require.NoError(t, err)

	ctx := context.Background()
	order := placeTestOrder(t, orderRepo)

	created := worker.OrderEvent{
		EventType: "order.created",
		Timestamp: time.Now(),
		OrderID:   order.ID,
		UserID:    order.UserID,
		Status:    domain.OrderStatusPending,
	}
	createdData, _ := json.Marshal(created)
	require.NoError(t, nc.Publish("orders.events", createdData))

	// Wait for the advance to be scheduled
	require.Eventually(t, func() bool {
		return statusWorker.GetPendingCount() == 1
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, orderRepo.UpdateStatus(ctx, order.ID, domain.OrderStatusCancelled))

	cancelled := worker.OrderEvent{
		EventType: "order.cancelled",
		Timestamp: time.Now(),
		OrderID:   order.ID,
		UserID:    order.UserID,
		Status:    domain.OrderStatusCancelled,
	}
	cancelledData, _ := json.Marshal(cancelled)
	require.NoError(t, nc.Publish("orders.events", cancelledData))

	// The scheduled advance is dropped and the order stays cancelled
	require.Eventually(t, func() bool {
		return statusWorker.GetPendingCount() == 0
	}, 2*time.Second, 20*time.Millisecond)

	current, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, current.Status)
}
