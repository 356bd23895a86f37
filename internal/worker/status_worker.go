// Package worker advances orders through the fulfilment pipeline. There is no
// real carrier integration; the worker simulates one by stepping each order's
// status on a timer after it is placed.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
)

const (
	// Retry configuration for status updates
	maxRetries     = 3
	initialBackoff = 100 * time.Millisecond
)

// OrderEvent mirrors the event payload published on checkout and cancellation
type OrderEvent struct {
	EventType string             `json:"event_type"`
	Timestamp time.Time          `json:"timestamp"`
	OrderID   uuid.UUID          `json:"order_id"`
	UserID    uuid.UUID          `json:"user_id"`
	Status    domain.OrderStatus `json:"status"`
}

// StatusWorker advances orders pending -> processing -> shipped -> delivered,
// one step per interval. A cancellation event stops the order's progression.
type StatusWorker struct {
	orders   domain.OrderRepository
	interval time.Duration
	logger   *logger.Logger

	mu         sync.Mutex
	pending    map[uuid.UUID]*pendingAdvance
	shutdownCh chan struct{}
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
}

type pendingAdvance struct {
	orderID uuid.UUID
	timer   *time.Timer
}

// NewStatusWorker creates a new order status worker
func NewStatusWorker(orders domain.OrderRepository, interval time.Duration, log *logger.Logger) *StatusWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &StatusWorker{
		orders:     orders,
		interval:   interval,
		logger:     log,
		pending:    make(map[uuid.UUID]*pendingAdvance),
		shutdownCh: make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// HandleEvent processes an order event
func (w *StatusWorker) HandleEvent(data []byte) error {
	var event OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		w.logger.WithFields(map[string]any{
			"error": err.Error(),
		}).Error("Failed to unmarshal order event", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	w.logger.WithFields(map[string]any{
		"event_type": event.EventType,
		"order_id":   event.OrderID.String(),
		"status":     event.Status,
	}).Info("Received order event")

	switch event.EventType {
	case "order.created":
		w.scheduleAdvance(event.OrderID)
	case "order.cancelled":
		w.cancelAdvance(event.OrderID)
	default:
		w.logger.Debugf("Ignoring event type %s", event.EventType)
	}

	return nil
}

// scheduleAdvance arms the timer for the order's next status step. An order
// already scheduled keeps its existing timer.
func (w *StatusWorker) scheduleAdvance(orderID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdownCh:
		w.logger.Info("Worker shutting down, ignoring new event")
		return
	default:
	}

	if _, found := w.pending[orderID]; found {
		w.logger.WithFields(map[string]any{
			"order_id": orderID.String(),
		}).Debug("Order already scheduled, keeping existing timer")
		return
	}

	w.wg.Add(1)
	timer := time.AfterFunc(w.interval, func() {
		w.processAdvance(orderID)
	})

	w.pending[orderID] = &pendingAdvance{
		orderID: orderID,
		timer:   timer,
	}
}

// cancelAdvance stops the progression of a cancelled order
func (w *StatusWorker) cancelAdvance(orderID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	update, found := w.pending[orderID]
	if !found {
		return
	}

	if update.timer.Stop() {
		w.wg.Done()
	}
	delete(w.pending, orderID)

	w.logger.WithFields(map[string]any{
		"order_id": orderID.String(),
	}).Info("Stopped status progression for cancelled order")
}

// processAdvance moves the order one step forward with retry logic, then
// re-arms the timer unless the order reached a terminal status.
func (w *StatusWorker) processAdvance(orderID uuid.UUID) {
	defer w.wg.Done()

	w.mu.Lock()
	delete(w.pending, orderID)
	w.mu.Unlock()

	next, err := w.advanceWithRetry(orderID)
	if err != nil || next == "" {
		return
	}

	w.logger.WithFields(map[string]any{
		"order_id": orderID.String(),
		"status":   next,
	}).Info("Advanced order status")

	if next != domain.OrderStatusDelivered {
		w.scheduleAdvance(orderID)
	}
}

// advanceWithRetry loads the order and applies the next status. It returns
// the new status, or empty when the order is terminal or gone.
func (w *StatusWorker) advanceWithRetry(orderID uuid.UUID) (domain.OrderStatus, error) {
	var lastErr error
	backoff := initialBackoff

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			w.logger.WithFields(map[string]any{
				"order_id":   orderID.String(),
				"attempt":    attempt + 1,
				"backoff_ms": backoff.Milliseconds(),
			}).Warn("Retrying status advance")

			select {
			case <-time.After(backoff):
			case <-w.ctx.Done():
				w.logger.Info("Worker context cancelled, aborting retry")
				return "", w.ctx.Err()
			}

			backoff *= 2
		}

		ctx, cancel := context.WithTimeout(w.ctx, 5*time.Second)
		next, err := w.advanceOnce(ctx, orderID)
		cancel()

		if err == nil {
			return next, nil
		}
		if err == domain.ErrNotFound {
			w.logger.Debugf("Order %s no longer exists, dropping", orderID)
			return "", nil
		}

		lastErr = err
		w.logger.WithFields(map[string]any{
			"order_id": orderID.String(),
			"attempt":  attempt + 1,
			"error":    err.Error(),
		}).Error("Failed to advance order status", err)
	}

	w.logger.WithFields(map[string]any{
		"order_id":    orderID.String(),
		"max_retries": maxRetries,
		"error":       lastErr.Error(),
	}).Error("Status advance failed after all retries", lastErr)
	return "", lastErr
}

func (w *StatusWorker) advanceOnce(ctx context.Context, orderID uuid.UUID) (domain.OrderStatus, error) {
	order, err := w.orders.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	// Cancelled and delivered orders never move.
	next, ok := order.Status.Next()
	if !ok {
		w.logger.WithFields(map[string]any{
			"order_id": orderID.String(),
			"status":   order.Status,
		}).Debug("Order is terminal, nothing to advance")
		return "", nil
	}

	if err := w.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return "", err
	}
	return next, nil
}

// Shutdown gracefully shuts down the worker
// Cancels pending timers and waits for in-flight updates to complete
func (w *StatusWorker) Shutdown(ctx context.Context) error {
	w.logger.Info("Shutting down order status worker...")

	// Signal shutdown to prevent new updates
	close(w.shutdownCh)

	// Cancel context to stop retries
	w.cancel()

	// Cancel all pending timers
	w.mu.Lock()
	pendingCount := len(w.pending)
	for _, update := range w.pending {
		if update.timer.Stop() {
			w.wg.Done()
		}
	}
	w.pending = make(map[uuid.UUID]*pendingAdvance)
	w.mu.Unlock()

	w.logger.WithFields(map[string]any{
		"cancelled_updates": pendingCount,
	}).Info("Cancelled pending advances")

	// Wait for in-flight updates to complete or context timeout
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("All in-flight advances completed")
		return nil
	case <-ctx.Done():
		w.logger.Warn("Shutdown timeout reached, forcing exit")
		return ctx.Err()
	}
}

// GetPendingCount returns the number of scheduled advances (used for monitoring/testing)
func (w *StatusWorker) GetPendingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}
