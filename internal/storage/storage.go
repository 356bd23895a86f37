// Package storage provides the durable key-value slot the cart engine and
// auth service persist their state to. The port is deliberately small
// (get/set/remove by fixed key) so it can be backed by any durable store
// without changing engine logic.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has no value
var ErrKeyNotFound = errors.New("key not found")

// Store is the key-value persistence port. Values are always read and
// written in full; there are no partial updates.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Remove deletes the value stored under key, if any
	Remove(ctx context.Context, key string) error
}
