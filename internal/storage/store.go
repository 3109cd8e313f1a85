// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
)

// Keys of the four top-level values the ledger persists.
const (
	KeyExpenses = "expenses"
	KeyUsers    = "users"
	KeyBudgets  = "budgets"
	KeyCurrency = "currency"
)

// ErrNotFound is returned by Get when nothing was saved under a key.
var ErrNotFound = errors.New("key not found")

// Store defines the interface for key/value ledger storage.
// This abstraction allows swapping storage backends (SQLite, memory, ...)
// without changing the ledger.
type Store interface {
	// Get returns the raw value saved under key.
	// Returns ErrNotFound if nothing was saved.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value saved under key.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// Load decodes the JSON value saved under key into a T.
// Missing, unreadable, corrupt or empty (null, "") values fall back to def;
// the cause is logged.
func Load[T any](ctx context.Context, s Store, key string, def T) T {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def
	}
	if err != nil {
		slog.Warn("Failed to read stored value, using default", "key", key, "error", err)
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("Corrupt stored value, using default", "key", key, "error", err)
		return def
	}
	if reflect.ValueOf(&v).Elem().IsZero() {
		slog.Warn("Empty stored value, using default", "key", key)
		return def
	}
	return v
}

// Save encodes v as JSON and stores it under key.
func Save[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
