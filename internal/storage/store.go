// Package storage provides the data persistence layer for the tally application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/config"
)

// Collection keys.
const (
	KeyExpenses = "expenses"
	KeyIncome   = "income"
)

// Store is a durable key-value store of JSON-encoded collections.
type Store interface {
	// Load decodes the value stored under key into dst. It reports false
	// when nothing is stored, and a *common.StorageCorruptError when the
	// stored value does not decode into dst.
	Load(ctx context.Context, key string, dst any) (bool, error)
	// Save encodes value and stores it under key, replacing any prior value.
	Save(ctx context.Context, key string, value any) error
	Close() error
}

// LoadOr returns the value stored under key, or def when the key is missing
// or its value is corrupt. Other store failures are returned.
func LoadOr[T any](ctx context.Context, s Store, key string, def T) (T, error) {
	var value T
	found, err := s.Load(ctx, key, &value)
	if err != nil {
		if errors.Is(err, common.ErrStorageCorrupt) {
			slog.Warn("Discarding corrupt stored value", "key", key, "error", err)
			return def, nil
		}
		return def, err
	}
	if !found {
		return def, nil
	}
	return value, nil
}

// Open creates the store selected by cfg and brings its schema up to date.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		slog.Debug("Using in-memory store")
		return NewMemoryStore(), nil
	case config.BackendSQLite:
		store, err := NewSQLiteStore(cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		slog.Debug("Using sqlite store", "path", cfg.DatabasePath)
		return store, nil
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", common.ErrInvalidConfig, cfg.Backend)
	}
}
