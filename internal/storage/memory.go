package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Veraticus/tally/internal/common"
)

// MemoryStore keeps encoded values in process memory. Values go through the
// same JSON encoding as SQLiteStore so both behave identically.
type MemoryStore struct {
	values map[string][]byte
	mu     sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Load implements Store.
func (m *MemoryStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(key, "key"); err != nil {
		return false, err
	}

	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, &common.StorageCorruptError{Key: key, Err: err}
	}
	return true, nil
}

// Save implements Store.
func (m *MemoryStore) Save(ctx context.Context, key string, value any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	m.mu.Lock()
	m.values[key] = data
	m.mu.Unlock()
	return nil
}

// SetRaw stores bytes under key without encoding them.
func (m *MemoryStore) SetRaw(key string, raw []byte) {
	m.mu.Lock()
	m.values[key] = append([]byte(nil), raw...)
	m.mu.Unlock()
}

// Raw returns the encoded bytes stored under key.
func (m *MemoryStore) Raw(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.values[key]
	return append([]byte(nil), raw...), ok
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	return nil
}
