package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("add expense: %w", NewValidationError("amount", "must be greater than zero"))

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrStorageCorrupt))

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "amount", vErr.Field)
	assert.Equal(t, "add expense: invalid amount: must be greater than zero", err.Error())
}

func TestStorageCorruptError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &StorageCorruptError{Key: "expenses", Err: cause}

	assert.True(t, errors.Is(err, ErrStorageCorrupt))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), `"expenses"`)
}

func TestUserError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewUserError("Could not save the expense", cause)

	assert.Equal(t, "Could not save the expense: disk full", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "just a message", NewUserError("just a message", nil).Error())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("expense added", "id", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "expense added", entry["msg"])
	assert.Equal(t, "abc", entry["id"])

	_, err = NewLogger(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
