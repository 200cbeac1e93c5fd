package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenOptions_WithDefaults(t *testing.T) {
	t.Run("zero value gets all defaults", func(t *testing.T) {
		assert.Equal(t, DefaultOpenOptions(), OpenOptions{}.withDefaults())
	})

	t.Run("set fields survive defaulting of the rest", func(t *testing.T) {
		got := OpenOptions{BusyTimeout: 250}.withDefaults()
		assert.Equal(t, 250, got.BusyTimeout)
		assert.Equal(t, DefaultOpenOptions().MaxOpenConns, got.MaxOpenConns)
		assert.Equal(t, DefaultOpenOptions().MaxIdleConns, got.MaxIdleConns)
	})

	t.Run("fully set options are untouched", func(t *testing.T) {
		opts := OpenOptions{MaxOpenConns: 4, MaxIdleConns: 2, BusyTimeout: 100}
		assert.Equal(t, opts, opts.withDefaults())
	})
}

func TestOpen_PartialOptions(t *testing.T) {
	database, err := Open(t.TempDir(), OpenOptions{BusyTimeout: 250})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.PingContext(context.Background()))
}
