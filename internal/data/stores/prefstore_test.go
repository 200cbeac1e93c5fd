package stores

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrefStore(t *testing.T) (*PrefStore, *KVStore) {
	t.Helper()
	kvStore := newTestKVStore(t)
	return NewPrefStore(kvStore, zerolog.Nop()), kvStore
}

func TestPrefStore_FallbackWhenMissing(t *testing.T) {
	ctx := context.Background()
	prefs, _ := newTestPrefStore(t)

	assert.Equal(t, "tokyo-night", prefs.Get(ctx, PrefTheme, "tokyo-night"))
}

func TestPrefStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	prefs, _ := newTestPrefStore(t)

	prefs.Set(ctx, PrefViewMode, "board")
	assert.Equal(t, "board", prefs.Get(ctx, PrefViewMode, "list"))

	prefs.Set(ctx, PrefViewMode, "list")
	assert.Equal(t, "list", prefs.Get(ctx, PrefViewMode, "board"))
}

func TestPrefStore_NamespacedKeys(t *testing.T) {
	ctx := context.Background()
	prefs, kvStore := newTestPrefStore(t)

	prefs.Set(ctx, PrefDueFilter, "overdue")

	// Preference keys live in their own namespace, away from the task slot.
	has, err := kvStore.Has(ctx, "pref:due-filter")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = kvStore.Has(ctx, PrefDueFilter)
	require.NoError(t, err)
	assert.False(t, has)
}
