package stores

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/colonyops/waggle/internal/core/kv"
)

// Preference keys, stored under the "pref" namespace.
const (
	PrefTheme     = "theme"
	PrefViewMode  = "view"
	PrefDueFilter = "due-filter"
)

// PrefStore holds cosmetic UI preferences: theme name, list/board view
// mode, and the last chosen due-bucket filter. Unlike the task slot,
// preference reads and writes fail soft: a missing or unreadable value
// falls back to the caller's default, and write failures are logged at
// debug and otherwise dropped.
type PrefStore struct {
	prefs  *kv.TypedKV[string]
	logger zerolog.Logger
}

// NewPrefStore creates a preference store backed by the given KV store.
func NewPrefStore(store kv.KV, logger zerolog.Logger) *PrefStore {
	return &PrefStore{
		prefs:  kv.Scoped[string](store, "pref"),
		logger: logger,
	}
}

// Get returns the stored preference, or fallback if it is missing or
// unreadable.
func (s *PrefStore) Get(ctx context.Context, key, fallback string) string {
	v, err := s.prefs.Get(ctx, key)
	if err != nil {
		if !IsNotFound(err) {
			s.logger.Debug().Err(err).Str("pref", key).Msg("read preference failed")
		}
		return fallback
	}
	if v == "" {
		return fallback
	}
	return v
}

// Set stores the preference. Failures are logged and dropped; losing a
// preference is cosmetic, not data loss.
func (s *PrefStore) Set(ctx context.Context, key, value string) {
	if err := s.prefs.Set(ctx, key, value); err != nil {
		s.logger.Debug().Err(err).Str("pref", key).Msg("write preference failed")
	}
}
