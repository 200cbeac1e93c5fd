// Package kv defines the persistent key-value seam the stores are built
// on: named durable slots holding JSON values. The task collection and
// the UI preference keys all live behind this interface, so call sites
// never touch the storage primitive directly and tests can inject fakes.
package kv

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is a raw slot with its metadata.
type Entry struct {
	Key       string
	Value     json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// KV is a persistent string-keyed store of JSON-serializable values.
// Get on a missing key returns an error wrapping sql.ErrNoRows.
// Writes replace the whole slot; last writer wins, with no coordination
// between processes sharing the same store.
type KV interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)
	ListKeys(ctx context.Context) ([]string, error)
	// GetRaw returns the undecoded slot so callers can own decode
	// error handling themselves.
	GetRaw(ctx context.Context, key string) (Entry, error)
	// Update applies fn to the slot's current raw value and writes the
	// result atomically, so in-process read-modify-write sequences
	// cannot interleave. fn receives whether the key exists; an error
	// from fn aborts the update with nothing written.
	Update(ctx context.Context, key string, fn func(cur json.RawMessage, exists bool) (json.RawMessage, error)) error
}
