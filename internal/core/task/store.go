package task

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a task does not exist in the collection.
	ErrNotFound = errors.New("task not found")
	// ErrDecode is returned when the persisted collection cannot be decoded.
	// The stored data is never guess-repaired; callers decide how to surface it.
	ErrDecode = errors.New("stored task data is corrupt")
	// ErrWrite is returned when the underlying storage rejects a write.
	// A dropped write is silent data loss, so callers must not ignore it.
	ErrWrite = errors.New("task data write rejected")
)

// Store is the persistence boundary for the task collection. The entire
// collection lives in a single durable slot; there is no partial persistence.
// Writes are last-write-wins with no coordination across processes.
type Store interface {
	// LoadAll returns every persisted task. A missing slot yields an
	// empty list; malformed data yields an error wrapping ErrDecode.
	LoadAll(ctx context.Context) ([]Task, error)

	// SaveAll overwrites the slot with the given list in one write.
	// Storage rejection yields an error wrapping ErrWrite.
	SaveAll(ctx context.Context, tasks []Task) error

	// AddOne appends a task: LoadAll, append, SaveAll. Duplicate IDs are
	// not checked here; ID uniqueness is the caller's responsibility.
	AddOne(ctx context.Context, t Task) error
}
