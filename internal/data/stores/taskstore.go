package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/colonyops/waggle/internal/core/kv"
	"github.com/colonyops/waggle/internal/core/task"
)

// TasksKey is the slot holding the entire task collection as one
// JSON-encoded array. This key name is part of the storage contract.
const TasksKey = "tasks"

// TaskStore implements task.Store over a single KV slot. The whole
// collection is rewritten on every save; there is no partial persistence.
type TaskStore struct {
	kv kv.KV
}

var _ task.Store = (*TaskStore)(nil)

// NewTaskStore creates a task store backed by the given KV store.
func NewTaskStore(kv kv.KV) *TaskStore {
	return &TaskStore{kv: kv}
}

// LoadAll returns every persisted task. A missing slot yields an empty
// list. Malformed data yields an error wrapping task.ErrDecode and is
// never repaired in place.
func (s *TaskStore) LoadAll(ctx context.Context) ([]task.Task, error) {
	entry, err := s.kv.GetRaw(ctx, TasksKey)
	if err != nil {
		if IsNotFound(err) {
			return []task.Task{}, nil
		}
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(entry.Value, &tasks); err != nil {
		return nil, fmt.Errorf("load tasks: %w: %w", task.ErrDecode, err)
	}
	if tasks == nil {
		tasks = []task.Task{}
	}

	return tasks, nil
}

// SaveAll overwrites the slot with the given list in one write.
// A rejected write yields an error wrapping task.ErrWrite.
func (s *TaskStore) SaveAll(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("save tasks: %w: %w", task.ErrWrite, err)
	}

	if err := s.kv.Set(ctx, TasksKey, json.RawMessage(data)); err != nil {
		return fmt.Errorf("save tasks: %w: %w", task.ErrWrite, err)
	}

	return nil
}

// AddOne appends a task to the collection. The read and write happen
// in one transaction, so two in-process adds cannot lose each other.
// Duplicate IDs are not checked here; ID uniqueness is the caller's
// responsibility.
func (s *TaskStore) AddOne(ctx context.Context, t task.Task) error {
	err := s.kv.Update(ctx, TasksKey, func(cur json.RawMessage, exists bool) (json.RawMessage, error) {
		var tasks []task.Task
		if exists {
			if err := json.Unmarshal(cur, &tasks); err != nil {
				return nil, fmt.Errorf("load tasks: %w: %w", task.ErrDecode, err)
			}
		}

		data, err := json.Marshal(append(tasks, t))
		if err != nil {
			return nil, fmt.Errorf("save tasks: %w: %w", task.ErrWrite, err)
		}
		return data, nil
	})
	if err != nil {
		if errors.Is(err, task.ErrDecode) || errors.Is(err, task.ErrWrite) {
			return err
		}
		return fmt.Errorf("save tasks: %w: %w", task.ErrWrite, err)
	}

	return nil
}
