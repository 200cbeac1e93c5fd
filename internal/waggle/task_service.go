package waggle

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/waggle/internal/core/task"
)

// TaskService implements the task operations the commands and TUI call.
// It composes the store with the query engine; all reads go through
// LoadAll and all mutations are read-modify-write over the whole
// collection. Field validation happens before this layer.
type TaskService struct {
	store  task.Store
	logger zerolog.Logger
	now    func() time.Time
}

// NewTaskService creates a task service over the given store.
func NewTaskService(store task.Store, logger zerolog.Logger) *TaskService {
	return &TaskService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Create builds a new task and appends it to the collection.
func (s *TaskService) Create(ctx context.Context, title, description string, deadline *time.Time, tags []task.Tag) (task.Task, error) {
	t := task.New(title, description, deadline, tags, s.now())

	if err := s.store.AddOne(ctx, t); err != nil {
		return task.Task{}, err
	}

	s.logger.Info().Str("id", t.ID).Str("title", t.Title).Msg("task created")
	return t, nil
}

// Get returns a single task by ID.
func (s *TaskService) Get(ctx context.Context, id string) (task.Task, error) {
	tasks, err := s.store.LoadAll(ctx)
	if err != nil {
		return task.Task{}, err
	}

	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}

	return task.Task{}, fmt.Errorf("%w: %s", task.ErrNotFound, id)
}

// Edit merges the patch into the task with the given ID and persists
// the collection. Returns the updated task.
func (s *TaskService) Edit(ctx context.Context, id string, patch task.Patch) (task.Task, error) {
	var updated task.Task

	err := s.mutate(ctx, id, func(t *task.Task) {
		t.Apply(patch, s.now())
		updated = *t
	})
	if err != nil {
		return task.Task{}, err
	}

	s.logger.Info().Str("id", id).Msg("task edited")
	return updated, nil
}

// SetStatus changes a task's lifecycle state and persists the collection.
func (s *TaskService) SetStatus(ctx context.Context, id string, status task.Status) (task.Task, error) {
	var updated task.Task

	err := s.mutate(ctx, id, func(t *task.Task) {
		t.SetStatus(status, s.now())
		updated = *t
	})
	if err != nil {
		return task.Task{}, err
	}

	s.logger.Info().Str("id", id).Str("status", status.String()).Msg("task status changed")
	return updated, nil
}

// Delete removes a task from the collection by ID.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	tasks, err := s.store.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]task.Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("%w: %s", task.ErrNotFound, id)
	}

	if err := s.store.SaveAll(ctx, kept); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("task deleted")
	return nil
}

// List returns the filtered, ordered view selected by params, evaluated
// against a single point in time.
func (s *TaskService) List(ctx context.Context, params task.Params) ([]task.Task, error) {
	tasks, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	return task.FilterAndSort(tasks, params, s.now()), nil
}

// DueToday returns the tasks whose deadline falls on today's calendar date.
func (s *TaskService) DueToday(ctx context.Context) ([]task.Task, error) {
	tasks, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	return task.DueToday(tasks, s.now()), nil
}

// Archived returns the archived tasks.
func (s *TaskService) Archived(ctx context.Context) ([]task.Task, error) {
	tasks, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	return task.Archived(tasks), nil
}

// Import appends the given tasks to the collection as-is, preserving
// their IDs and timestamps. Returns the new collection size.
func (s *TaskService) Import(ctx context.Context, incoming []task.Task) (int, error) {
	tasks, err := s.store.LoadAll(ctx)
	if err != nil {
		return 0, err
	}

	tasks = append(tasks, incoming...)
	if err := s.store.SaveAll(ctx, tasks); err != nil {
		return 0, err
	}

	s.logger.Info().Int("count", len(incoming)).Msg("tasks imported")
	return len(tasks), nil
}

// Export returns the full collection in storage order.
func (s *TaskService) Export(ctx context.Context) ([]task.Task, error) {
	return s.store.LoadAll(ctx)
}

// mutate applies fn to the task with the given ID and saves the whole
// collection. The load-modify-save sequence is atomic only within this
// process; concurrent writers from other processes are last-write-wins.
func (s *TaskService) mutate(ctx context.Context, id string, fn func(*task.Task)) error {
	tasks, err := s.store.LoadAll(ctx)
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			fn(&tasks[i])
			return s.store.SaveAll(ctx, tasks)
		}
	}

	return fmt.Errorf("%w: %s", task.ErrNotFound, id)
}
