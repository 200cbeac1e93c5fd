// Package task defines the task domain model, its persisted wire format,
// and the pure query and deadline-classification logic that operates on it.
package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a task.
type Status int

const (
	StatusTodo Status = iota
	StatusInProgress
	StatusDone
	StatusCancelled
	StatusArchived
)

var statusNames = map[Status]string{
	StatusTodo:       "todo",
	StatusInProgress: "in-progress",
	StatusDone:       "done",
	StatusCancelled:  "cancelled",
	StatusArchived:   "archived",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// Finished reports whether s is a terminal or inactive state.
// Finished tasks are never assigned a deadline urgency.
func (s Status) Finished() bool {
	return s == StatusDone || s == StatusCancelled || s == StatusArchived
}

// ParseStatus converts a user-facing status name to its Status value.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == strings.ToLower(strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q (expected one of: todo, in-progress, done, cancelled, archived)", s)
}

// StatusNames returns all status names in lifecycle order.
func StatusNames() []string {
	return []string{"todo", "in-progress", "done", "cancelled", "archived"}
}

// Tag is a non-exclusive categorical label on a task.
type Tag int

const (
	TagWork Tag = iota
	TagPersonal
	TagUrgent
	TagLowPriority
)

var tagNames = map[Tag]string{
	TagWork:        "work",
	TagPersonal:    "personal",
	TagUrgent:      "urgent",
	TagLowPriority: "low-priority",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// Valid reports whether t is one of the defined tags.
func (t Tag) Valid() bool {
	_, ok := tagNames[t]
	return ok
}

// ParseTag converts a user-facing tag name to its Tag value.
func ParseTag(s string) (Tag, error) {
	for tag, name := range tagNames {
		if name == strings.ToLower(strings.TrimSpace(s)) {
			return tag, nil
		}
	}
	return 0, fmt.Errorf("unknown tag %q (expected one of: work, personal, urgent, low-priority)", s)
}

// TagNames returns all tag names in wire order.
func TagNames() []string {
	return []string{"work", "personal", "urgent", "low-priority"}
}

// Task is the persisted work item.
//
// ID is assigned once at creation and never reassigned. CreatedAt is
// immutable after creation; UpdatedAt is stamped on every mutation.
// A nil Deadline means "no deadline", not "overdue". Tags are treated
// as a set but duplicates are not actively removed.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Deadline    *time.Time
	Tags        []Tag
}

// New creates a task with a fresh ID and both timestamps set to now.
func New(title, description string, deadline *time.Time, tags []Tag, now time.Time) Task {
	return Task{
		ID:          NewID(now),
		Title:       title,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
		Deadline:    deadline,
		Tags:        tags,
	}
}

// NewID returns a random UUID, falling back to a timestamp-derived
// identifier if the system random source is unavailable.
func NewID(now time.Time) string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("t-%d", now.UnixNano())
	}
	return id.String()
}

// Patch holds optional field changes for Apply. Nil fields are left as-is.
type Patch struct {
	Title       *string
	Description *string
	Deadline    *time.Time
	// ClearDeadline removes the deadline entirely. Takes precedence
	// over Deadline.
	ClearDeadline bool
	Tags          []Tag
	ClearTags     bool
}

// Apply merges the patch into t and stamps UpdatedAt. CreatedAt, ID, and
// Status are never touched; status changes go through SetStatus.
func (t *Task) Apply(p Patch, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	switch {
	case p.ClearDeadline:
		t.Deadline = nil
	case p.Deadline != nil:
		t.Deadline = p.Deadline
	}
	switch {
	case p.ClearTags:
		t.Tags = nil
	case p.Tags != nil:
		t.Tags = p.Tags
	}
	t.UpdatedAt = now
}

// SetStatus changes the lifecycle state and stamps UpdatedAt.
func (t *Task) SetStatus(s Status, now time.Time) {
	t.Status = s
	t.UpdatedAt = now
}

// isoMillis is the serialized timestamp layout: UTC, millisecond precision.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// taskJSON is the persisted shape of a task. Statuses and tags travel as
// small integers; timestamps as ISO-8601 strings. This layout is the
// storage compatibility contract and must not drift.
type taskJSON struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Status      int     `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	Deadline    *string `json:"deadline,omitempty"`
	Tags        []int   `json:"tags,omitempty"`
}

// MarshalJSON encodes the task in its wire format.
func (t Task) MarshalJSON() ([]byte, error) {
	rec := taskJSON{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      int(t.Status),
		CreatedAt:   t.CreatedAt.UTC().Format(isoMillis),
		UpdatedAt:   t.UpdatedAt.UTC().Format(isoMillis),
	}
	if t.Deadline != nil {
		s := t.Deadline.UTC().Format(isoMillis)
		rec.Deadline = &s
	}
	if len(t.Tags) > 0 {
		rec.Tags = make([]int, len(t.Tags))
		for i, tag := range t.Tags {
			rec.Tags[i] = int(tag)
		}
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes the wire format, validating enum ranges and
// timestamp syntax. Any violation fails the whole decode.
func (t *Task) UnmarshalJSON(data []byte) error {
	var rec taskJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	status := Status(rec.Status)
	if !status.Valid() {
		return fmt.Errorf("task %q: status %d out of range", rec.ID, rec.Status)
	}

	createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("task %q: createdAt: %w", rec.ID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("task %q: updatedAt: %w", rec.ID, err)
	}

	var deadline *time.Time
	if rec.Deadline != nil {
		d, err := time.Parse(time.RFC3339, *rec.Deadline)
		if err != nil {
			return fmt.Errorf("task %q: deadline: %w", rec.ID, err)
		}
		deadline = &d
	}

	var tags []Tag
	if len(rec.Tags) > 0 {
		tags = make([]Tag, len(rec.Tags))
		for i, raw := range rec.Tags {
			tag := Tag(raw)
			if !tag.Valid() {
				return fmt.Errorf("task %q: tag %d out of range", rec.ID, raw)
			}
			tags[i] = tag
		}
	}

	*t = Task{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Deadline:    deadline,
		Tags:        tags,
	}
	return nil
}
