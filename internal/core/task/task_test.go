package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNew(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(48 * time.Hour)

	got := New("Fix bug", "crash on save", &deadline, []Tag{TagWork, TagUrgent}, now)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Fix bug", got.Title)
	assert.Equal(t, StatusTodo, got.Status)
	assert.Equal(t, now, got.CreatedAt)
	assert.Equal(t, now, got.UpdatedAt)
	require.NotNil(t, got.Deadline)
	assert.Equal(t, deadline, *got.Deadline)
}

func TestNew_UniqueIDs(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for range 50 {
		seen[New("t", "", nil, nil, now).ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestApply(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	edited := created.Add(time.Hour)
	deadline := created.Add(24 * time.Hour)

	tk := New("Old title", "old desc", &deadline, []Tag{TagWork}, created)

	t.Run("merges changed fields and stamps UpdatedAt", func(t *testing.T) {
		got := tk
		got.Apply(Patch{Title: ptr("New title")}, edited)

		assert.Equal(t, "New title", got.Title)
		assert.Equal(t, "old desc", got.Description)
		assert.Equal(t, created, got.CreatedAt)
		assert.Equal(t, edited, got.UpdatedAt)
		assert.Equal(t, tk.ID, got.ID)
	})

	t.Run("clears deadline", func(t *testing.T) {
		got := tk
		got.Apply(Patch{ClearDeadline: true}, edited)
		assert.Nil(t, got.Deadline)
	})

	t.Run("replaces tags", func(t *testing.T) {
		got := tk
		got.Apply(Patch{Tags: []Tag{TagPersonal, TagLowPriority}}, edited)
		assert.Equal(t, []Tag{TagPersonal, TagLowPriority}, got.Tags)
	})

	t.Run("nil patch fields leave values alone", func(t *testing.T) {
		got := tk
		got.Apply(Patch{}, edited)
		assert.Equal(t, tk.Title, got.Title)
		assert.Equal(t, tk.Tags, got.Tags)
		require.NotNil(t, got.Deadline)
		assert.Equal(t, edited, got.UpdatedAt)
	})
}

func TestSetStatus(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Minute)

	tk := New("t", "", nil, nil, created)
	tk.SetStatus(StatusDone, later)

	assert.Equal(t, StatusDone, tk.Status)
	assert.Equal(t, later, tk.UpdatedAt)
	assert.Equal(t, created, tk.CreatedAt)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"todo", StatusTodo, false},
		{"in-progress", StatusInProgress, false},
		{"  Done ", StatusDone, false},
		{"cancelled", StatusCancelled, false},
		{"archived", StatusArchived, false},
		{"bogus", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTask_JSONRoundTrip(t *testing.T) {
	created := time.Date(2025, 6, 1, 8, 30, 15, 123_000_000, time.UTC)
	updated := created.Add(90 * time.Minute)
	deadline := created.Add(72 * time.Hour)

	tasks := []Task{
		{
			ID:          "a1",
			Title:       "With everything",
			Description: "full fields",
			Status:      StatusInProgress,
			CreatedAt:   created,
			UpdatedAt:   updated,
			Deadline:    &deadline,
			Tags:        []Tag{TagWork, TagUrgent},
		},
		{
			ID:        "a2",
			Title:     "Bare minimum",
			Status:    StatusTodo,
			CreatedAt: created,
			UpdatedAt: created,
		},
	}

	data, err := json.Marshal(tasks)
	require.NoError(t, err)

	var got []Task
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)

	// Timestamps survive to the millisecond; absence stays absent.
	assert.True(t, got[0].CreatedAt.Equal(created))
	assert.True(t, got[0].UpdatedAt.Equal(updated))
	require.NotNil(t, got[0].Deadline)
	assert.True(t, got[0].Deadline.Equal(deadline))
	assert.Equal(t, []Tag{TagWork, TagUrgent}, got[0].Tags)

	assert.Nil(t, got[1].Deadline)
	assert.Empty(t, got[1].Tags)
	assert.Empty(t, got[1].Description)
}

func TestTask_WireShape(t *testing.T) {
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	deadline := created.Add(24 * time.Hour)

	data, err := json.Marshal(Task{
		ID:        "w1",
		Title:     "Wire",
		Status:    StatusArchived,
		CreatedAt: created,
		UpdatedAt: created,
		Deadline:  &deadline,
		Tags:      []Tag{TagLowPriority},
	})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	// Enums travel as integers, timestamps as ISO-8601 strings.
	assert.Equal(t, float64(4), raw["status"])
	assert.Equal(t, []any{float64(3)}, raw["tags"])
	assert.Equal(t, "2025-06-01T08:00:00.000Z", raw["createdAt"])
	assert.Equal(t, "2025-06-02T08:00:00.000Z", raw["deadline"])
	_, hasDesc := raw["description"]
	assert.False(t, hasDesc)
}

func TestTask_UnmarshalRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"status out of range", `{"id":"x","title":"t","status":9,"createdAt":"2025-06-01T08:00:00.000Z","updatedAt":"2025-06-01T08:00:00.000Z"}`},
		{"tag out of range", `{"id":"x","title":"t","status":0,"createdAt":"2025-06-01T08:00:00.000Z","updatedAt":"2025-06-01T08:00:00.000Z","tags":[7]}`},
		{"bad timestamp", `{"id":"x","title":"t","status":0,"createdAt":"yesterday","updatedAt":"2025-06-01T08:00:00.000Z"}`},
		{"not an object", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tk Task
			assert.Error(t, json.Unmarshal([]byte(tt.in), &tk))
		})
	}
}
