package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/waggle/internal/core/task"
)

func TestShortID(t *testing.T) {
	assert.Equal(t, "4f21ab9c", shortID("4f21ab9c-93c1-4a7e-9d1f-000000000000"))
	assert.Equal(t, "t-123", shortID("t-123"))
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "-", formatTags(nil))
	assert.Equal(t, "work,urgent", formatTags([]task.Tag{task.TagWork, task.TagUrgent}))
}

func TestFormatDeadline(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	layout := "2006-01-02"

	t.Run("no deadline", func(t *testing.T) {
		assert.Equal(t, "-", formatDeadline(task.Task{}, now, layout))
	})

	t.Run("overdue is annotated", func(t *testing.T) {
		past := now.Add(-48 * time.Hour)
		got := formatDeadline(task.Task{Deadline: &past}, now, layout)
		assert.Contains(t, got, "(overdue)")
	})

	t.Run("finished task has no annotation", func(t *testing.T) {
		past := now.Add(-48 * time.Hour)
		got := formatDeadline(task.Task{Status: task.StatusDone, Deadline: &past}, now, layout)
		assert.NotContains(t, got, "(")
	})
}

func TestRenderTable(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		renderTable(&buf, nil, now, "2006-01-02")
		assert.Contains(t, buf.String(), "No tasks found")
	})

	t.Run("rows", func(t *testing.T) {
		deadline := now.Add(24 * time.Hour)
		tasks := []task.Task{
			{ID: "aaaabbbb-0000", Title: "write release notes", Status: task.StatusTodo, Deadline: &deadline},
			{ID: "ccccdddd-0000", Title: "file expenses", Status: task.StatusDone, Tags: []task.Tag{task.TagPersonal}},
		}

		var buf bytes.Buffer
		renderTable(&buf, tasks, now, "2006-01-02")
		out := buf.String()

		assert.Contains(t, out, "ID")
		assert.Contains(t, out, "aaaabbbb")
		assert.Contains(t, out, "write release notes")
		assert.Contains(t, out, "personal")
		assert.Equal(t, 3, strings.Count(out, "\n"), "header plus one line per task")
	})
}
