package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	deadlineAt := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}

	tests := []struct {
		name     string
		deadline *time.Time
		status   Status
		want     Urgency
	}{
		{"no deadline", nil, StatusTodo, UrgencyNone},
		{"past by one second", deadlineAt(-time.Second), StatusTodo, UrgencyOverdue},
		{"past by a week", deadlineAt(-7 * 24 * time.Hour), StatusTodo, UrgencyOverdue},
		{"exactly now", deadlineAt(0), StatusTodo, UrgencyToday},
		{"one hour away", deadlineAt(time.Hour), StatusTodo, UrgencySoon},
		{"23 hours away", deadlineAt(23 * time.Hour), StatusTodo, UrgencySoon},
		{"24h01m away rounds up past one day", deadlineAt(24*time.Hour + time.Minute), StatusTodo, UrgencySoon},
		{"three days away", deadlineAt(72 * time.Hour), StatusTodo, UrgencySoon},
		{"just over three days", deadlineAt(72*time.Hour + time.Minute), StatusTodo, UrgencyNormal},
		{"far future", deadlineAt(30 * 24 * time.Hour), StatusTodo, UrgencyNormal},
		{"in progress still classified", deadlineAt(-time.Hour), StatusInProgress, UrgencyOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := Task{ID: "x", Title: "x", Status: tt.status, Deadline: tt.deadline}
			assert.Equal(t, tt.want, Classify(tk, now))
		})
	}
}

func TestClassify_FinishedStatusGating(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	deadlines := map[string]time.Time{
		"past":    now.Add(-48 * time.Hour),
		"present": now,
		"future":  now.Add(48 * time.Hour),
	}

	for _, status := range []Status{StatusDone, StatusCancelled, StatusArchived} {
		for name, d := range deadlines {
			t.Run(status.String()+"/"+name, func(t *testing.T) {
				tk := Task{ID: "x", Title: "x", Status: status, Deadline: &d}
				assert.Equal(t, UrgencyNone, Classify(tk, now))
			})
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(36 * time.Hour)
	tk := Task{ID: "x", Title: "x", Status: StatusTodo, Deadline: &deadline}

	first := Classify(tk, now)
	second := Classify(tk, now)
	assert.Equal(t, first, second)
}
