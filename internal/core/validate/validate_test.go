package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskTitle(t *testing.T) {
	assert.NoError(t, TaskTitle("Fix bug"))
	assert.Error(t, TaskTitle(""))
	assert.Error(t, TaskTitle("   "))
}

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"date only", "2025-06-10", time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)},
		{"date and time", "2025-06-10 14:30", time.Date(2025, 6, 10, 14, 30, 0, 0, time.Local)},
		{"rfc3339", "2025-06-10T14:30:00Z", time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)},
		{"padded", "  2025-06-10  ", time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeadline(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}

	_, err := ParseDeadline("next tuesday")
	assert.Error(t, err)
}

func TestDeadline(t *testing.T) {
	assert.NoError(t, Deadline(""))
	assert.NoError(t, Deadline("2025-06-10"))
	assert.Error(t, Deadline("whenever"))
}
