// Package validate provides the front-door field validation used by the
// create and edit surfaces. The store layer deliberately does not
// validate; required-field violations are caught here before anything
// touches persistence.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// TaskTitle validates a task title is non-empty after trimming whitespace.
func TaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// TitleField returns a criterio validator result for task titles.
func TitleField(field, title string) error {
	return criterio.Run(field, title, TaskTitle)
}

// deadlineLayouts are the accepted input formats for deadlines, tried
// in order. Date-only input lands at midnight local time.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDeadline parses user-entered deadline input.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid deadline %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM, or RFC 3339)", s)
}

// Deadline validates user-entered deadline input, allowing empty.
func Deadline(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := ParseDeadline(s)
	return err
}
