package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/colonyops/waggle/internal/core/styles"
	"github.com/colonyops/waggle/internal/core/task"
	"github.com/colonyops/waggle/internal/waggle"
)

// shortID trims a UUID down to something typeable. Commands accept any
// unique ID prefix, so the short form shown here is enough to act on.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID expands an ID prefix to the full task ID. The prefix must
// match exactly one task.
func resolveID(ctx context.Context, app *waggle.App, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("task id is required")
	}

	tasks, err := app.Tasks.Export(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, t := range tasks {
		if t.ID == prefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", task.ErrNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q is ambiguous (%d matches)", prefix, len(matches))
	}
}

func formatTags(tags []task.Tag) string {
	if len(tags) == 0 {
		return "-"
	}
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}
	return strings.Join(names, ",")
}

// formatDeadline renders the deadline with its urgency bucket. Output
// stays unstyled; ANSI escapes would throw off tabwriter's columns.
func formatDeadline(t task.Task, now time.Time, layout string) string {
	if t.Deadline == nil {
		return "-"
	}

	text := t.Deadline.Local().Format(layout)
	u := task.Classify(t, now)
	if u == task.UrgencyNone {
		return text
	}
	return text + " (" + u.String() + ")"
}

// renderTable writes the standard task table. now is captured once so
// every row shares the same urgency snapshot.
func renderTable(out io.Writer, tasks []task.Task, now time.Time, dateLayout string) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, styles.MutedStyle.Render("No tasks found"))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tDUE\tTAGS")

	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID),
			t.Title,
			t.Status.String(),
			formatDeadline(t, now, dateLayout),
			formatTags(t.Tags),
		)
	}

	_ = w.Flush()
}
