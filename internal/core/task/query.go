package task

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// SortField selects which timestamp a query orders by.
type SortField string

const (
	SortByDeadline SortField = "deadline"
	SortByCreated  SortField = "created"
	SortByUpdated  SortField = "updated"
)

// ParseSortField converts a user-facing sort field name.
func ParseSortField(s string) (SortField, error) {
	switch SortField(strings.ToLower(strings.TrimSpace(s))) {
	case SortByDeadline:
		return SortByDeadline, nil
	case SortByCreated:
		return SortByCreated, nil
	case SortByUpdated:
		return SortByUpdated, nil
	}
	return "", &parseError{"sort field", s, "deadline, created, updated"}
}

// SortOrder selects the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder converts a user-facing sort order name.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	}
	return "", &parseError{"sort order", s, "asc, desc"}
}

// Bucket is a due-date filter choice. BucketAll (or the zero value)
// disables bucket filtering.
type Bucket string

const (
	BucketAll     Bucket = "all"
	BucketOverdue Bucket = "overdue"
	BucketToday   Bucket = "today"
	BucketSoon    Bucket = "soon"
	BucketFuture  Bucket = "future"
)

// ParseBucket converts a user-facing bucket name.
func ParseBucket(s string) (Bucket, error) {
	switch Bucket(strings.ToLower(strings.TrimSpace(s))) {
	case BucketAll:
		return BucketAll, nil
	case BucketOverdue:
		return BucketOverdue, nil
	case BucketToday:
		return BucketToday, nil
	case BucketSoon:
		return BucketSoon, nil
	case BucketFuture:
		return BucketFuture, nil
	}
	return "", &parseError{"due bucket", s, "all, overdue, today, soon, future"}
}

// urgency returns the urgency a bucket selects for.
func (b Bucket) urgency() Urgency {
	switch b {
	case BucketOverdue:
		return UrgencyOverdue
	case BucketToday:
		return UrgencyToday
	case BucketSoon:
		return UrgencySoon
	case BucketFuture:
		return UrgencyNormal
	default:
		return UrgencyNone
	}
}

type parseError struct {
	what     string
	got      string
	expected string
}

func (e *parseError) Error() string {
	return "unknown " + e.what + " \"" + e.got + "\" (expected one of: " + e.expected + ")"
}

// Params describes a query over the task collection. Zero-valued filters
// are no-ops, so the zero Params returns the whole collection sorted by
// deadline ascending.
type Params struct {
	// Search keeps tasks whose title, description, or ID contains the
	// term, case-insensitively. Empty disables the filter.
	Search string
	// Status keeps only tasks with exactly this status. Nil disables.
	Status *Status
	// Due keeps only tasks classified into this bucket against now.
	// Empty or BucketAll disables. Tasks without a deadline and tasks in
	// a finished state never land in a non-all bucket.
	Due Bucket
	// SortField defaults to deadline when empty.
	SortField SortField
	// SortOrder defaults to ascending when empty.
	SortOrder SortOrder
}

// FilterAndSort returns the ordered subset of tasks selected by params,
// evaluated against the given moment. It is a pure function: the input
// slice and its tasks are never mutated, and it never fails — absent
// filters are no-ops and an empty result is an empty slice.
//
// Ordering is a stable sort on the chosen timestamp. A task missing that
// timestamp sorts as if it were infinitely far in the future: last in
// ascending order, first in descending. Equal keys keep their prior
// relative order.
func FilterAndSort(tasks []Task, params Params, now time.Time) []Task {
	out := make([]Task, 0, len(tasks))

	search := strings.ToLower(strings.TrimSpace(params.Search))
	for _, t := range tasks {
		if search != "" && !matches(t, search) {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		if params.Due != "" && params.Due != BucketAll && Classify(t, now) != params.Due.urgency() {
			continue
		}
		out = append(out, t)
	}

	field := params.SortField
	if field == "" {
		field = SortByDeadline
	}
	desc := params.SortOrder == SortDesc

	slices.SortStableFunc(out, func(a, b Task) int {
		ka, aok := sortKey(a, field)
		kb, bok := sortKey(b, field)

		var c int
		switch {
		case !aok && !bok:
			c = 0
		case !aok:
			c = 1
		case !bok:
			c = -1
		default:
			c = cmp.Compare(ka, kb)
		}
		if desc {
			c = -c
		}
		return c
	})

	return out
}

// matches reports whether the lowercased term occurs in the task's
// title, description, or ID.
func matches(t Task, term string) bool {
	return strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Description), term) ||
		strings.Contains(strings.ToLower(t.ID), term)
}

func sortKey(t Task, field SortField) (int64, bool) {
	switch field {
	case SortByCreated:
		return t.CreatedAt.UnixNano(), true
	case SortByUpdated:
		return t.UpdatedAt.UnixNano(), true
	default:
		if t.Deadline == nil {
			return 0, false
		}
		return t.Deadline.UnixNano(), true
	}
}

// DueToday returns the tasks whose deadline falls on the same calendar
// date as now, ignoring time of day. Dates are compared in now's
// location so callers control which wall clock "today" means.
func DueToday(tasks []Task, now time.Time) []Task {
	y, m, d := now.Date()
	out := make([]Task, 0)
	for _, t := range tasks {
		if t.Deadline == nil {
			continue
		}
		dy, dm, dd := t.Deadline.In(now.Location()).Date()
		if dy == y && dm == m && dd == d {
			out = append(out, t)
		}
	}
	return out
}

// Archived returns the tasks in the archived state.
func Archived(tasks []Task) []Task {
	out := make([]Task, 0)
	for _, t := range tasks {
		if t.Status == StatusArchived {
			out = append(out, t)
		}
	}
	return out
}
