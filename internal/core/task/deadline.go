package task

import (
	"math"
	"time"
)

// Urgency is the deadline bucket used for display emphasis.
type Urgency int

const (
	UrgencyNone Urgency = iota
	UrgencyOverdue
	UrgencyToday
	UrgencySoon
	UrgencyNormal
)

func (u Urgency) String() string {
	switch u {
	case UrgencyOverdue:
		return "overdue"
	case UrgencyToday:
		return "today"
	case UrgencySoon:
		return "soon"
	case UrgencyNormal:
		return "normal"
	default:
		return "none"
	}
}

// Classify maps a task's deadline to an urgency bucket relative to now.
//
// Tasks without a deadline, and tasks in a finished state, are never
// urgent regardless of their deadline. Remaining time is bucketed on a
// whole-day ceiling at full time-of-day precision, so a deadline one hour
// away and one 23 hours away both count as one day remaining. Any
// deadline already in the past is overdue, even by a second.
//
// Classify is pure and cheap; callers rendering a batch should capture
// now once so every row shares the same urgency snapshot.
func Classify(t Task, now time.Time) Urgency {
	if t.Deadline == nil {
		return UrgencyNone
	}
	if t.Status.Finished() {
		return UrgencyNone
	}

	remaining := t.Deadline.Sub(now)
	if remaining < 0 {
		return UrgencyOverdue
	}

	days := int(math.Ceil(remaining.Hours() / 24))
	switch {
	case days == 0:
		return UrgencyToday
	case days <= 3:
		return UrgencySoon
	default:
		return UrgencyNormal
	}
}
