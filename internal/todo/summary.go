package todo

import "time"

// Summary holds the due-date bucket counts shown in the header. Buckets are
// computed over the canonical list, not the filtered projection, and a
// completed task never lands in a date bucket.
type Summary struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
	DueToday  int
	Upcoming  int
}

// Summarize buckets todos relative to now's calendar day.
func Summarize(todos []Todo, now time.Time) Summary {
	var s Summary
	s.Total = len(todos)
	for _, t := range todos {
		if t.Completed {
			s.Completed++
			continue
		}
		s.Pending++
		if t.DueDate == nil {
			continue
		}
		switch {
		case BeforeDay(*t.DueDate, now):
			s.Overdue++
		case SameDay(*t.DueDate, now):
			s.DueToday++
		default:
			s.Upcoming++
		}
	}
	return s
}
