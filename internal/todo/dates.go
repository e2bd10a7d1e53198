package todo

import (
	"fmt"
	"time"
)

// Day truncates t to its calendar day in t's location. All due-date
// comparisons go through this so time-of-day never influences whether a
// task counts as overdue.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// BeforeDay reports whether a falls on a strictly earlier calendar day
// than b.
func BeforeDay(a, b time.Time) bool {
	return Day(a).Before(Day(b))
}

// AfterDay reports whether a falls on a strictly later calendar day than b.
func AfterDay(a, b time.Time) bool {
	return Day(a).After(Day(b))
}

// DaysBetween returns the number of whole calendar days from a to b,
// negative when b is earlier. Days are compared in UTC so a DST shift
// cannot make a day count as 23 or 25 hours.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// RelativeDay renders t relative to now for display: "today", "tomorrow",
// "3 days ago", "in 5 days".
func RelativeDay(t, now time.Time) string {
	days := DaysBetween(now, t)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
