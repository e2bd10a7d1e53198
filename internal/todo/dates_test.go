package todo

import (
	"testing"
	"time"
)

func TestDayComparisons(t *testing.T) {
	morning := time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 16, 0, 0, 1, 0, time.UTC)

	if !SameDay(morning, evening) {
		t.Error("same calendar day not recognized")
	}
	if SameDay(evening, nextDay) {
		t.Error("different days reported as same")
	}
	if !BeforeDay(evening, nextDay) {
		t.Error("earlier day not before later day")
	}
	if BeforeDay(morning, evening) {
		t.Error("time-of-day leaked into day comparison")
	}
	if !AfterDay(nextDay, evening) {
		t.Error("later day not after earlier day")
	}
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", base, base.Add(-20 * time.Hour), 0},
		{"next day", base, base.AddDate(0, 0, 1), 1},
		{"previous week", base, base.AddDate(0, 0, -7), -7},
		{"late night to early morning", base, base.Add(2 * time.Hour), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRelativeDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"today", now.Add(5 * time.Hour), "today"},
		{"tomorrow", now.AddDate(0, 0, 1), "tomorrow"},
		{"yesterday", now.AddDate(0, 0, -1), "yesterday"},
		{"past", now.AddDate(0, 0, -4), "4 days ago"},
		{"future", now.AddDate(0, 0, 10), "in 10 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeDay(tt.t, now); got != tt.want {
				t.Errorf("RelativeDay: got %q, want %q", got, tt.want)
			}
		})
	}
}
