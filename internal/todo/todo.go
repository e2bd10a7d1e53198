// Package todo owns the canonical task list and the projections over it.
package todo

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies a todo. Valid values come from the active Scheme.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryLearning Category = "Learning"
	CategoryHealth   Category = "Health"
	CategoryFinance  Category = "Finance"
	CategoryOther    Category = "Other"
)

// Priority is an ordered urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank returns the sort rank of a priority. Unknown priorities rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	}
	return 0
}

// Scheme is a category/priority enumeration pair. Two schemes ship: the
// default six-by-four one and a compact three-by-three one. Everything else
// (filtering, sorting, summaries) is scheme-independent.
type Scheme struct {
	Name       string
	Categories []Category
	Priorities []Priority
}

// DefaultScheme returns the full enumeration.
func DefaultScheme() Scheme {
	return Scheme{
		Name: "default",
		Categories: []Category{
			CategoryWork, CategoryPersonal, CategoryLearning,
			CategoryHealth, CategoryFinance, CategoryOther,
		},
		Priorities: []Priority{
			PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent,
		},
	}
}

// CompactScheme returns the reduced enumeration.
func CompactScheme() Scheme {
	return Scheme{
		Name:       "compact",
		Categories: []Category{CategoryWork, CategoryPersonal, CategoryLearning},
		Priorities: []Priority{PriorityLow, PriorityMedium, PriorityHigh},
	}
}

// SchemeByName resolves a scheme name from config.
func SchemeByName(name string) (Scheme, error) {
	switch name {
	case "", "default":
		return DefaultScheme(), nil
	case "compact":
		return CompactScheme(), nil
	}
	return Scheme{}, fmt.Errorf("unknown scheme %q", name)
}

// ValidCategory reports whether c belongs to the scheme.
func (s Scheme) ValidCategory(c Category) bool {
	for _, v := range s.Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidPriority reports whether p belongs to the scheme.
func (s Scheme) ValidPriority(p Priority) bool {
	for _, v := range s.Priorities {
		if v == p {
			return true
		}
	}
	return false
}

// Todo is a single task. ID is assigned at creation and never changes.
// DueDate carries calendar-day semantics only.
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Category    Category   `json:"category"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Draft holds the caller-supplied fields for a new todo.
type Draft struct {
	Title       string
	Description string
	Completed   bool
	Category    Category
	Priority    Priority
	DueDate     *time.Time
}

// Validate checks the draft against the scheme. The store calls this itself,
// so a caller that skips form-level validation still cannot create an
// invalid task.
func (d Draft) Validate(s Scheme) error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if !s.ValidCategory(d.Category) {
		return fmt.Errorf("%w: %q", ErrBadCategory, d.Category)
	}
	if !s.ValidPriority(d.Priority) {
		return fmt.Errorf("%w: %q", ErrBadPriority, d.Priority)
	}
	return nil
}
