package todo

import (
	"sort"
	"strings"
	"time"
)

// StatusFilter selects by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// SortKey names the field a projection is ordered by.
type SortKey string

const (
	SortCreated  SortKey = "createdAt"
	SortDue      SortKey = "dueDate"
	SortPriority SortKey = "priority"
	SortTitle    SortKey = "title"
)

// SortOrder is the projection direction.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Filter is the ephemeral view state: selectors, search term, and sort.
// Empty Category/Priority mean "all". It is never persisted.
type Filter struct {
	Category Category
	Priority Priority
	Status   StatusFilter
	Search   string
	SortBy   SortKey
	Order    SortOrder
}

// DefaultFilter shows everything, newest first.
func DefaultFilter() Filter {
	return Filter{
		Status: StatusAll,
		SortBy: SortCreated,
		Order:  Descending,
	}
}

// Matches reports whether t independently satisfies every active predicate.
func (f Filter) Matches(t Todo) bool {
	if q := strings.TrimSpace(f.Search); q != "" {
		q = strings.ToLower(q)
		inTitle := strings.Contains(strings.ToLower(t.Title), q)
		inDesc := t.Description != "" && strings.Contains(strings.ToLower(t.Description), q)
		if !inTitle && !inDesc {
			return false
		}
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	switch f.Status {
	case StatusCompleted:
		if !t.Completed {
			return false
		}
	case StatusPending:
		if t.Completed {
			return false
		}
	}
	return true
}

// Apply returns the filtered, sorted projection of todos. The input slice
// is never mutated.
func (f Filter) Apply(todos []Todo) []Todo {
	var out []Todo
	for _, t := range todos {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		c := compareBy(f.SortBy, out[i], out[j])
		if f.Order == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// compareBy orders a and b under the given key. A missing due date keys at
// the zero time, so undated tasks lead ascending due-date projections and
// trail descending ones.
func compareBy(key SortKey, a, b Todo) int {
	switch key {
	case SortTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case SortDue:
		at, bt := dueKey(a), dueKey(b)
		return at.Compare(bt)
	case SortPriority:
		return a.Priority.Rank() - b.Priority.Rank()
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func dueKey(t Todo) time.Time {
	if t.DueDate == nil {
		return time.Time{}
	}
	return *t.DueDate
}
