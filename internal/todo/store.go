package todo

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Persister writes the full canonical list to durable storage. Store calls
// it after every successful mutation.
type Persister interface {
	Save(todos []Todo) error
}

// Store owns the canonical task list. All access goes through its methods;
// there is no ambient shared state. Mutations apply fully in memory first,
// then persist. A persistence failure never rolls the mutation back — the
// in-memory list stays authoritative and the failure is handed to the warn
// callback.
type Store struct {
	todos   []Todo
	scheme  Scheme
	backend Persister
	warn    func(error)
	now     func() time.Time
}

// NewStore creates a store persisting through backend. backend and warn may
// be nil.
func NewStore(backend Persister, scheme Scheme, warn func(error)) *Store {
	return &Store{
		scheme:  scheme,
		backend: backend,
		warn:    warn,
		now:     time.Now,
	}
}

// Scheme returns the active category/priority scheme.
func (s *Store) Scheme() Scheme {
	return s.scheme
}

// All returns a copy of the canonical list.
func (s *Store) All() []Todo {
	out := make([]Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.todos)
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (Todo, bool) {
	for _, t := range s.todos {
		if t.ID == id {
			return t, true
		}
	}
	return Todo{}, false
}

// Add validates the draft, assigns a fresh id and timestamps, and appends
// the task. Nothing changes if validation fails.
func (s *Store) Add(d Draft) (Todo, error) {
	if err := d.Validate(s.scheme); err != nil {
		return Todo{}, err
	}
	now := s.now()
	t := Todo{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		Completed:   d.Completed,
		Category:    d.Category,
		Priority:    d.Priority,
		DueDate:     d.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.todos = append(s.todos, t)
	s.persist()
	return t, nil
}

// Changes is a partial update. Nil fields are left alone. ClearDue removes
// the due date; it wins over DueDate.
type Changes struct {
	Title       *string
	Description *string
	Completed   *bool
	Category    *Category
	Priority    *Priority
	DueDate     *time.Time
	ClearDue    bool
}

// Update merges changes into the task with the given id and refreshes
// UpdatedAt. A missing id is a no-op returning false: it means a stale
// reference, not a user-facing failure. Invalid changes are rejected before
// any field is touched.
func (s *Store) Update(id string, ch Changes) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	if ch.Title != nil && strings.TrimSpace(*ch.Title) == "" {
		return false, ErrEmptyTitle
	}
	if ch.Category != nil && !s.scheme.ValidCategory(*ch.Category) {
		return false, fmt.Errorf("%w: %q", ErrBadCategory, *ch.Category)
	}
	if ch.Priority != nil && !s.scheme.ValidPriority(*ch.Priority) {
		return false, fmt.Errorf("%w: %q", ErrBadPriority, *ch.Priority)
	}

	t := &s.todos[i]
	if ch.Title != nil {
		t.Title = strings.TrimSpace(*ch.Title)
	}
	if ch.Description != nil {
		t.Description = *ch.Description
	}
	if ch.Completed != nil {
		t.Completed = *ch.Completed
	}
	if ch.Category != nil {
		t.Category = *ch.Category
	}
	if ch.Priority != nil {
		t.Priority = *ch.Priority
	}
	if ch.ClearDue {
		t.DueDate = nil
	} else if ch.DueDate != nil {
		t.DueDate = ch.DueDate
	}
	t.UpdatedAt = s.now()
	s.persist()
	return true, nil
}

// Remove deletes the task with the given id. Missing ids are a no-op.
func (s *Store) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	s.persist()
	return true
}

// Toggle flips the completed flag and refreshes UpdatedAt.
func (s *Store) Toggle(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.todos[i].Completed = !s.todos[i].Completed
	s.todos[i].UpdatedAt = s.now()
	s.persist()
	return true
}

// Load replaces the entire list with the persisted state. It is an
// initialization step, not a merge, and does not write back.
func (s *Store) Load(todos []Todo) {
	s.todos = make([]Todo, len(todos))
	copy(s.todos, todos)
}

func (s *Store) index(id string) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist() {
	if s.backend == nil {
		return
	}
	if err := s.backend.Save(s.All()); err != nil && s.warn != nil {
		s.warn(fmt.Errorf("saving todos: %w", err))
	}
}
