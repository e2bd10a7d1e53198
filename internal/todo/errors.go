package todo

import "errors"

var (
	// ErrEmptyTitle rejects drafts and updates whose title is blank after
	// trimming.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrBadCategory rejects a category outside the active scheme.
	ErrBadCategory = errors.New("invalid category")

	// ErrBadPriority rejects a priority outside the active scheme.
	ErrBadPriority = errors.New("invalid priority")
)
