// Package storage provides pluggable persistence backends for the todo list.
package storage

import "github.com/pdxmph/todos-tui/internal/todo"

// Backend defines the interface all persistence backends implement. Save
// writes the whole list; Load returns the whole list. There is no partial
// update — each mutation serializes the full canonical state.
type Backend interface {
	// Name returns the backend identifier (e.g. "jsonfile", "sqlite")
	Name() string

	// IsEnabled checks if the backend is available and properly configured
	IsEnabled() bool

	// Load reads the persisted list. A missing store is an empty list,
	// not an error.
	Load() ([]todo.Todo, error)

	// Save replaces the persisted list
	Save(todos []todo.Todo) error
}

// BackendFactory is a function that creates a new instance of a Backend.
// The path argument is backend-specific (file path, database path) and may
// be empty to use the backend's default.
type BackendFactory func(path string) Backend
