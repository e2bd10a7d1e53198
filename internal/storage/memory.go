package storage

import "github.com/pdxmph/todos-tui/internal/todo"

// MemoryBackend keeps the list in memory only. It is the fallback when no
// durable backend is configured, and the test double for the store's
// persistence path.
type MemoryBackend struct {
	todos []todo.Todo
}

// NewMemoryBackend creates a new in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Name returns the backend identifier
func (b *MemoryBackend) Name() string {
	return "memory"
}

// IsEnabled always returns true; memory is always available
func (b *MemoryBackend) IsEnabled() bool {
	return true
}

// Load returns the last saved list
func (b *MemoryBackend) Load() ([]todo.Todo, error) {
	out := make([]todo.Todo, len(b.todos))
	copy(out, b.todos)
	return out, nil
}

// Save replaces the saved list
func (b *MemoryBackend) Save(todos []todo.Todo) error {
	b.todos = make([]todo.Todo, len(todos))
	copy(b.todos, todos)
	return nil
}

// Register the memory backend
func init() {
	Register("memory", func(path string) Backend { return NewMemoryBackend() })
}
