// Package jsonfile persists the todo list as a JSON key/value file.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdxmph/todos-tui/internal/storage"
	"github.com/pdxmph/todos-tui/internal/todo"
)

// todosKey is the key the task array lives under. It must stay stable
// across reads and writes of the same store file.
const todosKey = "todos"

// Backend implements the storage.Backend interface over a single JSON file.
// The file holds an object keyed by name; the "todos" key maps to the task
// array with dates as RFC 3339 strings.
type Backend struct {
	path string
}

// New creates a jsonfile backend. An empty path uses the default location.
func New(path string) *Backend {
	if path == "" {
		path = DefaultPath()
	}
	return &Backend{path: path}
}

// DefaultPath returns the default store file location.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "todos-tui", "todos.json")
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "jsonfile"
}

// IsEnabled returns true: the file is created on first save
func (b *Backend) IsEnabled() bool {
	return true
}

// Path returns the store file path.
func (b *Backend) Path() string {
	return b.path
}

// record is the tolerant on-disk shape of a task. Pointer fields distinguish
// "absent" from zero so required fields can be checked on load.
type record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   *bool  `json:"completed"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Load reads the persisted list. A missing file is an empty list. Records
// missing id, title, or completed are dropped rather than failing the whole
// load; a file that does not parse at all is an error the caller downgrades
// to an empty list.
func (b *Backend) Load() ([]todo.Todo, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading store file: %w", err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("parsing store file: %w", err)
	}

	raw, ok := keys[todosKey]
	if !ok {
		return nil, nil
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parsing %q array: %w", todosKey, err)
	}

	var todos []todo.Todo
	for _, r := range records {
		if r.ID == "" || r.Title == "" || r.Completed == nil {
			continue
		}
		t := todo.Todo{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Completed:   *r.Completed,
			Category:    todo.Category(r.Category),
			Priority:    todo.Priority(r.Priority),
			DueDate:     parseDate(r.DueDate),
			CreatedAt:   parseStamp(r.CreatedAt),
			UpdatedAt:   parseStamp(r.UpdatedAt),
		}
		todos = append(todos, t)
	}

	return todos, nil
}

// Save replaces the persisted list. The file is written to a temp path and
// renamed so a failed write never truncates the existing store.
func (b *Backend) Save(todos []todo.Todo) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	payload := map[string]interface{}{
		todosKey: todos,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding todos: %w", err)
	}
	data = append(data, '\n')

	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("replacing store file: %w", err)
	}

	return nil
}

// parseDate parses an optional RFC 3339 date. Unparseable values fall back
// to absent.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

// parseStamp parses a timestamp, falling back to the zero time.
func parseStamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Register the jsonfile backend
func init() {
	storage.Register("jsonfile", func(path string) storage.Backend { return New(path) })
}
