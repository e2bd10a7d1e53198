// Package sqlite persists the todo list in a SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdxmph/todos-tui/internal/storage"
	"github.com/pdxmph/todos-tui/internal/todo"
)

// Backend implements the storage.Backend interface over a SQLite database.
// The connection opens lazily on first use so an unconfigured backend costs
// nothing.
type Backend struct {
	path string
	conn *sql.DB
}

// New creates a sqlite backend. An empty path uses the default location.
func New(path string) *Backend {
	if path == "" {
		path = DefaultPath()
	}
	return &Backend{path: path}
}

// DefaultPath returns the default database location.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "todos-tui", "todos.db")
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "sqlite"
}

// IsEnabled reports whether the database file exists. Run with -init to
// create it.
func (b *Backend) IsEnabled() bool {
	_, err := os.Stat(b.path)
	return err == nil
}

// Path returns the database path.
func (b *Backend) Path() string {
	return b.path
}

// Close closes the database connection
func (b *Backend) Close() error {
	if b.conn == nil {
		return nil
	}
	err := b.conn.Close()
	b.conn = nil
	return err
}

func (b *Backend) open() (*sql.DB, error) {
	if b.conn != nil {
		return b.conn, nil
	}

	if _, err := os.Stat(b.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found at %s\nRun 'todos-tui -init' to create it", b.path)
	}

	conn, err := sql.Open("sqlite3", b.path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	b.conn = conn

	// Run any pending migrations
	if err := b.runMigrations(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return b.conn, nil
}

// Load returns all todos ordered by creation time
func (b *Backend) Load() ([]todo.Todo, error) {
	conn, err := b.open()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			id, title, description, completed,
			category, priority, due_date,
			created_at, updated_at
		FROM todos
		ORDER BY created_at
	`

	rows, err := conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	var todos []todo.Todo
	for rows.Next() {
		var (
			t           todo.Todo
			description sql.NullString
			due         sql.NullTime
		)
		err := rows.Scan(
			&t.ID, &t.Title, &description, &t.Completed,
			&t.Category, &t.Priority, &due,
			&t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}

		if description.Valid {
			t.Description = description.String
		}
		if due.Valid {
			d := due.Time
			t.DueDate = &d
		}

		todos = append(todos, t)
	}

	return todos, rows.Err()
}

// Save replaces the stored list inside one transaction, so a failed write
// never leaves a half-replaced table.
func (b *Backend) Save(todos []todo.Todo) error {
	conn, err := b.open()
	if err != nil {
		return err
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM todos`); err != nil {
		return fmt.Errorf("clearing todos: %w", err)
	}

	insert := `
		INSERT INTO todos (
			id, title, description, completed,
			category, priority, due_date,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, t := range todos {
		var (
			description sql.NullString
			due         sql.NullTime
		)
		if t.Description != "" {
			description = sql.NullString{String: t.Description, Valid: true}
		}
		if t.DueDate != nil {
			due = sql.NullTime{Time: *t.DueDate, Valid: true}
		}

		_, err := tx.Exec(insert,
			t.ID, t.Title, description, t.Completed,
			string(t.Category), string(t.Priority), due,
			t.CreatedAt, t.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting todo %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// Initialize creates a new database with the complete schema
func Initialize(dbPath string) error {
	// Check if database already exists
	if _, err := os.Stat(dbPath); err == nil {
		return fmt.Errorf("database already exists at %s", dbPath)
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	// Create database file
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	schema := `
CREATE TABLE IF NOT EXISTS todos (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    completed BOOLEAN NOT NULL DEFAULT 0,
    category TEXT NOT NULL DEFAULT 'Other',
    priority TEXT NOT NULL DEFAULT 'medium',
    due_date TIMESTAMP,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

-- Indexes for performance
CREATE INDEX IF NOT EXISTS idx_todos_completed ON todos (completed);
CREATE INDEX IF NOT EXISTS idx_todos_category ON todos (category);
CREATE INDEX IF NOT EXISTS idx_todos_due_date ON todos (due_date);
CREATE INDEX IF NOT EXISTS idx_todos_created_at ON todos (created_at);`

	// Execute schema
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

// Register the sqlite backend
func init() {
	storage.Register("sqlite", func(path string) storage.Backend { return New(path) })
}
