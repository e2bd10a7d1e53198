package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pdxmph/todos-tui/internal/todo"
)

func tempStore(t *testing.T) *Backend {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "todos.json"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	b := tempStore(t)

	created := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	due := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	original := []todo.Todo{
		{
			ID:          "t1",
			Title:       "Write report",
			Description: "Quarterly numbers",
			Completed:   false,
			Category:    todo.CategoryWork,
			Priority:    todo.PriorityHigh,
			DueDate:     &due,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:        "t2",
			Title:     "Read book",
			Completed: true,
			Category:  todo.CategoryPersonal,
			Priority:  todo.PriorityLow,
			CreatedAt: created.Add(time.Hour),
			UpdatedAt: created.Add(2 * time.Hour),
		},
	}

	if err := b.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != len(original) {
		t.Fatalf("loaded %d todos, want %d", len(loaded), len(original))
	}

	for i, want := range original {
		got := loaded[i]
		if got.ID != want.ID || got.Title != want.Title || got.Description != want.Description {
			t.Errorf("todo %d fields: got %+v, want %+v", i, got, want)
		}
		if got.Completed != want.Completed || got.Category != want.Category || got.Priority != want.Priority {
			t.Errorf("todo %d fields: got %+v, want %+v", i, got, want)
		}
		// Dates compare by instant, not string form
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("todo %d CreatedAt: got %v, want %v", i, got.CreatedAt, want.CreatedAt)
		}
		if !got.UpdatedAt.Equal(want.UpdatedAt) {
			t.Errorf("todo %d UpdatedAt: got %v, want %v", i, got.UpdatedAt, want.UpdatedAt)
		}
		switch {
		case want.DueDate == nil && got.DueDate != nil:
			t.Errorf("todo %d has unexpected due date", i)
		case want.DueDate != nil && (got.DueDate == nil || !got.DueDate.Equal(*want.DueDate)):
			t.Errorf("todo %d DueDate: got %v, want %v", i, got.DueDate, want.DueDate)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	b := tempStore(t)

	todos, err := b.Load()
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("loaded %d todos from missing file, want 0", len(todos))
	}
}

func TestLoadDropsInvalidRecords(t *testing.T) {
	b := tempStore(t)

	content := `{
  "todos": [
    {"id": "ok", "title": "valid", "completed": false, "category": "Work", "priority": "low"},
    {"title": "missing id", "completed": false},
    {"id": "no-title", "completed": true},
    {"id": "no-completed", "title": "missing completed flag"}
  ]
}`
	if err := os.WriteFile(b.Path(), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	todos, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("loaded %d todos, want 1 (invalid records dropped)", len(todos))
	}
	if todos[0].ID != "ok" {
		t.Errorf("surviving record: got %s, want ok", todos[0].ID)
	}
}

func TestLoadToleratesAbsentOptionalFields(t *testing.T) {
	b := tempStore(t)

	content := `{"todos": [{"id": "t1", "title": "bare", "completed": false}]}`
	if err := os.WriteFile(b.Path(), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	todos, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("loaded %d todos, want 1", len(todos))
	}
	got := todos[0]
	if got.DueDate != nil {
		t.Errorf("DueDate: got %v, want nil", got.DueDate)
	}
	if !got.CreatedAt.IsZero() {
		t.Errorf("CreatedAt: got %v, want zero", got.CreatedAt)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	b := tempStore(t)

	if err := os.WriteFile(b.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := b.Load(); err == nil {
		t.Error("Load of corrupt file did not return an error")
	}
}

func TestLoadMissingKey(t *testing.T) {
	b := tempStore(t)

	if err := os.WriteFile(b.Path(), []byte(`{"theme": "dark"}`), 0644); err != nil {
		t.Fatal(err)
	}

	todos, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("loaded %d todos without a todos key, want 0", len(todos))
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	b := New(filepath.Join(dir, "nested", "deeper", "todos.json"))

	if err := b.Save(nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(b.Path()); err != nil {
		t.Errorf("store file not created: %v", err)
	}
}

func TestSaveDoesNotLeaveTempFile(t *testing.T) {
	b := tempStore(t)

	if err := b.Save(nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(b.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}
