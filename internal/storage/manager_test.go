package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pdxmph/todos-tui/internal/storage"
	_ "github.com/pdxmph/todos-tui/internal/storage/jsonfile"
	"github.com/pdxmph/todos-tui/internal/todo"
)

func TestManagerUsesConfiguredBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")

	m, err := storage.NewManager("jsonfile", path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if m.Name() != "jsonfile" {
		t.Errorf("backend: got %s, want jsonfile", m.Name())
	}
	if !m.IsEnabled() {
		t.Error("jsonfile backend not enabled")
	}
}

func TestManagerUnknownBackend(t *testing.T) {
	if _, err := storage.NewManager("carrier-pigeon", ""); err == nil {
		t.Error("unknown backend did not return an error")
	}
}

func TestManagerFallsBackThroughPreference(t *testing.T) {
	m, err := storage.NewManager("", filepath.Join(t.TempDir(), "todos.json"))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	// jsonfile is first in the preference order and always enabled
	if m.Name() != "jsonfile" {
		t.Errorf("backend: got %s, want jsonfile", m.Name())
	}
}

func TestMemoryBackendRoundTrip(t *testing.T) {
	b := storage.NewMemoryBackend()

	now := time.Now()
	saved := []todo.Todo{
		{ID: "1", Title: "a", Category: todo.CategoryWork, Priority: todo.PriorityLow, CreatedAt: now, UpdatedAt: now},
	}
	if err := b.Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "1" {
		t.Errorf("round trip: got %+v", loaded)
	}

	// Mutating the loaded copy must not affect the stored state
	loaded[0].Title = "changed"
	again, _ := b.Load()
	if again[0].Title != "a" {
		t.Error("backend state aliased to caller slice")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := storage.NewRegistry()
	factory := func(path string) storage.Backend { return storage.NewMemoryBackend() }

	if err := r.Register("mem", factory); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register("mem", factory); err == nil {
		t.Error("duplicate registration did not return an error")
	}
}
