package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Storage.Backend != "jsonfile" {
		t.Errorf("Backend: got %q, want jsonfile", cfg.Storage.Backend)
	}
	if cfg.UI.Scheme != "default" {
		t.Errorf("Scheme: got %q, want default", cfg.UI.Scheme)
	}
	if cfg.UI.SortBy != "createdAt" || cfg.UI.SortOrder != "desc" {
		t.Errorf("sort defaults: got %s/%s", cfg.UI.SortBy, cfg.UI.SortOrder)
	}
}

func TestLoadFromParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
backend = "sqlite"
path = "/tmp/todos.db"

[ui]
scheme = "compact"
sort_by = "dueDate"
sort_order = "asc"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Backend: got %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "/tmp/todos.db" {
		t.Errorf("Path: got %q", cfg.Storage.Path)
	}
	if cfg.UI.Scheme != "compact" {
		t.Errorf("Scheme: got %q, want compact", cfg.UI.Scheme)
	}
	if cfg.UI.SortBy != "dueDate" || cfg.UI.SortOrder != "asc" {
		t.Errorf("sort: got %s/%s", cfg.UI.SortBy, cfg.UI.SortOrder)
	}
}

func TestLoadFromExpandsHome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
path = "~/todos/todos.json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	homeDir, _ := os.UserHomeDir()
	want := filepath.Join(homeDir, "todos", "todos.json")
	if cfg.Storage.Path != want {
		t.Errorf("Path: got %q, want %q", cfg.Storage.Path, want)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Storage.Backend = "memory"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Storage.Backend != "memory" {
		t.Errorf("Backend: got %q, want memory", loaded.Storage.Backend)
	}
}
