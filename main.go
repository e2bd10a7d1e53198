package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdxmph/todos-tui/internal/config"
	"github.com/pdxmph/todos-tui/internal/storage"
	_ "github.com/pdxmph/todos-tui/internal/storage/jsonfile"
	"github.com/pdxmph/todos-tui/internal/storage/sqlite"
	"github.com/pdxmph/todos-tui/internal/todo"
	"github.com/pdxmph/todos-tui/internal/tui"
)

func main() {
	initFlag := flag.Bool("init", false, "create the sqlite database and exit")
	demoFlag := flag.Bool("demo", false, "with -init, seed the database with sample todos")
	configPath := flag.String("config", "", "path to config file")
	backendFlag := flag.String("backend", "", "storage backend (jsonfile, sqlite, memory)")
	pathFlag := flag.String("path", "", "storage path override")
	flag.Parse()

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatal(err)
	}

	backendName := cfg.Storage.Backend
	if *backendFlag != "" {
		backendName = *backendFlag
	}
	storagePath := cfg.Storage.Path
	if *pathFlag != "" {
		storagePath = *pathFlag
	}

	if *initFlag {
		if backendName != "sqlite" {
			log.Fatalf("-init only applies to the sqlite backend (configured backend is %q)", backendName)
		}
		if storagePath == "" {
			storagePath = sqlite.DefaultPath()
		}
		if *demoFlag {
			err = sqlite.CreateFixturesStore(storagePath)
		} else {
			err = sqlite.Initialize(storagePath)
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Created database at %s\n", storagePath)
		return
	}

	scheme, err := todo.SchemeByName(cfg.UI.Scheme)
	if err != nil {
		log.Fatal(err)
	}

	// Select the persistence backend
	manager, err := storage.NewManager(backendName, storagePath)
	if err != nil {
		log.Fatal(err)
	}
	backend := manager.Backend()

	// Create the store. Persistence failures surface as warnings in the
	// running program; they never stop the session.
	var p *tea.Program
	store := todo.NewStore(backend, scheme, func(err error) {
		if p != nil {
			p.Send(tui.WarnMsg{Err: err})
		}
	})

	// Restore persisted state. A failed load falls back to an empty list
	// with a warning instead of refusing to start.
	todos, loadErr := backend.Load()
	if loadErr == nil {
		store.Load(todos)
	}

	// Create model
	model := tui.New(store, startupFilter(cfg))
	if loadErr != nil {
		model.SetWarning(fmt.Errorf("loading todos (starting empty): %w", loadErr))
	}

	// Start the program
	p = tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// startupFilter builds the initial view state from config. Filter state is
// ephemeral: nothing here is written back.
func startupFilter(cfg *config.Config) todo.Filter {
	f := todo.DefaultFilter()
	switch todo.SortKey(cfg.UI.SortBy) {
	case todo.SortCreated, todo.SortDue, todo.SortPriority, todo.SortTitle:
		f.SortBy = todo.SortKey(cfg.UI.SortBy)
	}
	switch todo.SortOrder(cfg.UI.SortOrder) {
	case todo.Ascending, todo.Descending:
		f.Order = todo.SortOrder(cfg.UI.SortOrder)
	}
	return f
}
