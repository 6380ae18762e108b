package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentdeck-dev/agentdeck/internal/catalog"
	"github.com/agentdeck-dev/agentdeck/internal/config"
	"github.com/agentdeck-dev/agentdeck/internal/database"
	"github.com/agentdeck-dev/agentdeck/internal/database/repository"
	"github.com/agentdeck-dev/agentdeck/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	source := buildSource(cfg)

	// The install library is optional: browsing works without it.
	library, err := openLibrary(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: install library disabled: %v\n", err)
		library = nil
	}

	p := tea.NewProgram(newModel(cfg, source, library), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func buildSource(cfg config.Config) catalog.Source {
	// "sample" is the only built-in source; a remote source slots in here
	// without touching the browsing core.
	src := catalog.NewSampleSource()
	src.FetchAllDelay = time.Duration(cfg.Catalog.FetchDelayMS) * time.Millisecond
	src.FetchOneDelay = time.Duration(cfg.Catalog.LookupMS) * time.Millisecond
	return src
}

func openLibrary(cfg config.Config) (*service.LibraryStore, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &service.LibraryStore{DB: db, Installs: repository.NewInstallRepo(db)}, nil
}
