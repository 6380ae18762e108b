package main

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentdeck-dev/agentdeck/internal/catalog"
	"github.com/agentdeck-dev/agentdeck/internal/config"
	"github.com/agentdeck-dev/agentdeck/internal/service"
)

// fetchTimeout bounds every catalog round trip, simulated or real.
const fetchTimeout = 10 * time.Second

// errLibraryUnavailable reports that the sqlite install library failed to
// open at startup; browsing still works without it.
var errLibraryUnavailable = errors.New("install library unavailable")

func fetchCatalogCmd(src catalog.Source, refresh bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		agents, err := src.FetchAll(ctx)
		return catalogLoadedMsg{agents: agents, err: err, refresh: refresh}
	}
}

func fetchAgentCmd(src catalog.Source, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		agent, err := src.FetchOne(ctx, id)
		return agentFetchedMsg{agent: agent, err: err}
	}
}

func loadLibraryCmd(lib *service.LibraryStore) tea.Cmd {
	if lib == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		installed, err := lib.ListInstalled(ctx)
		return libraryLoadedMsg{installed: installed, err: err}
	}
}

// syncLibraryCmd pushes fresh listing snapshots into the install db after a
// successful catalog load.
func syncLibraryCmd(lib *service.LibraryStore, agents []catalog.Agent) tea.Cmd {
	if lib == nil {
		return nil
	}
	snapshot := make([]catalog.Agent, len(agents))
	copy(snapshot, agents)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		_, err := lib.SyncSnapshots(ctx, snapshot)
		return librarySyncedMsg{err: err}
	}
}

func installAgentCmd(lib *service.LibraryStore, a catalog.Agent) tea.Cmd {
	if lib == nil {
		return func() tea.Msg {
			return installDoneMsg{name: a.Name, err: errLibraryUnavailable}
		}
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return installDoneMsg{name: a.Name, err: lib.Install(ctx, a)}
	}
}

func uninstallAgentCmd(lib *service.LibraryStore, a catalog.Agent) tea.Cmd {
	if lib == nil {
		return func() tea.Msg {
			return uninstallDoneMsg{name: a.Name, err: errLibraryUnavailable}
		}
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return uninstallDoneMsg{name: a.Name, err: lib.Uninstall(ctx, a.ID)}
	}
}

func saveConfigCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return configSavedMsg{err: config.Save(cfg)}
	}
}

// scanDupesCmd recomputes the curation readout after each catalog load.
func scanDupesCmd(curator service.Curator, agents []catalog.Agent) tea.Cmd {
	snapshot := make([]catalog.Agent, len(agents))
	copy(snapshot, agents)
	return func() tea.Msg {
		return dupeScanMsg{count: len(curator.FindDuplicates(snapshot))}
	}
}
