package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentdeck-dev/agentdeck/internal/catalog"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startupMsg:
		next, cmd := m.loadCatalog()
		return next, cmd

	case catalogLoadedMsg:
		next, cmd := m.handleCatalogLoaded(msg)
		if msg.err != nil {
			return next, tea.Batch(cmd, loadLibraryCmd(next.library))
		}
		// Refresh the stored snapshots first; librarySyncedMsg reloads the
		// installed list afterwards.
		return next, tea.Batch(cmd, syncLibraryCmd(next.library, next.agents))

	case librarySyncedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Library sync failed: %v", msg.err))
		}
		return m, loadLibraryCmd(m.library)

	case configSavedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Couldn't save preferences: %v", msg.err))
			return m, nil
		}
		m.status = "Preferences saved."
		m.statusErr = false
		return m, nil

	case agentFetchedMsg:
		return m.handleAgentFetched(msg)

	case libraryLoadedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Library load failed: %v", msg.err))
			return m, nil
		}
		m.installed = msg.installed
		return m, nil

	case installDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Install failed: %v", msg.err))
			return m, nil
		}
		m.status = fmt.Sprintf("%s added to your library.", msg.name)
		m.statusErr = false
		return m, loadLibraryCmd(m.library)

	case uninstallDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Uninstall failed: %v", msg.err))
			return m, nil
		}
		m.status = fmt.Sprintf("%s removed from your library.", msg.name)
		m.statusErr = false
		return m, loadLibraryCmd(m.library)

	case dupeScanMsg:
		m.dupeCount = msg.count
		m.dupeKnown = true
		return m, nil

	case spinner.TickMsg:
		if !m.isLoading && !m.detailLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey dispatches key presses in overlay-precedence order: detail modal,
// then the category picker, then the search input, then global keys.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail != nil || m.detailLoading {
		return m.updateDetail(msg)
	}
	if m.picker != nil {
		return m.updatePicker(msg)
	}
	if m.searchFocused {
		return m.updateSearchInput(msg)
	}
	return m.updateGlobal(msg)
}

// ---------------------------------------------------------------------------
// Detail modal
// ---------------------------------------------------------------------------

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.detail = nil
		m.detailLoading = false
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	if m.detail == nil {
		return m, nil // still loading; only esc/quit apply
	}
	switch {
	case key.Matches(msg, m.keys.Start):
		return m.startAgent(*m.detail), nil
	case key.Matches(msg, m.keys.Install):
		return m, installAgentCmd(m.library, *m.detail)
	case key.Matches(msg, m.keys.Uninstall):
		return m, uninstallAgentCmd(m.library, *m.detail)
	}
	return m, nil
}

func (m model) handleAgentFetched(msg agentFetchedMsg) (tea.Model, tea.Cmd) {
	m.detailLoading = false
	if msg.err != nil {
		m.setError("Couldn't load the agent. Please try again.")
		return m, nil
	}
	if msg.agent == nil {
		m.status = "That listing is no longer available."
		m.statusErr = false
		return m, nil
	}
	m.detail = msg.agent
	return m, nil
}

// ---------------------------------------------------------------------------
// Category picker
// ---------------------------------------------------------------------------

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := m.picker.HandleKey(msg.String())
	switch res.Action {
	case pickerActionCancelled:
		m.picker = nil
	case pickerActionSelected:
		m.picker = nil
		if res.Item.ClearAll {
			m = m.setSelectedCategory(nil)
			m.status = "Showing all categories."
		} else {
			c := res.Item.Category
			m = m.setSelectedCategory(&c)
			m.status = fmt.Sprintf("Category: %s (%d agents).", c.DisplayName(), res.Item.Count)
		}
		m.statusErr = false
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Search input
// ---------------------------------------------------------------------------

func (m model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchFocused = false
		return m, nil
	case tea.KeyEnter:
		m.searchFocused = false
		return m, nil
	case tea.KeyBackspace:
		if m.searchQuery != "" {
			q := []rune(m.searchQuery)
			m = m.setSearchQuery(string(q[:len(q)-1]))
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		return m.setSearchQuery(m.searchQuery + string(msg.Runes)), nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Global keys
// ---------------------------------------------------------------------------

func (m model) updateGlobal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.activeTab = tabHome
		m.searchFocused = true
		return m, nil

	case key.Matches(msg, m.keys.Category):
		m.activeTab = tabHome
		m.picker = newCategoryPicker(catalog.CountByCategory(m.agents))
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m = m.clearFilters()
		m.status = "Filters cleared."
		m.statusErr = false
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.refreshCatalog()

	case key.Matches(msg, m.keys.Logos):
		if m.activeTab != tabSettings {
			return m, nil
		}
		m.cfg.UI.ShowLogoURLs = !m.cfg.UI.ShowLogoURLs
		return m, saveConfigCmd(m.cfg)

	case key.Matches(msg, m.keys.Close):
		return m.clearError(), nil

	case key.Matches(msg, m.keys.Enter):
		return m.openSelectedAgent()
	}

	switch msg.String() {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		m.cursor++
		m.clampCursor()
		return m, nil
	}
	return m, nil
}

func (m model) openSelectedAgent() (tea.Model, tea.Cmd) {
	if m.activeTab != tabHome {
		return m, nil
	}
	filtered := m.rankings().Filtered
	if len(filtered) == 0 || m.cursor >= len(filtered) {
		return m, nil
	}
	m.detailLoading = true
	return m, tea.Batch(fetchAgentCmd(m.source, filtered[m.cursor].ID), m.spinner.Tick)
}
