package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agentdeck-dev/agentdeck/internal/catalog"
	"github.com/agentdeck-dev/agentdeck/internal/config"
	"github.com/agentdeck-dev/agentdeck/internal/service"
)

const appName = "Agentdeck"

// Tab indices
const (
	tabHome = iota
	tabCategories
	tabSettings
	tabCount
)

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type catalogLoadedMsg struct {
	agents  []catalog.Agent
	err     error
	refresh bool
}

type agentFetchedMsg struct {
	agent *catalog.Agent
	err   error
}

type libraryLoadedMsg struct {
	installed []service.InstalledAgent
	err       error
}

type installDoneMsg struct {
	name string
	err  error
}

type uninstallDoneMsg struct {
	name string
	err  error
}

type librarySyncedMsg struct {
	err error
}

type configSavedMsg struct {
	err error
}

type dupeScanMsg struct {
	count int
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// model is the view-state holder: load lifecycle flags, the current filter
// input, the catalog snapshot, and everything the renderer reads. Derived
// lists are never stored; rankings() recomputes them from raw state on read,
// so they can never go stale or be seen half-updated.
type model struct {
	cfg     config.Config
	source  catalog.Source
	library *service.LibraryStore // nil when the install db is unavailable
	curator service.Curator

	width  int
	height int

	activeTab int

	// Catalog + filter state. agents is replaced wholesale on each
	// successful load; searchQuery and selectedCategory are the only user
	// filter inputs.
	agents           []catalog.Agent
	searchQuery      string
	selectedCategory *catalog.Category

	// Load lifecycle. hasLoaded is set only on a successful initial load,
	// so a failed first fetch leaves retry open.
	isLoading    bool
	hasLoaded    bool
	errorMessage string

	// Transient status line.
	status    string
	statusErr bool

	// Home-tab interaction state.
	searchFocused bool
	cursor        int

	// Overlays.
	picker        *pickerState
	detail        *catalog.Agent
	detailLoading bool

	// Library + curation readouts.
	installed  []service.InstalledAgent
	dupeCount  int
	dupeKnown  bool

	spinner spinner.Model
	keys    keyMap
}

func newModel(cfg config.Config, source catalog.Source, library *service.LibraryStore) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	return model{
		cfg:     cfg,
		source:  source,
		library: library,
		spinner: sp,
		keys:    newKeyMap(),
	}
}

func (m model) Init() tea.Cmd {
	// Route the initial load through Update so the guard flags live on the
	// same model the rest of the program sees.
	return func() tea.Msg { return startupMsg{} }
}

type startupMsg struct{}

// ---------------------------------------------------------------------------
// Load lifecycle
// ---------------------------------------------------------------------------

// loadCatalog starts the initial fetch. It is a no-op while a fetch is in
// flight or after a successful load; call refreshCatalog to re-fetch.
func (m model) loadCatalog() (model, tea.Cmd) {
	if m.isLoading || m.hasLoaded {
		return m, nil
	}
	m.isLoading = true
	m.errorMessage = ""
	return m, tea.Batch(fetchCatalogCmd(m.source, false), m.spinner.Tick)
}

// refreshCatalog always re-fetches, bypassing the one-shot guard. On failure
// the previously loaded agents stay on screen.
func (m model) refreshCatalog() (model, tea.Cmd) {
	m.isLoading = true
	return m, tea.Batch(fetchCatalogCmd(m.source, true), m.spinner.Tick)
}

func (m model) handleCatalogLoaded(msg catalogLoadedMsg) (model, tea.Cmd) {
	m.isLoading = false
	if msg.err != nil {
		// Refresh failures keep the stale catalog; a blank screen is worse
		// than old data.
		m.errorMessage = "Couldn't load the agent catalog. Please try again."
		return m, nil
	}
	m.agents = msg.agents
	m.hasLoaded = true
	m.errorMessage = ""
	m.clampCursor()
	if msg.refresh {
		m.status = fmt.Sprintf("Catalog refreshed: %d agents.", len(m.agents))
		m.statusErr = false
	}
	m.dupeKnown = false
	return m, scanDupesCmd(m.curator, m.agents)
}

// ---------------------------------------------------------------------------
// Filter mutators — derived lists follow automatically via rankings()
// ---------------------------------------------------------------------------

func (m model) setSearchQuery(q string) model {
	m.searchQuery = q
	m.clampCursor()
	return m
}

func (m model) setSelectedCategory(c *catalog.Category) model {
	m.selectedCategory = c
	m.clampCursor()
	return m
}

func (m model) clearFilters() model {
	m.searchQuery = ""
	m.selectedCategory = nil
	m.clampCursor()
	return m
}

func (m model) clearError() model {
	m.errorMessage = ""
	return m
}

// rankings computes every derived list from raw state in one call.
func (m model) rankings() catalog.Rankings {
	return catalog.Rank(m.agents, m.searchQuery, m.selectedCategory)
}

func (m *model) clampCursor() {
	n := len(catalog.Filter(m.agents, m.searchQuery, m.selectedCategory))
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

// startAgent is the launch hook. Launching runs outside this app; for now it
// only acknowledges the request.
func (m model) startAgent(a catalog.Agent) model {
	m.status = fmt.Sprintf("Start requested for %s — launch surface not connected.", a.Name)
	m.statusErr = false
	return m
}

func (m *model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}
