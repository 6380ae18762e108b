package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentdeck-dev/agentdeck/internal/catalog"
	"github.com/agentdeck-dev/agentdeck/internal/config"
)

// ---------------------------------------------------------------------------
// Test source + flow helpers
// ---------------------------------------------------------------------------

// countingSource records fetch calls and fails on demand. No latency.
type countingSource struct {
	agents        []catalog.Agent
	fetchAllCalls int
	fetchOneCalls int
	fail          bool
}

func (s *countingSource) FetchAll(_ context.Context) ([]catalog.Agent, error) {
	s.fetchAllCalls++
	if s.fail {
		return nil, errors.New("boom")
	}
	out := make([]catalog.Agent, len(s.agents))
	copy(out, s.agents)
	return out, nil
}

func (s *countingSource) FetchOne(_ context.Context, id string) (*catalog.Agent, error) {
	s.fetchOneCalls++
	if s.fail {
		return nil, errors.New("boom")
	}
	for _, a := range s.agents {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func flowAgents() []catalog.Agent {
	return []catalog.Agent{
		{ID: "a", Name: "TaskPilot", Description: "planner", Tags: []string{"planning"},
			Category: catalog.CategoryProductivity, Rating: 4.5, ReviewCount: 100,
			IsBestPerforming: true, IsRecommended: true},
		{ID: "b", Name: "DraftSmith", Description: "writer", Tags: []string{"writing"},
			Category: catalog.CategoryCreative, Rating: 4.5, ReviewCount: 50,
			IsRecommended: true},
		{ID: "c", Name: "LedgerLens", Description: "expenses", Tags: []string{"budget"},
			Category: catalog.CategoryProductivity, Rating: 3.0, ReviewCount: 200},
	}
}

func flowModel(src *countingSource) model {
	m := newModel(config.Config{UI: config.UIConfig{CurrencySymbol: "$"}}, src, nil)
	m.width = 100
	m.height = 40
	return m
}

func flowApplyMsg(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", next)
	}
	return flowDrainCmd(t, got, cmd)
}

func flowKey(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func flowPress(t *testing.T, m model, key string) model {
	t.Helper()
	return flowApplyMsg(t, m, flowKey(key))
}

func flowType(t *testing.T, m model, input string) model {
	t.Helper()
	for _, r := range input {
		m = flowPress(t, m, string(r))
	}
	return m
}

// flowDrainCmd runs command chains to completion, expanding batches.
func flowDrainCmd(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for i := 0; len(queue) > 0 && i < 64; i++ {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		updated, newCmd := m.Update(msg)
		got, ok := updated.(model)
		if !ok {
			t.Fatalf("command update returned %T, want model", updated)
		}
		m = got
		queue = append(queue, newCmd)
	}
	if len(queue) > 0 {
		t.Fatal("command chain exceeded max depth")
	}
	return m
}

func flowLoaded(t *testing.T, src *countingSource) model {
	t.Helper()
	m := flowModel(src)
	m = flowApplyMsg(t, m, startupMsg{})
	if !m.hasLoaded {
		t.Fatal("expected catalog loaded")
	}
	return m
}

// ---------------------------------------------------------------------------
// Load lifecycle
// ---------------------------------------------------------------------------

func TestInitialLoadPopulatesCatalog(t *testing.T) {
	src := &countingSource{agents: flowAgents()}
	m := flowLoaded(t, src)

	if src.fetchAllCalls != 1 {
		t.Fatalf("fetchAllCalls = %d, want 1", src.fetchAllCalls)
	}
	if len(m.agents) != 3 {
		t.Fatalf("agents = %d, want 3", len(m.agents))
	}
	if m.isLoading || m.errorMessage != "" {
		t.Fatalf("unexpected state: isLoading=%v err=%q", m.isLoading, m.errorMessage)
	}
}

func TestLoadGuardPreventsDuplicateFetch(t *testing.T) {
	src := &countingSource{agents: flowAgents()}
	m := flowModel(src)

	// Two load requests before the first fetch completes: the second must
	// produce no command at all.
	next, cmd1 := m.Update(startupMsg{})
	m = next.(model)
	next, cmd2 := m.Update(startupMsg{})
	m = next.(model)
	if cmd2 != nil {
		t.Fatal("second load while in flight should be a no-op")
	}
	m = flowDrainCmd(t, m, cmd1)

	if src.fetchAllCalls != 1 {
		t.Fatalf("fetchAllCalls = %d, want 1", src.fetchAllCalls)
	}

	// Loaded catalogs are also guarded.
	m = flowApplyMsg(t, m, startupMsg{})
	if src.fetchAllCalls != 1 {
		t.Fatalf("fetchAllCalls after reload = %d, want 1", src.fetchAllCalls)
	}
}

func TestFailedInitialLoadAllowsRetry(t *testing.T) {
	src := &countingSource{agents: flowAgents(), fail: true}
	m := flowModel(src)
	m = flowApplyMsg(t, m, startupMsg{})

	if m.hasLoaded {
		t.Fatal("failed load must not mark hasLoaded")
	}
	if m.errorMessage == "" {
		t.Fatal("expected user-facing error message")
	}
	if len(m.agents) != 0 {
		t.Fatalf("agents should stay empty on initial failure, got %d", len(m.agents))
	}

	// The guard only blocks after success, so a retry fetches again.
	src.fail = false
	m = flowApplyMsg(t, m, startupMsg{})
	if src.fetchAllCalls != 2 {
		t.Fatalf("fetchAllCalls = %d, want 2", src.fetchAllCalls)
	}
	if !m.hasLoaded || m.errorMessage != "" {
		t.Fatalf("retry should succeed, got hasLoaded=%v err=%q", m.hasLoaded, m.errorMessage)
	}
}

func TestRefreshBypassesGuard(t *testing.T) {
	src := &countingSource{agents: flowAgents()}
	m := flowLoaded(t, src)

	m = flowPress(t, m, "r")
	m = flowPress(t, m, "r")
	if src.fetchAllCalls != 3 {
		t.Fatalf("fetchAllCalls = %d, want 3 (initial + two refreshes)", src.fetchAllCalls)
	}
	_ = m
}

func TestRefreshFailureKeepsStaleCatalog(t *testing.T) {
	src := &countingSource{agents: flowAgents()}
	m := flowLoaded(t, src)

	src.fail = true
	m = flowPress(t, m, "r")

	if len(m.agents) != 3 {
		t.Fatalf("stale agents dropped: got %d, want 3", len(m.agents))
	}
	if m.errorMessage == "" {
		t.Fatal("expected error message after failed refresh")
	}

	// esc dismisses the error without touching data.
	m = flowPress(t, m, "esc")
	if m.errorMessage != "" {
		t.Fatal("esc should clear the error message")
	}
	if len(m.agents) != 3 {
		t.Fatal("clearing the error must not touch the catalog")
	}
}

// ---------------------------------------------------------------------------
// Search + category filtering
// ---------------------------------------------------------------------------

func TestSearchTypingFiltersLive(t *testing.T) {
	src := &countingSource{agents: flowAgents()}
	m := flowLoaded(t, src)

	m = flowPress(t, m, "/")
	if !m.searchFocused {
		t.Fatal("/ should focus the search input")
	}
	m = flowType(t, m, "task")
	if m.searchQuery != "task" {
		t.Fatalf("searchQuery = %q, want %q", m.searchQuery, "task")
	}
	filtered := m.rankings().Filtered
	if len(filtered) != 1 || filtered[0].ID != "a" {
		t.Fatalf("filtered = %v, want [a]", filtered)
	}

	m = flowPress(t, m, "backspace")
	if m.searchQuery != "tas" {
		t.Fatalf("searchQuery = %q, want %q", m.searchQuery, "tas")
	}

	m = flowPress(t, m, "enter")
	if m.searchFocused {
		t.Fatal("enter should blur the search input")
	}
}

func TestCategoryPickerSelection(t *testing.T) {
	src := &countingSource{agents: flowAgents()}
	m := flowLoaded(t, src)

	m = flowPress(t, m, "c")
	if m.picker == nil {
		t.Fatal("c should open the category picker")
	}
	// Row 0 is "All categories"; row 1 is productivity (2 agents, highest count).
	m = flowPress(t, m, "down")
	m = flowPress(t, m, "enter")
	if m.picker != nil {
		t.Fatal("picker should close after selection")
	}
	if m.selectedCategory == nil || *m.selectedCategory != catalog.CategoryProductivity {
		t.Fatalf("selectedCategory = %v, want productivity", m.selectedCategory)
	}
	filtered := m.rankings().Filtered
	if len(filtered) != 2 {
		t.Fatalf("filtered = %d agents, want 2", len(filtered))
	}

	m = flowPress(t, m, "x")
	if m.selectedCategory != nil || m.searchQuery != "" {
		t.Fatal("x should clear both filters")
	}
	if got := len(m.rankings().Filtered); got != 3 {
		t.Fatalf("after clear, filtered = %d, want 3", got)
	}
}

func TestNoMatchesIsNotAnError(t *testing.T) {
	src := &countingSource{agents: flowAgents()}
	m := flowLoaded(t, src)

	m = flowPress(t, m, "/")
	m = flowType(t, m, "xyz")
	r := m.rankings()
	if len(r.Filtered) != 0 {
		t.Fatalf("filtered = %d, want 0", len(r.Filtered))
	}
	if m.errorMessage != "" {
		t.Fatalf("no-match query set an error: %q", m.errorMessage)
	}
}

// ---------------------------------------------------------------------------
// Detail modal
// ---------------------------------------------------------------------------

func TestDetailOpenAndStartStub(t *testing.T) {
	src := &countingSource{agents: flowAgents()}
	m := flowLoaded(t, src)

	m = flowPress(t, m, "enter")
	if m.detail == nil {
		t.Fatal("enter should open the agent detail modal")
	}
	if src.fetchOneCalls != 1 {
		t.Fatalf("fetchOneCalls = %d, want 1", src.fetchOneCalls)
	}
	// Cursor 0 of the rating-sorted list is TaskPilot.
	if m.detail.Name != "TaskPilot" {
		t.Fatalf("detail = %q, want TaskPilot", m.detail.Name)
	}

	m = flowPress(t, m, "s")
	if !strings.Contains(m.status, "TaskPilot") {
		t.Fatalf("start stub should acknowledge by name, status = %q", m.status)
	}

	m = flowPress(t, m, "esc")
	if m.detail != nil {
		t.Fatal("esc should close the detail modal")
	}
}

func TestDetailAbsentAgent(t *testing.T) {
	src := &countingSource{agents: flowAgents()}
	m := flowLoaded(t, src)

	m = flowApplyMsg(t, m, agentFetchedMsg{agent: nil})
	if m.detail != nil {
		t.Fatal("absent agent should not open a modal")
	}
	if m.status == "" {
		t.Fatal("absent agent should set a status line")
	}
	if m.statusErr {
		t.Fatal("absent agent is not an error")
	}
}

func TestDetailUninstallWithoutLibrary(t *testing.T) {
	src := &countingSource{agents: flowAgents()}
	m := flowLoaded(t, src)

	m = flowPress(t, m, "enter")
	if m.detail == nil {
		t.Fatal("enter should open the agent detail modal")
	}
	m = flowPress(t, m, "u")
	if !m.statusErr {
		t.Fatal("uninstall without a library should surface an error status")
	}
	if !strings.Contains(m.status, "Uninstall failed") {
		t.Fatalf("status = %q, want uninstall failure", m.status)
	}
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

func TestSettingsLogoToggleSavesPreferences(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("AGENTDECK_CONFIG", cfgPath)

	src := &countingSource{agents: flowAgents()}
	m := flowLoaded(t, src)

	// l only acts on the Settings tab.
	m = flowPress(t, m, "l")
	if m.cfg.UI.ShowLogoURLs {
		t.Fatal("l outside Settings must not toggle the preference")
	}

	m = flowPress(t, m, "tab")
	m = flowPress(t, m, "tab")
	if m.activeTab != tabSettings {
		t.Fatalf("activeTab = %d, want settings", m.activeTab)
	}
	m = flowPress(t, m, "l")
	if !m.cfg.UI.ShowLogoURLs {
		t.Fatal("l on Settings should toggle the preference")
	}
	if m.status != "Preferences saved." || m.statusErr {
		t.Fatalf("status = %q (err=%v), want save confirmation", m.status, m.statusErr)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	m = flowPress(t, m, "l")
	if m.cfg.UI.ShowLogoURLs {
		t.Fatal("second l should toggle the preference back off")
	}
}

// ---------------------------------------------------------------------------
// Tabs + rendering smoke
// ---------------------------------------------------------------------------

func TestTabCycling(t *testing.T) {
	src := &countingSource{agents: flowAgents()}
	m := flowLoaded(t, src)

	if m.activeTab != tabHome {
		t.Fatalf("initial tab = %d, want home", m.activeTab)
	}
	m = flowPress(t, m, "tab")
	if m.activeTab != tabCategories {
		t.Fatalf("tab = %d, want categories", m.activeTab)
	}
	m = flowPress(t, m, "tab")
	m = flowPress(t, m, "tab")
	if m.activeTab != tabHome {
		t.Fatalf("tab = %d, want wrap to home", m.activeTab)
	}
}

func TestViewRendersAllTabs(t *testing.T) {
	src := &countingSource{agents: flowAgents()}
	m := flowLoaded(t, src)

	for tab := 0; tab < tabCount; tab++ {
		m.activeTab = tab
		if out := m.View(); out == "" {
			t.Fatalf("tab %d rendered empty", tab)
		}
	}

	m.activeTab = tabHome
	out := m.View()
	for _, want := range []string{"TaskPilot", "Best Performing", "Recommended", "Most Used", "All Agents"} {
		if !strings.Contains(out, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}
