package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentdeck-dev/agentdeck/internal/catalog"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle).
				Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true)

	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	searchBoxFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
)

var tabNames = []string{"Home", "Categories", "Settings"}

const cardWidth = 26

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m model) View() string {
	if m.width == 0 {
		return "loading…"
	}

	var body string
	switch {
	case m.picker != nil:
		body = m.viewPicker()
	case m.detail != nil || m.detailLoading:
		body = m.viewDetail()
	default:
		switch m.activeTab {
		case tabHome:
			body = m.viewHome()
		case tabCategories:
			body = m.viewCategories()
		case tabSettings:
			body = m.viewSettings()
		}
	}

	sections := []string{m.viewHeader(), body, m.viewStatusBar(), m.viewFooter()}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m model) viewHeader() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if i == m.activeTab {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, inactiveTabStyle.Render(name))
		}
	}
	tabs := strings.Join(parts, " ")
	left := headerAppStyle.Render(appName) + "  " + tabs
	return headerBarStyle.Width(m.width).Render(left)
}

// ---------------------------------------------------------------------------
// Home tab
// ---------------------------------------------------------------------------

func (m model) viewHome() string {
	if m.isLoading && !m.hasLoaded {
		return statusStyle.Render(m.spinner.View() + " Loading agent catalog…")
	}

	var b strings.Builder

	if m.errorMessage != "" {
		b.WriteString(errorBannerStyle.Render("✗ "+m.errorMessage) +
			mutedStyle.Render("  (r to retry, esc to dismiss)") + "\n\n")
	}

	b.WriteString(m.viewSearchBar() + "\n")
	b.WriteString(m.viewFilterLine() + "\n\n")

	r := m.rankings()
	b.WriteString(m.viewCarousel("Best Performing", r.BestPerforming))
	b.WriteString(m.viewCarousel("Recommended", r.Recommended))
	b.WriteString(m.viewCarousel("Most Used", r.MostUsed))
	b.WriteString(m.viewFilteredList(r.Filtered))

	return b.String()
}

func (m model) viewSearchBar() string {
	style := searchBoxStyle
	if m.searchFocused {
		style = searchBoxFocusedStyle
	}
	content := m.searchQuery
	if m.searchFocused {
		content += cursorStyle.Render("▏")
	} else if content == "" {
		content = mutedStyle.Render("Search agents… (press /)")
	}
	width := m.width - 4
	if width > 60 {
		width = 60
	}
	return style.Width(width).Render("🔍 " + content)
}

func (m model) viewFilterLine() string {
	var parts []string
	if m.selectedCategory != nil {
		parts = append(parts, categoryBadge(*m.selectedCategory))
	}
	if m.searchQuery != "" {
		parts = append(parts, mutedStyle.Render(fmt.Sprintf("query %q", m.searchQuery)))
	}
	if len(parts) == 0 {
		return mutedStyle.Render("All agents · c to pick a category")
	}
	return strings.Join(parts, "  ") + mutedStyle.Render("  · x to clear")
}

func (m model) viewCarousel(title string, agents []catalog.Agent) string {
	if len(agents) == 0 {
		return ""
	}
	perRow := m.width / (cardWidth + 2)
	if perRow < 1 {
		perRow = 1
	}
	if perRow > len(agents) {
		perRow = len(agents)
	}
	cards := make([]string, 0, perRow)
	for _, a := range agents[:perRow] {
		cards = append(cards, m.renderCard(a, false))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return titleStyle.Render(title) + "\n" + row + "\n"
}

func (m model) renderCard(a catalog.Agent, selected bool) string {
	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	cs := styleForCategory(a.Category)
	name := lipgloss.NewStyle().Foreground(cs.Gradient[0]).Bold(true).
		Render(truncate(cs.Icon+" "+a.Name, cardWidth-2))
	rating := statusStyle.Render(ratingStars(a.Rating))
	meta := mutedStyle.Render(truncate(
		reviewLabel(a.ReviewCount)+" · "+priceLabel(a.Pricing, m.cfg.UI.CurrencySymbol),
		cardWidth-2))
	return style.Width(cardWidth).Render(name + "\n" + rating + "\n" + meta)
}

func (m model) viewFilteredList(filtered []catalog.Agent) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("All Agents (%d)", len(filtered))) + "\n")
	if len(filtered) == 0 {
		b.WriteString(mutedStyle.Render("No agents match the current filters.") + "\n")
		return b.String()
	}
	for i, a := range filtered {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s  %s  %s",
			prefix,
			padRight(a.Name, 18),
			padRight(ratingStars(a.Rating), 12),
			categoryBadge(a.Category),
		)
		b.WriteString(line + "\n")
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Categories tab
// ---------------------------------------------------------------------------

func (m model) viewCategories() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Categories") + "\n")

	counts := catalog.CountByCategory(m.agents)
	if len(counts) == 0 {
		b.WriteString(mutedStyle.Render("No categories yet — load the catalog first.") + "\n")
	}
	for _, cc := range counts {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			padRight(categoryBadge(cc.Category), 28),
			statusStyle.Render(fmt.Sprintf("%d agents", cc.Count))))
	}

	b.WriteString("\n" + titleStyle.Render("Your Library") + "\n")
	if m.library == nil {
		b.WriteString(mutedStyle.Render("Install library unavailable.") + "\n")
		return b.String()
	}
	if len(m.installed) == 0 {
		b.WriteString(mutedStyle.Render("Nothing installed yet — press i on an agent's details.") + "\n")
		return b.String()
	}
	for _, in := range m.installed {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			padRight(in.Agent.Name, 18),
			mutedStyle.Render("installed "+in.InstalledAt)))
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Settings tab
// ---------------------------------------------------------------------------

func (m model) viewSettings() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings") + "\n")
	b.WriteString(fmt.Sprintf("  Catalog source    %s\n", m.cfg.Catalog.Source))
	b.WriteString(fmt.Sprintf("  Fetch delay       %d ms\n", m.cfg.Catalog.FetchDelayMS))
	b.WriteString(fmt.Sprintf("  Lookup delay      %d ms\n", m.cfg.Catalog.LookupMS))
	b.WriteString(fmt.Sprintf("  Library db        %s\n", m.cfg.Database.Path))
	b.WriteString(fmt.Sprintf("  Currency          %s\n", m.cfg.UI.CurrencySymbol))
	logos := "off"
	if m.cfg.UI.ShowLogoURLs {
		logos = "on"
	}
	b.WriteString(fmt.Sprintf("  Logo URLs         %s %s\n", logos, mutedStyle.Render("(l to toggle)")))

	b.WriteString("\n" + titleStyle.Render("Catalog Health") + "\n")
	switch {
	case !m.dupeKnown:
		b.WriteString(mutedStyle.Render("  Duplicate scan pending…") + "\n")
	case m.dupeCount == 0:
		b.WriteString("  " + lipgloss.NewStyle().Foreground(colorSuccess).Render("No suspected duplicate listings.") + "\n")
	default:
		b.WriteString("  " + lipgloss.NewStyle().Foreground(colorWarning).
			Render(fmt.Sprintf("%d suspected duplicate listing pair(s).", m.dupeCount)) + "\n")
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Overlays
// ---------------------------------------------------------------------------

func (m model) viewDetail() string {
	if m.detailLoading {
		return m.centerModal(statusStyle.Render(m.spinner.View() + " Loading agent…"))
	}
	a := m.detail
	cs := styleForCategory(a.Category)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(cs.Gradient[0]).Bold(true).Render(cs.Icon+" "+a.Name) + "\n")
	b.WriteString(categoryBadge(a.Category) + "\n\n")
	b.WriteString(a.Description + "\n\n")
	b.WriteString(statusStyle.Render(ratingStars(a.Rating)+" · "+reviewLabel(a.ReviewCount)) + "\n")
	b.WriteString(statusStyle.Render("Price: "+priceLabel(a.Pricing, m.cfg.UI.CurrencySymbol)) + "\n")
	if len(a.Tags) > 0 {
		b.WriteString(mutedStyle.Render("Tags: "+strings.Join(a.Tags, ", ")) + "\n")
	}
	if m.cfg.UI.ShowLogoURLs && a.LogoURL != "" {
		b.WriteString(mutedStyle.Render("Logo: "+a.LogoURL) + "\n")
	}
	b.WriteString("\n" + helpKeyStyle.Render("s") + helpDescStyle.Render(" start  ") +
		helpKeyStyle.Render("i") + helpDescStyle.Render(" install  ") +
		helpKeyStyle.Render("u") + helpDescStyle.Render(" uninstall  ") +
		helpKeyStyle.Render("esc") + helpDescStyle.Render(" close"))

	return m.centerModal(b.String())
}

func (m model) viewPicker() string {
	p := m.picker
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pick a category") + "\n")
	query := p.query
	if query == "" {
		query = mutedStyle.Render("type to filter…")
	}
	b.WriteString(query + "\n\n")
	for i, it := range p.filtered {
		prefix := "  "
		if i == p.cursor {
			prefix = cursorStyle.Render("> ")
		}
		label := it.Label
		if !it.ClearAll {
			label = fmt.Sprintf("%s %s", categoryBadge(it.Category), mutedStyle.Render(fmt.Sprintf("(%d)", it.Count)))
		}
		b.WriteString(prefix + label + "\n")
	}
	if len(p.filtered) == 0 {
		b.WriteString(mutedStyle.Render("  no matching categories") + "\n")
	}
	return m.centerModal(b.String())
}

func (m model) centerModal(content string) string {
	modal := modalStyle.Render(content)
	height := m.height - 4
	if height < lipgloss.Height(modal) {
		height = lipgloss.Height(modal)
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceBackground(colorBase))
}

// ---------------------------------------------------------------------------
// Status + footer
// ---------------------------------------------------------------------------

func (m model) viewStatusBar() string {
	text := m.status
	style := statusBarStyle
	if m.statusErr {
		style = style.Foreground(colorError)
	}
	if m.isLoading && m.hasLoaded {
		text = m.spinner.View() + " refreshing…"
	}
	return style.Width(m.width).Render(text)
}

func (m model) viewFooter() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return footerStyle.Width(m.width).Render(strings.Join(parts, "  "))
}
