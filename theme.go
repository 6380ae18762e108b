package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agentdeck-dev/agentdeck/internal/catalog"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorFlamingo  lipgloss.Color = "#f2cdcd"
	colorPink      lipgloss.Color = "#f5c2e7"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorRed       lipgloss.Color = "#f38ba8"
	colorMaroon    lipgloss.Color = "#eba0ac"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSky       lipgloss.Color = "#89dceb"
	colorSapphire  lipgloss.Color = "#74c7ec"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorMauve
	colorBrand   = colorMauve
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

// ---------------------------------------------------------------------------
// Category style tokens
// ---------------------------------------------------------------------------

// categoryStyle is the cosmetic identity of one category: an icon glyph and a
// two-color gradient. Purely presentational; the catalog core never sees it.
type categoryStyle struct {
	Icon     string
	Gradient [2]lipgloss.Color
}

var categoryStyles = map[catalog.Category]categoryStyle{
	catalog.CategoryProductivity:    {Icon: "⚡", Gradient: [2]lipgloss.Color{colorBlue, colorSapphire}},
	catalog.CategoryCreative:        {Icon: "🎨", Gradient: [2]lipgloss.Color{colorPink, colorMauve}},
	catalog.CategoryBusiness:        {Icon: "💼", Gradient: [2]lipgloss.Color{colorLavender, colorBlue}},
	catalog.CategoryEducation:       {Icon: "📚", Gradient: [2]lipgloss.Color{colorYellow, colorPeach}},
	catalog.CategoryHealthcare:      {Icon: "🩺", Gradient: [2]lipgloss.Color{colorTeal, colorGreen}},
	catalog.CategoryFinance:         {Icon: "💰", Gradient: [2]lipgloss.Color{colorGreen, colorTeal}},
	catalog.CategoryMarketing:       {Icon: "📣", Gradient: [2]lipgloss.Color{colorPeach, colorMaroon}},
	catalog.CategoryEducationDev:    {Icon: "⌨", Gradient: [2]lipgloss.Color{colorSapphire, colorSky}},
	catalog.CategoryCustomerService: {Icon: "💬", Gradient: [2]lipgloss.Color{colorSky, colorBlue}},
	catalog.CategoryAnalytics:       {Icon: "📊", Gradient: [2]lipgloss.Color{colorMauve, colorLavender}},
	catalog.CategoryTravel:          {Icon: "✈", Gradient: [2]lipgloss.Color{colorFlamingo, colorRosewater}},
	catalog.CategoryEcommerce:       {Icon: "🛒", Gradient: [2]lipgloss.Color{colorMaroon, colorRed}},
}

var fallbackCategoryStyle = categoryStyle{Icon: "•", Gradient: [2]lipgloss.Color{colorOverlay1, colorOverlay0}}

// styleForCategory returns the style tokens for a category, with a neutral
// fallback for anything outside the known set.
func styleForCategory(c catalog.Category) categoryStyle {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return fallbackCategoryStyle
}

// categoryBadge renders the icon + display name of a category in its gradient
// lead color.
func categoryBadge(c catalog.Category) string {
	s := styleForCategory(c)
	return lipgloss.NewStyle().Foreground(s.Gradient[0]).Render(s.Icon + " " + c.DisplayName())
}
