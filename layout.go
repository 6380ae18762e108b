package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentdeck-dev/agentdeck/internal/catalog"
)

// padRight pads s with spaces to width, truncating when too long.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate cuts s to at most width cells, appending an ellipsis when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// ratingStars renders a 0–5 rating as filled/empty stars plus the number.
func ratingStars(rating float64) string {
	full := int(rating + 0.5)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full) + fmt.Sprintf(" %.1f", rating)
}

// priceLabel formats a pricing variant for display.
func priceLabel(p catalog.Pricing, currency string) string {
	switch p.Model {
	case catalog.PricingOneTime:
		return fmt.Sprintf("%s%.2f", currency, p.Amount)
	case catalog.PricingSubscription:
		period := p.Period
		if period == "" {
			period = "month"
		}
		return fmt.Sprintf("%s%.2f/%s", currency, p.Amount, period)
	default:
		return "Free"
	}
}

// reviewLabel compacts a review count ("2.1k reviews").
func reviewLabel(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk reviews", float64(n)/1000)
	}
	return fmt.Sprintf("%d reviews", n)
}
