package main

import (
	"strings"

	"github.com/agentdeck-dev/agentdeck/internal/catalog"
)

// ---------------------------------------------------------------------------
// Category picker overlay
// ---------------------------------------------------------------------------

type pickerItem struct {
	Category catalog.Category
	Label    string
	Count    int
	ClearAll bool // the "All categories" row
}

type pickerState struct {
	items    []pickerItem
	filtered []pickerItem
	query    string
	cursor   int
}

type pickerAction int

const (
	pickerActionNone pickerAction = iota
	pickerActionMoved
	pickerActionSelected
	pickerActionCancelled
)

type pickerResult struct {
	Action pickerAction
	Item   pickerItem
}

// newCategoryPicker builds the overlay from the whole-catalog counts. The
// first row clears the selection; the rest mirror availableCategories order
// (count descending).
func newCategoryPicker(counts []catalog.CategoryCount) *pickerState {
	items := make([]pickerItem, 0, len(counts)+1)
	items = append(items, pickerItem{Label: "All categories", ClearAll: true})
	for _, cc := range counts {
		items = append(items, pickerItem{
			Category: cc.Category,
			Label:    cc.Category.DisplayName(),
			Count:    cc.Count,
		})
	}
	p := &pickerState{items: items}
	p.rebuildFiltered()
	return p
}

func (p *pickerState) rebuildFiltered() {
	q := strings.ToLower(strings.TrimSpace(p.query))
	if q == "" {
		p.filtered = append([]pickerItem(nil), p.items...)
	} else {
		p.filtered = p.filtered[:0]
		for _, it := range p.items {
			if it.ClearAll || strings.Contains(strings.ToLower(it.Label), q) {
				p.filtered = append(p.filtered, it)
			}
		}
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// HandleKey routes one key press into the picker and reports what happened.
func (p *pickerState) HandleKey(key string) pickerResult {
	switch key {
	case "esc":
		return pickerResult{Action: pickerActionCancelled}
	case "up":
		if p.cursor > 0 {
			p.cursor--
		}
		return pickerResult{Action: pickerActionMoved}
	case "down":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
		}
		return pickerResult{Action: pickerActionMoved}
	case "enter":
		if len(p.filtered) == 0 {
			return pickerResult{Action: pickerActionNone}
		}
		return pickerResult{Action: pickerActionSelected, Item: p.filtered[p.cursor]}
	case "backspace":
		if p.query != "" {
			p.query = p.query[:len(p.query)-1]
			p.rebuildFiltered()
		}
		return pickerResult{Action: pickerActionNone}
	}
	if len(key) == 1 {
		p.query += key
		p.rebuildFiltered()
		return pickerResult{Action: pickerActionNone}
	}
	return pickerResult{Action: pickerActionNone}
}
