package catalog

import (
	"sort"
	"strings"
)

// carouselCap bounds each home-screen carousel.
const carouselCap = 6

// Rankings is the full derived view over one catalog snapshot for a given
// search query and category selection. All lists are computed together so a
// reader can never observe one list updated and another stale.
type Rankings struct {
	Filtered       []Agent
	BestPerforming []Agent
	Recommended    []Agent
	MostUsed       []Agent
	Categories     []CategoryCount
}

// CategoryCount is one entry of the category picker: a category and how many
// agents of the whole catalog belong to it.
type CategoryCount struct {
	Category Category
	Count    int
}

// Rank computes every derived list from a catalog snapshot. It is a pure
// function: same inputs give same outputs, and the input slice is never
// reordered or otherwise mutated.
func Rank(agents []Agent, query string, selected *Category) Rankings {
	return Rankings{
		Filtered:       Filter(agents, query, selected),
		BestPerforming: BestPerforming(agents, query, selected),
		Recommended:    Recommended(agents, query, selected),
		MostUsed:       MostUsed(agents, query, selected),
		Categories:     CountByCategory(agents),
	}
}

// Filter returns the agents matching the combined search/category predicate,
// sorted by rating descending with review count as tie-break. The sort is
// stable: agents equal on both keys keep their catalog order.
func Filter(agents []Agent, query string, selected *Category) []Agent {
	out := collect(agents, query, selected, nil)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ReviewCount > out[j].ReviewCount
	})
	return out
}

// BestPerforming returns up to six flagged best performers matching the
// current filter, ordered by rating descending.
func BestPerforming(agents []Agent, query string, selected *Category) []Agent {
	out := collect(agents, query, selected, func(a Agent) bool { return a.IsBestPerforming })
	sortByRating(out)
	return capList(out)
}

// Recommended returns up to six flagged recommendations matching the current
// filter, ordered by rating descending.
func Recommended(agents []Agent, query string, selected *Category) []Agent {
	out := collect(agents, query, selected, func(a Agent) bool { return a.IsRecommended })
	sortByRating(out)
	return capList(out)
}

// MostUsed returns up to six agents matching the current filter, ordered by
// review count descending. No flag is required.
func MostUsed(agents []Agent, query string, selected *Category) []Agent {
	out := collect(agents, query, selected, nil)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReviewCount > out[j].ReviewCount
	})
	return capList(out)
}

// CountByCategory groups the whole catalog by category and returns the
// non-empty categories sorted by member count descending. It deliberately
// ignores the current search/category filter so the picker always reflects
// the full catalog.
func CountByCategory(agents []Agent) []CategoryCount {
	counts := make(map[Category]int)
	for _, a := range agents {
		counts[a.Category]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for _, c := range Categories() {
		if n := counts[c]; n > 0 {
			out = append(out, CategoryCount{Category: c, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// collect applies the combined predicate plus an optional extra flag filter,
// returning a fresh slice so callers can sort freely.
func collect(agents []Agent, query string, selected *Category, extra func(Agent) bool) []Agent {
	out := make([]Agent, 0, len(agents))
	for _, a := range agents {
		if !matchesQuery(a, query) {
			continue
		}
		if !matchesCategory(a, selected) {
			continue
		}
		if extra != nil && !extra(a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesQuery(a Agent, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(a.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Description), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func matchesCategory(a Agent, selected *Category) bool {
	if selected == nil {
		return true // no selection = show all
	}
	return a.Category == *selected
}

func sortByRating(agents []Agent) {
	sort.SliceStable(agents, func(i, j int) bool {
		return agents[i].Rating > agents[j].Rating
	})
}

func capList(agents []Agent) []Agent {
	if len(agents) > carouselCap {
		return agents[:carouselCap]
	}
	return agents
}
