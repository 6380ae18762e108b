package service

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/agentdeck-dev/agentdeck/internal/catalog"
)

// Curator implements duplicate-listing detection for catalog hygiene.
// Marketplaces accumulate re-submissions of the same agent under slightly
// different names; the curator surfaces likely pairs for review.
type Curator struct {
	// Threshold is the minimum name similarity (0..1) for a fuzzy match.
	// Zero means the default.
	Threshold float64
}

const defaultCuratorThreshold = 0.82

// DuplicatePair is one suspected duplicate: two listings and how alike their
// names are. Exact pairs have Similarity 1.
type DuplicatePair struct {
	A          catalog.Agent
	B          catalog.Agent
	Similarity float64
	Exact      bool
}

// FindDuplicates runs the 2-stage scan: exact (case-insensitive name equality
// within a category) first, then fuzzy name similarity.
func (c Curator) FindDuplicates(agents []catalog.Agent) []DuplicatePair {
	threshold := c.Threshold
	if threshold <= 0 {
		threshold = defaultCuratorThreshold
	}
	var out []DuplicatePair
	for i := 0; i < len(agents); i++ {
		for j := i + 1; j < len(agents); j++ {
			a, b := agents[i], agents[j]
			if a.Category != b.Category {
				continue
			}
			if matchExact(a, b) {
				out = append(out, DuplicatePair{A: a, B: b, Similarity: 1, Exact: true})
				continue
			}
			sim := nameSimilarity(a, b)
			if sim >= threshold {
				out = append(out, DuplicatePair{A: a, B: b, Similarity: sim})
			}
		}
	}
	return out
}

func matchExact(a, b catalog.Agent) bool {
	return strings.EqualFold(strings.TrimSpace(a.Name), strings.TrimSpace(b.Name))
}

func nameSimilarity(a, b catalog.Agent) float64 {
	an := strings.ToUpper(strings.TrimSpace(a.Name))
	bn := strings.ToUpper(strings.TrimSpace(b.Name))
	longest := max(len(an), len(bn))
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(an, bn)
	return 1 - float64(dist)/float64(longest)
}
