package nav

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the label closest to the failed query, if any label is
// within the edit-distance limit for its length. Ties go to the earlier
// label so the result is stable across calls.
func Suggest(labels []string, query string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return "", false
	}
	best := ""
	bestDist := -1
	for _, label := range labels {
		candidate := strings.ToLower(label)
		if len(candidate) > len(trimmed) {
			candidate = candidate[:len(trimmed)]
		}
		dist := levenshtein.ComputeDistance(trimmed, candidate)
		if dist > distanceLimit(len(trimmed)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = label
			bestDist = dist
		}
	}
	if bestDist < 0 {
		return "", false
	}
	return best, true
}

func distanceLimit(length int) int {
	switch {
	case length <= 3:
		return 1
	case length <= 6:
		return 2
	default:
		return 3
	}
}
