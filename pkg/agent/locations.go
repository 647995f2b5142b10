package agent

import (
	"strings"

	"github.com/agext/levenshtein"
)

// CanonicalLocations are the destinations the downstream tools understand.
var CanonicalLocations = []string{
	"Goa",
	"Alibaug",
	"Lonavala",
	"Karjat",
	"Coonoor",
	"Mussoorie",
	"Kasauli",
	"Udaipur",
	"Srinagar",
}

// ResolveLocations maps free-form location strings onto the canonical list.
// Comma-joined values are flattened first. Each token matches exactly
// (case-insensitive) or by closest Levenshtein distance within a
// length-scaled threshold. Tokens that resolve to nothing are dropped; the
// result is deduplicated in input order.
func ResolveLocations(raw []string) []string {
	var resolved []string
	seen := make(map[string]bool)

	for _, value := range raw {
		for _, token := range strings.Split(value, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			canonical, ok := resolveToken(token)
			if !ok || seen[canonical] {
				continue
			}
			seen[canonical] = true
			resolved = append(resolved, canonical)
		}
	}
	return resolved
}

func resolveToken(token string) (string, bool) {
	lower := strings.ToLower(token)

	for _, canonical := range CanonicalLocations {
		if strings.ToLower(canonical) == lower {
			return canonical, true
		}
	}

	best := ""
	bestDist := -1
	for _, canonical := range CanonicalLocations {
		dist := levenshtein.Distance(lower, strings.ToLower(canonical), nil)
		if bestDist < 0 || dist < bestDist {
			best = canonical
			bestDist = dist
		}
	}

	threshold := len(lower)*4/10 + 1
	if threshold > 3 {
		threshold = 3
	}
	if bestDist >= 0 && bestDist <= threshold {
		return best, true
	}
	return "", false
}
