package algorithms

import "strings"

// concernSkinTypes maps a user-supplied concern keyword to the catalog
// skin-type categories that address it. "all" is the wildcard: once it
// appears, narrowing by category is pointless.
var concernSkinTypes = map[string][]string{
	"acne":    {"oily", "combination"},
	"bags":    {"all"},
	"redness": {"sensitive"},
}

const wildcard = "all"

// ExpandConcerns turns concern keywords into the deduplicated set of
// catalog skin-type categories to match. Unknown concerns map to the
// wildcard. An empty result means no concern narrowing at all; a result
// containing only "all" means every product qualifies.
func ExpandConcerns(concerns []string) []string {
	seen := make(map[string]bool)
	var types []string

	for _, concern := range concerns {
		concern = strings.ToLower(strings.TrimSpace(concern))
		if concern == "" {
			continue
		}

		mapped, ok := concernSkinTypes[concern]
		if !ok {
			mapped = []string{wildcard}
		}

		for _, t := range mapped {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}

	return types
}

// ContainsWildcard reports whether the expanded set includes "all".
func ContainsWildcard(types []string) bool {
	for _, t := range types {
		if t == wildcard {
			return true
		}
	}
	return false
}
