package namespace

import (
	"sort"

	"github.com/geyuegui/RIDE/pkg/collections"
)

// Suggestion is one content-assist result: a keyword or a variable that
// is visible at the query point.
type Suggestion interface {
	// Name is the display name inserted on completion.
	Name() string
	// Details is human-readable documentation for the suggestion pane.
	Details() string
}

// SortSuggestions orders suggestions by normalized name, with the
// original spelling as tie breaker, and drops later duplicates of the
// same normalized name and kind.
func SortSuggestions(sugs []Suggestion) []Suggestion {
	seen := make(map[string]bool, len(sugs))
	unique := make([]Suggestion, 0, len(sugs))
	for _, s := range sugs {
		key := suggestionKey(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, s)
	}
	sort.SliceStable(unique, func(i, j int) bool {
		a := collections.Normalize(unique[i].Name())
		b := collections.Normalize(unique[j].Name())
		if a != b {
			return a < b
		}
		return unique[i].Name() < unique[j].Name()
	})
	return unique
}

func suggestionKey(s Suggestion) string {
	if kw, ok := s.(KeywordInfo); ok {
		return "kw:" + collections.Normalize(kw.Longname())
	}
	return "var:" + collections.Normalize(s.Name())
}
