package collections

import (
	"strings"
	"unicode"
)

// Normalize lower-cases the given string and strips whitespace and
// underscores.  Keyword and variable tables treat "My Keyword",
// "my_keyword" and "MYKEYWORD" as the same key, so every lookup path
// folds through this function.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '_' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
