// Package variables implements the ${scalar} / @{list} variable reference
// syntax used in test data files.
package variables

import (
	"regexp"
	"strings"
)

var (
	refPattern   = regexp.MustCompile(`[$@]\{[^{}]+\}`)
	exactPattern = regexp.MustCompile(`^[$@]\{[^{}]+\}$`)
)

// IsVariable reports whether the given string, ignoring surrounding
// whitespace, is exactly one variable reference.
func IsVariable(s string) bool {
	return exactPattern.MatchString(strings.TrimSpace(s))
}

// IsListVariable reports whether the given string is exactly one list
// variable reference, e.g. "@{items}".
func IsListVariable(s string) bool {
	return IsVariable(s) && strings.HasPrefix(strings.TrimSpace(s), "@")
}

// ContainsVariable reports whether the given string contains at least one
// variable reference.
func ContainsVariable(s string) bool {
	return refPattern.MatchString(s)
}

// FindReferences returns every variable reference in the given string, in
// order of occurrence.
func FindReferences(s string) []string {
	return refPattern.FindAllString(s, -1)
}

// ReplaceReferences substitutes each variable reference in the given
// string using the resolve function.  References the resolver does not
// know are left intact, so a partially resolvable string degrades rather
// than failing.
func ReplaceReferences(s string, resolve func(ref string) (string, bool)) string {
	return refPattern.ReplaceAllStringFunc(s, func(ref string) string {
		if value, ok := resolve(ref); ok {
			return value
		}
		return ref
	})
}
