// Package libraries provides access to keywords contributed by installed
// keyword libraries.  Library introspection is owned by the host; this
// package memoizes its results.
package libraries

// Keyword is one keyword exposed by a library.
type Keyword struct {
	Name    string
	Library string
	Args    []string
	Doc     string
}

// KeywordProvider introspects installed keyword libraries.
type KeywordProvider interface {
	// LibraryKeywords returns the keywords of the named library,
	// instantiated with the given import arguments.
	LibraryKeywords(name string, args []string) ([]*Keyword, error)

	// DefaultKeywords returns the keywords that are always available
	// without an explicit import, e.g. built-in control flow keywords.
	DefaultKeywords() []*Keyword
}
