package namespace

import (
	"fmt"
	"strings"

	"github.com/geyuegui/RIDE/pkg/datafile"
	"github.com/geyuegui/RIDE/pkg/libraries"
)

// KeywordInfo is a resolvable keyword suggestion.  Variants carry a
// back-reference to their origin (suite, resource or library) but never
// own it.
type KeywordInfo interface {
	Suggestion

	// Longname is the fully-qualified name including the source
	// container prefix, e.g. "MyResource.My Keyword".
	Longname() string

	// IsLibraryKeyword reports whether the keyword comes from a keyword
	// library rather than a user definition.
	IsLibraryKeyword() bool

	// Arguments returns the keyword's argument specification.
	Arguments() []string
}

// UserKeywordInfo is a keyword defined in a suite or resource file.
type UserKeywordInfo struct {
	kw         *datafile.Keyword
	container  string
	sourceKind string
}

// NewSuiteKeywordInfo wraps a keyword defined in a test case file.
func NewSuiteKeywordInfo(kw *datafile.Keyword, container string) *UserKeywordInfo {
	return &UserKeywordInfo{kw: kw, container: container, sourceKind: "Test case file"}
}

// NewResourceKeywordInfo wraps a keyword defined in a resource file.
func NewResourceKeywordInfo(kw *datafile.Keyword, container string) *UserKeywordInfo {
	return &UserKeywordInfo{kw: kw, container: container, sourceKind: "Resource file"}
}

func (i *UserKeywordInfo) Name() string {
	return i.kw.Name
}

func (i *UserKeywordInfo) Longname() string {
	return i.container + "." + i.kw.Name
}

func (i *UserKeywordInfo) IsLibraryKeyword() bool {
	return false
}

func (i *UserKeywordInfo) Arguments() []string {
	return i.kw.Args
}

func (i *UserKeywordInfo) Details() string {
	return details(i.container, i.sourceKind, i.kw.Args, i.kw.Doc)
}

func (i *UserKeywordInfo) String() string {
	return fmt.Sprintf("(%s %s)", i.Longname(), i.sourceKind)
}

// LibraryKeywordInfo is a keyword provided by an imported or built-in
// keyword library.
type LibraryKeywordInfo struct {
	kw *libraries.Keyword
}

// NewLibraryKeywordInfo wraps a library keyword.
func NewLibraryKeywordInfo(kw *libraries.Keyword) *LibraryKeywordInfo {
	return &LibraryKeywordInfo{kw: kw}
}

func (i *LibraryKeywordInfo) Name() string {
	return i.kw.Name
}

func (i *LibraryKeywordInfo) Longname() string {
	return i.kw.Library + "." + i.kw.Name
}

func (i *LibraryKeywordInfo) IsLibraryKeyword() bool {
	return true
}

func (i *LibraryKeywordInfo) Arguments() []string {
	return i.kw.Args
}

func (i *LibraryKeywordInfo) Details() string {
	return details(i.kw.Library, "Library", i.kw.Args, i.kw.Doc)
}

func (i *LibraryKeywordInfo) String() string {
	return fmt.Sprintf("(%s Library)", i.Longname())
}

func details(source, kind string, args []string, doc string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source: %s <%s>\n", source, kind)
	fmt.Fprintf(&b, "Arguments: [ %s ]\n", strings.Join(args, " | "))
	if doc != "" {
		b.WriteString("\n")
		b.WriteString(doc)
	}
	return b.String()
}
