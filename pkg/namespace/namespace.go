// Package namespace answers "what keywords and variables are visible
// here" queries over a web of suite files, resources, libraries and
// variable files, for interactive content assist.  It resolves import
// graphs recursively with cycle guards, applies first-definition-wins
// variable semantics, and caches at resource and keyword-dictionary
// granularity.  Resolution misses degrade to fewer results, never to
// errors.
package namespace

import (
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/geyuegui/RIDE/pkg/cache"
	"github.com/geyuegui/RIDE/pkg/datafile"
	"github.com/geyuegui/RIDE/pkg/libraries"
)

// bddPrefixPattern matches a conventional Given/When/Then/And prefix in
// front of a keyword name.
var bddPrefixPattern = regexp.MustCompile(`(?is)^\s*(given|when|then|and)(.*)$`)

// ContentAssistHook is a pluggable suggestion source queried alongside
// the built-in resolver.
type ContentAssistHook func(df datafile.DataFile, start string) []Suggestion

// Controller is the editor-side view of the query point: the datafile
// under edit and the argument variables in scope at the cursor.
type Controller interface {
	DataFile() datafile.DataFile
	LocalVariables() map[string]any
}

// Namespace is the query-facing facade over the retriever and its
// caches.
type Namespace struct {
	libraries *libraries.LibraryCache
	resources *ResourceCache
	retriever *DatafileRetriever
	hooks     []ContentAssistHook
	logger    zerolog.Logger

	finder        PathFinder
	varFileLoader VarFileLoader
	keywordTTL    time.Duration
}

// Option configures a Namespace.
type Option func(*Namespace) *Namespace

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(ns *Namespace) *Namespace {
		ns.logger = logger
		return ns
	}
}

// WithPathFinder enables search-path fallback for resource imports that
// are not resolvable relative to the importing file.
func WithPathFinder(finder PathFinder) Option {
	return func(ns *Namespace) *Namespace {
		ns.finder = finder
		return ns
	}
}

// WithVarFileLoader enables variable-file imports.
func WithVarFileLoader(loader VarFileLoader) Option {
	return func(ns *Namespace) *Namespace {
		ns.varFileLoader = loader
		return ns
	}
}

// WithKeywordCacheTTL sets the lifetime of cached keyword dictionaries.
func WithKeywordCacheTTL(ttl time.Duration) Option {
	return func(ns *Namespace) *Namespace {
		ns.keywordTTL = ttl
		return ns
	}
}

// New constructs a Namespace over the given parser and library keyword
// provider.
func New(parser datafile.Parser, provider libraries.KeywordProvider, options ...Option) (*Namespace, error) {
	ns := &Namespace{logger: zerolog.Nop()}
	for _, opt := range options {
		ns = opt(ns)
	}
	keywordCache, err := cache.NewExpiringCache(ns.keywordTTL)
	if err != nil {
		return nil, err
	}
	ns.libraries = libraries.NewLibraryCache(provider, libraries.WithLibraryCacheLogger(ns.logger))
	ns.resources = NewResourceCache(parser, ns.finder, ns.logger)
	ns.retriever = NewDatafileRetriever(ns.libraries, ns.resources, keywordCache, ns.varFileLoader, ns.logger)
	return ns, nil
}

// RegisterContentAssistHook adds a suggestion source that is queried on
// every GetSuggestionsFor call, regardless of the partial text's shape.
func (ns *Namespace) RegisterContentAssistHook(hook ContentAssistHook) {
	ns.hooks = append(ns.hooks, hook)
}

// GetAllKeywords returns the union of the default keyword set and every
// keyword visible in any of the given datafiles.
func (ns *Namespace) GetAllKeywords(dfs []datafile.DataFile) []KeywordInfo {
	return ns.retriever.GetKeywordsFromSeveral(dfs)
}

// GetSuggestionsFor computes content-assist suggestions for the partial
// text at the controller's query point.  Dispatch is by lexical shape:
// empty text yields everything, a variable-looking start yields variable
// suggestions augmented with the controller's local argument variables,
// anything else yields keyword suggestions.  Matching is prefix-based
// and case/whitespace/underscore-insensitive.
func (ns *Namespace) GetSuggestionsFor(controller Controller, start string) []Suggestion {
	df := controller.DataFile()
	sugs := ns.hookSuggestions(df, start)
	switch {
	case start == "":
		sugs = append(sugs, ns.variableSuggestions(controller, "")...)
		sugs = append(sugs, ns.keywordSuggestions(df, "")...)
	case looksLikeVariable(start):
		sugs = append(sugs, ns.variableSuggestions(controller, start)...)
	default:
		sugs = append(sugs, ns.keywordSuggestions(df, start)...)
	}
	return SortSuggestions(sugs)
}

func (ns *Namespace) hookSuggestions(df datafile.DataFile, start string) []Suggestion {
	var sugs []Suggestion
	for _, hook := range ns.hooks {
		sugs = append(sugs, hook(df, start)...)
	}
	return sugs
}

func (ns *Namespace) variableSuggestions(controller Controller, start string) []Suggestion {
	stash := ns.retriever.GetVariablesFrom(controller.DataFile())
	for name, value := range controller.LocalVariables() {
		stash.Set(name, value, ArgumentVariableSource)
	}
	index := NewSuggestionTrie()
	for _, v := range stash.Variables() {
		index.Put(v)
	}
	return index.HasPrefix(start)
}

func (ns *Namespace) keywordSuggestions(df datafile.DataFile, start string) []Suggestion {
	index := NewSuggestionTrie()
	for _, kw := range ns.retriever.DefaultKeywordInfos() {
		index.Put(kw)
	}
	for _, kw := range ns.retriever.GetKeywordsFrom(df) {
		index.Put(kw)
	}
	return index.HasPrefix(start)
}

// looksLikeVariable reports whether the partial text is the start of a
// variable reference: a lone "$" or "@", or "${" / "@{" followed by
// anything.
func looksLikeVariable(start string) bool {
	if len(start) == 1 {
		return start == "$" || start == "@"
	}
	return strings.HasPrefix(start, "${") || strings.HasPrefix(start, "@{")
}

// GetResources returns every resource transitively imported by the
// datafile and its children, sorted by name.
func (ns *Namespace) GetResources(df datafile.DataFile) []*datafile.ResourceFile {
	return ns.retriever.GetResourcesFrom(df)
}

// GetResource returns the parsed resource at path, or nil.
func (ns *Namespace) GetResource(path string) *datafile.ResourceFile {
	return ns.resources.GetResource("", path)
}

// FindKeyword resolves name in the datafile's visible keyword set.  A
// miss retries with a conventional Given/When/Then/And prefix stripped.
// nil means not found; that is a lookup miss, not an error.
func (ns *Namespace) FindKeyword(df datafile.DataFile, name string) KeywordInfo {
	if name == "" {
		return nil
	}
	dict := ns.retriever.GetKeywordsDictCached(df)
	if kw, ok := dict.Find(name); ok {
		return kw
	}
	if bdd, ok := stripBDDPrefix(name); ok {
		if kw, ok := dict.Find(bdd); ok {
			return kw
		}
	}
	return nil
}

func stripBDDPrefix(name string) (string, bool) {
	m := bddPrefixPattern.FindStringSubmatch(name)
	if m == nil || m[2] == "" {
		return "", false
	}
	return m[2], true
}

// FindUserKeyword resolves name to a user keyword, or nil if it is not
// found or resolves to a library keyword.
func (ns *Namespace) FindUserKeyword(df datafile.DataFile, name string) KeywordInfo {
	kw := ns.FindKeyword(df, name)
	if kw == nil || kw.IsLibraryKeyword() {
		return nil
	}
	return kw
}

// IsUserKeyword reports whether name resolves to a user keyword.
func (ns *Namespace) IsUserKeyword(df datafile.DataFile, name string) bool {
	return ns.FindUserKeyword(df, name) != nil
}

// FindLibraryKeyword resolves name to a library keyword, or nil.
func (ns *Namespace) FindLibraryKeyword(df datafile.DataFile, name string) KeywordInfo {
	kw := ns.FindKeyword(df, name)
	if kw == nil || !kw.IsLibraryKeyword() {
		return nil
	}
	return kw
}

// IsLibraryKeyword reports whether name resolves to a library keyword.
func (ns *Namespace) IsLibraryKeyword(df datafile.DataFile, name string) bool {
	return ns.FindLibraryKeyword(df, name) != nil
}

// KeywordDetails returns the documentation of the keyword name resolves
// to, or the empty string.
func (ns *Namespace) KeywordDetails(df datafile.DataFile, name string) string {
	if kw := ns.FindKeyword(df, name); kw != nil {
		return kw.Details()
	}
	return ""
}

// Invalidate drops the cached keyword dictionary for the given source
// path, typically because the file changed on disk.
func (ns *Namespace) Invalidate(source string) {
	ns.retriever.InvalidateKeywordCache(source)
}

// Reset drops every cached keyword dictionary.
func (ns *Namespace) Reset() {
	ns.retriever.ResetKeywordCache()
}
