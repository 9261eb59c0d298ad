package namespace

import (
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/geyuegui/RIDE/pkg/cache"
	"github.com/geyuegui/RIDE/pkg/collections"
	"github.com/geyuegui/RIDE/pkg/datafile"
	"github.com/geyuegui/RIDE/pkg/libraries"
)

// DatafileRetriever walks a datafile's import graph to produce ordered,
// de-duplicated keyword and variable result sets.  Every public query
// builds its own RetrieverContext, so concurrent queries never share
// traversal state; the resource and keyword caches are shared.
type DatafileRetriever struct {
	libraries     *libraries.LibraryCache
	resources     *ResourceCache
	keywordCache  *cache.ExpiringCache
	varFileLoader VarFileLoader
	logger        zerolog.Logger
}

// NewDatafileRetriever constructs a retriever over the given caches.
// The variable file loader may be nil, in which case variable-file
// imports contribute nothing.
func NewDatafileRetriever(libs *libraries.LibraryCache, res *ResourceCache, keywordCache *cache.ExpiringCache, loader VarFileLoader, logger zerolog.Logger) *DatafileRetriever {
	return &DatafileRetriever{
		libraries:     libs,
		resources:     res,
		keywordCache:  keywordCache,
		varFileLoader: loader,
		logger:        logger,
	}
}

// GetKeywordsFrom returns every keyword visible in the given datafile in
// precedence order: the file's own keywords, then keywords from each
// library import in import order, then keywords from each resource
// import depth-first in import order.  Later duplicates of a name are
// suppressed without reordering.
//
// Variables are fully resolved in a first pass before any import
// argument is evaluated, because import names and arguments may
// themselves reference variables defined elsewhere in the graph.
func (r *DatafileRetriever) GetKeywordsFrom(df datafile.DataFile) []KeywordInfo {
	ctx := NewRetrieverContext(r.logger)
	r.varsRecursive(df, ctx)
	ctx.AllowGoingThroughResourcesAgain()

	kws := r.datafileKeywords(df)
	kws = append(kws, r.importedLibraryKeywords(df, ctx)...)
	kws = append(kws, r.importedResourceKeywords(df, ctx)...)
	return dedupKeywords(kws)
}

// GetKeywordsFromSeveral returns the union of the default keyword set
// and every datafile's visible keywords, sorted by name.
func (r *DatafileRetriever) GetKeywordsFromSeveral(dfs []datafile.DataFile) []KeywordInfo {
	var kws []KeywordInfo
	kws = append(kws, r.defaultKeywords()...)
	for _, df := range dfs {
		kws = append(kws, r.GetKeywordsFrom(df)...)
	}
	// Across several files the union keys on the unambiguous long name:
	// same-named keywords from different containers all survive.
	kws = dedupKeywordsBy(kws, func(kw KeywordInfo) string {
		return collections.Normalize(kw.Longname())
	})
	sort.SliceStable(kws, func(i, j int) bool {
		return collections.Normalize(kws[i].Name()) < collections.Normalize(kws[j].Name())
	})
	return kws
}

// GetVariablesFrom resolves every variable reachable from the datafile
// and returns the resulting environment.
func (r *DatafileRetriever) GetVariablesFrom(df datafile.DataFile) *VariableStash {
	ctx := NewRetrieverContext(r.logger)
	r.varsRecursive(df, ctx)
	return ctx.Vars
}

// GetResourcesFrom returns every resource transitively imported by the
// datafile and by each of its children, sorted by name.
func (r *DatafileRetriever) GetResourcesFrom(df datafile.DataFile) []*datafile.ResourceFile {
	found := make(map[string]*datafile.ResourceFile)
	r.resourcesRecursive(df, NewRetrieverContext(r.logger), found)
	resources := make([]*datafile.ResourceFile, 0, len(found))
	for _, res := range found {
		resources = append(resources, res)
	}
	sort.Slice(resources, func(i, j int) bool {
		a, b := resources[i], resources[j]
		if a.Name() != b.Name() {
			return a.Name() < b.Name()
		}
		return a.Source() < b.Source()
	})
	return resources
}

// GetKeywordsDictCached returns the datafile's normalized keyword
// dictionary, computing and caching it on miss.  Entries expire on the
// keyword cache's TTL.
func (r *DatafileRetriever) GetKeywordsDictCached(df datafile.DataFile) *KeywordDict {
	if cached, ok := r.keywordCache.Get(df.Source()); ok {
		return cached.(*KeywordDict)
	}
	kws := r.GetKeywordsFrom(df)
	kws = append(kws, r.defaultKeywords()...)
	dict := NewKeywordDict(kws)
	r.keywordCache.Put(df.Source(), dict)
	return dict
}

// GetUserKeywordsFrom returns every user keyword defined in the datafile
// or in a transitively imported resource.
func (r *DatafileRetriever) GetUserKeywordsFrom(df datafile.DataFile) []*datafile.Keyword {
	seen := make(map[*datafile.Keyword]bool)
	var kws []*datafile.Keyword
	r.userKeywordsRecursive(df, NewRetrieverContext(r.logger), seen, &kws)
	return kws
}

// InvalidateKeywordCache drops the cached keyword dictionary for one
// source path.
func (r *DatafileRetriever) InvalidateKeywordCache(source string) {
	r.keywordCache.Del(source)
}

// ResetKeywordCache drops every cached keyword dictionary.
func (r *DatafileRetriever) ResetKeywordCache() {
	r.keywordCache.Clear()
}

// DefaultKeywordInfos returns the always-available keyword set wrapped
// as KeywordInfo.
func (r *DatafileRetriever) DefaultKeywordInfos() []KeywordInfo {
	return r.defaultKeywords()
}

func (r *DatafileRetriever) defaultKeywords() []KeywordInfo {
	defaults := r.libraries.DefaultKeywords()
	kws := make([]KeywordInfo, 0, len(defaults))
	for _, kw := range defaults {
		kws = append(kws, NewLibraryKeywordInfo(kw))
	}
	return kws
}

func (r *DatafileRetriever) datafileKeywords(df datafile.DataFile) []KeywordInfo {
	kws := make([]KeywordInfo, 0, len(df.Keywords()))
	for _, kw := range df.Keywords() {
		kws = append(kws, NewSuiteKeywordInfo(kw, df.Name()))
	}
	return kws
}

func (r *DatafileRetriever) importedLibraryKeywords(df datafile.DataFile, ctx *RetrieverContext) []KeywordInfo {
	var kws []KeywordInfo
	for _, imp := range importsOfKind(df, datafile.LibraryImport) {
		name := ctx.Vars.ReplaceString(imp.Name)
		args := make([]string, len(imp.Args))
		for i, a := range imp.Args {
			args[i] = ctx.Vars.ReplaceString(a)
		}
		for _, kw := range r.libraries.Keywords(name, args) {
			kws = append(kws, NewLibraryKeywordInfo(kw))
		}
	}
	return kws
}

func (r *DatafileRetriever) importedResourceKeywords(df datafile.DataFile, ctx *RetrieverContext) []KeywordInfo {
	var kws []KeywordInfo
	for _, imp := range importsOfKind(df, datafile.ResourceImport) {
		kws = append(kws, r.resourceKeywordsRecursive(imp, ctx)...)
	}
	return kws
}

// resourceKeywordsRecursive resolves one resource import: the resource's
// own keywords come first, then its nested resource imports depth-first,
// then its library imports.  A resource already visited in this pass
// contributes nothing, which is what terminates cyclic graphs.
func (r *DatafileRetriever) resourceKeywordsRecursive(imp *datafile.Import, ctx *RetrieverContext) []KeywordInfo {
	res := r.resources.GetResource(imp.Directory, ctx.Vars.ReplaceString(imp.Name))
	if res == nil || !ctx.Visit(res.Source()) {
		return nil
	}
	ctx.Vars.SetFromVariableTable(res.VariableTable())

	var imported []KeywordInfo
	for _, child := range importsOfKind(res, datafile.ResourceImport) {
		imported = append(imported, r.resourceKeywordsRecursive(child, ctx)...)
	}
	imported = append(imported, r.importedLibraryKeywords(res, ctx)...)

	kws := make([]KeywordInfo, 0, len(res.Keywords())+len(imported))
	for _, kw := range res.Keywords() {
		kws = append(kws, NewResourceKeywordInfo(kw, res.Name()))
	}
	return append(kws, imported...)
}

func (r *DatafileRetriever) varsRecursive(df datafile.DataFile, ctx *RetrieverContext) {
	ctx.Vars.SetFromVariableTable(df.VariableTable())
	r.collectVarsFromVariableFiles(df, ctx)
	r.collectEachResImport(df, ctx, func(res *datafile.ResourceFile, ctx *RetrieverContext) {
		r.varsRecursive(res, ctx)
	})
}

func (r *DatafileRetriever) collectVarsFromVariableFiles(df datafile.DataFile, ctx *RetrieverContext) {
	for _, imp := range importsOfKind(df, datafile.VariablesImport) {
		path := filepath.Join(df.Directory(), ctx.Vars.ReplaceString(imp.Name))
		args := make([]string, len(imp.Args))
		for i, a := range imp.Args {
			args[i] = ctx.Vars.ReplaceString(a)
		}
		if err := ctx.Vars.SetFromFile(path, args, r.varFileLoader); err != nil {
			// Surfaced through diagnostics elsewhere; resolution
			// continues without the file's variables.
			r.logger.Debug().Err(err).Msg("variable file skipped")
		}
	}
}

// collectEachResImport resolves every resource import of df and invokes
// the collector once per first-visited resource.
func (r *DatafileRetriever) collectEachResImport(df datafile.DataFile, ctx *RetrieverContext, collect func(*datafile.ResourceFile, *RetrieverContext)) {
	ctx.Vars.SetFromVariableTable(df.VariableTable())
	for _, imp := range importsOfKind(df, datafile.ResourceImport) {
		res := r.resources.GetResource(imp.Directory, ctx.Vars.ReplaceString(imp.Name))
		if res != nil && ctx.Visit(res.Source()) {
			collect(res, ctx)
		}
	}
}

func (r *DatafileRetriever) resourcesRecursive(df datafile.DataFile, ctx *RetrieverContext, found map[string]*datafile.ResourceFile) {
	r.collectEachResImport(df, ctx, func(res *datafile.ResourceFile, ctx *RetrieverContext) {
		found[res.Source()] = res
		r.resourcesRecursive(res, ctx, found)
	})
	// Children get a fresh context each: their graphs are independent
	// passes with their own cycle guards.
	for _, child := range df.Children() {
		r.resourcesRecursive(child, NewRetrieverContext(r.logger), found)
	}
}

func (r *DatafileRetriever) userKeywordsRecursive(df datafile.DataFile, ctx *RetrieverContext, seen map[*datafile.Keyword]bool, out *[]*datafile.Keyword) {
	for _, kw := range df.Keywords() {
		if !seen[kw] {
			seen[kw] = true
			*out = append(*out, kw)
		}
	}
	r.collectEachResImport(df, ctx, func(res *datafile.ResourceFile, ctx *RetrieverContext) {
		r.userKeywordsRecursive(res, ctx, seen, out)
	})
}

func importsOfKind(df datafile.DataFile, kind datafile.ImportKind) []*datafile.Import {
	var imports []*datafile.Import
	for _, imp := range df.Imports() {
		if imp.Kind == kind {
			imports = append(imports, imp)
		}
	}
	return imports
}

// dedupKeywords suppresses later duplicates by normalized name while
// preserving first-seen order.
func dedupKeywords(kws []KeywordInfo) []KeywordInfo {
	return dedupKeywordsBy(kws, func(kw KeywordInfo) string {
		return collections.Normalize(kw.Name())
	})
}

func dedupKeywordsBy(kws []KeywordInfo, key func(KeywordInfo) string) []KeywordInfo {
	seen := make(map[string]bool, len(kws))
	result := make([]KeywordInfo, 0, len(kws))
	for _, kw := range kws {
		k := key(kw)
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, kw)
	}
	return result
}
