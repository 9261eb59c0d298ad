package namespace

import (
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/geyuegui/RIDE/pkg/datafile"
)

// PathFinder resolves a bare file name through a secondary search path.
type PathFinder interface {
	FindFromSearchPath(name string) (string, bool)
}

// ResourceCache memoizes parsed resource files by normalized path.  A
// failed parse is memoized as a negative entry so a broken import is
// attempted once per process, not once per query.  Safe for concurrent
// use; at most one populate runs per key.
type ResourceCache struct {
	mu         sync.Mutex
	parser     datafile.Parser
	finder     PathFinder
	resources  map[string]*datafile.ResourceFile // nil value = negative entry
	searchPath map[string]string                 // name -> resolved path, "" = not found
	logger     zerolog.Logger
}

// NewResourceCache constructs a cache over the given parser.  The finder
// may be nil, disabling search-path fallback.
func NewResourceCache(parser datafile.Parser, finder PathFinder, logger zerolog.Logger) *ResourceCache {
	return &ResourceCache{
		parser:     parser,
		finder:     finder,
		resources:  make(map[string]*datafile.ResourceFile),
		searchPath: make(map[string]string),
		logger:     logger,
	}
}

// GetResource returns the parsed resource for name relative to
// directory, or nil if it cannot be found or parsed.  When the direct
// path is unresolvable the name is retried through the search path.
func (c *ResourceCache) GetResource(directory, name string) *datafile.ResourceFile {
	c.mu.Lock()
	defer c.mu.Unlock()

	path := name
	if directory != "" {
		path = filepath.Join(directory, name)
	}
	if res := c.get(path); res != nil {
		return res
	}
	if fallback := c.fromSearchPath(name); fallback != "" {
		return c.get(fallback)
	}
	return nil
}

func (c *ResourceCache) fromSearchPath(name string) string {
	if path, ok := c.searchPath[name]; ok {
		return path
	}
	var path string
	if c.finder != nil {
		if found, ok := c.finder.FindFromSearchPath(name); ok {
			path = found
		}
	}
	c.searchPath[name] = path
	return path
}

func (c *ResourceCache) get(path string) *datafile.ResourceFile {
	key := normalizePath(path)
	if res, ok := c.resources[key]; ok {
		return res
	}
	res, err := c.parser.Parse(path)
	if err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("resource unresolvable")
		res = nil
	}
	c.resources[key] = res
	return res
}

// normalizePath folds equivalent spellings of a path into one cache key.
func normalizePath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
