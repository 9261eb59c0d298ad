package libraries

import (
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

const defaultCacheSize = 256

// LibraryCache memoizes a KeywordProvider.  Introspecting a library can
// mean importing and inspecting host code, so each (name, args) pair is
// resolved at most once while cached.  Failed introspections are
// memoized as empty results so a broken library import is not retried on
// every query.
type LibraryCache struct {
	provider KeywordProvider
	cache    *lru.Cache[string, []*Keyword]
	logger   zerolog.Logger

	defaultsOnce sync.Once
	defaults     []*Keyword
}

// LibraryCacheOption configures a LibraryCache.
type LibraryCacheOption func(*LibraryCache) *LibraryCache

func WithLibraryCacheLogger(logger zerolog.Logger) LibraryCacheOption {
	return func(c *LibraryCache) *LibraryCache {
		c.logger = logger
		return c
	}
}

// NewLibraryCache constructs a cache over the given provider.
func NewLibraryCache(provider KeywordProvider, options ...LibraryCacheOption) *LibraryCache {
	cache, err := lru.New[string, []*Keyword](defaultCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	c := &LibraryCache{
		provider: provider,
		cache:    cache,
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		c = opt(c)
	}
	return c
}

// Keywords returns the keywords of the named library, consulting the
// provider on first use of each (name, args) combination.
func (c *LibraryCache) Keywords(name string, args []string) []*Keyword {
	key := cacheKey(name, args)
	if kws, ok := c.cache.Get(key); ok {
		return kws
	}
	kws, err := c.provider.LibraryKeywords(name, args)
	if err != nil {
		c.logger.Debug().Err(err).Str("library", name).Msg("library introspection failed")
		kws = nil
	}
	c.cache.Add(key, kws)
	return kws
}

// DefaultKeywords returns the always-available keyword set, fetched from
// the provider once.
func (c *LibraryCache) DefaultKeywords() []*Keyword {
	c.defaultsOnce.Do(func() {
		c.defaults = c.provider.DefaultKeywords()
	})
	return c.defaults
}

func cacheKey(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + "\x00" + strings.Join(args, "\x00")
}
