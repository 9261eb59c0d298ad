// Package searchpath resolves bare resource and variable file names
// against a configured list of search directories, the way an import
// that is not relative to the importing file is looked up.
package searchpath

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
)

// Resolver locates files by name under an ordered list of directories.
type Resolver struct {
	dirs   []string
	logger zerolog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver) *Resolver

func WithLogger(logger zerolog.Logger) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.logger = logger
		return r
	}
}

// NewResolver constructs a resolver over the given directories, searched
// in order.
func NewResolver(dirs []string, options ...ResolverOption) *Resolver {
	r := &Resolver{
		dirs:   dirs,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		r = opt(r)
	}
	return r
}

// FindFromSearchPath returns the path of the first file matching name
// under the search directories.  A direct child match wins over a nested
// one; directories are tried in configuration order.  Name may be a glob
// pattern.
func (r *Resolver) FindFromSearchPath(name string) (string, bool) {
	if name == "" || filepath.IsAbs(name) {
		return "", false
	}
	for _, dir := range r.dirs {
		direct := filepath.Join(dir, name)
		if info, err := os.Stat(direct); err == nil && !info.IsDir() {
			return direct, true
		}
		matches, err := doublestar.Glob(os.DirFS(dir), "**/"+filepath.ToSlash(name))
		if err != nil {
			// Glob only fails on an invalid pattern.
			r.logger.Debug().Err(err).Str("name", name).Msg("invalid search pattern")
			return "", false
		}
		for _, match := range matches {
			full := filepath.Join(dir, filepath.FromSlash(match))
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				return full, true
			}
		}
	}
	return "", false
}

// Dirs returns the configured search directories.
func (r *Resolver) Dirs() []string {
	return r.dirs
}
