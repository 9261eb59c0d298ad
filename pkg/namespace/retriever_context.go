package namespace

import (
	"path/filepath"

	"github.com/rs/zerolog"
)

// RetrieverContext is the state of one resolution pass: the variable
// environment being accumulated and the set of resources already walked.
// The visited set is what guarantees termination on cyclic resource
// imports.
type RetrieverContext struct {
	Vars    *VariableStash
	visited map[string]bool
}

// NewRetrieverContext constructs a context with a fresh variable stash
// and an empty visited set.
func NewRetrieverContext(logger zerolog.Logger) *RetrieverContext {
	return &RetrieverContext{
		Vars:    NewVariableStash(logger),
		visited: make(map[string]bool),
	}
}

// Visit marks the resource at path as walked and reports whether this is
// its first visit in the current pass.
func (c *RetrieverContext) Visit(path string) bool {
	key := filepath.Clean(path)
	if c.visited[key] {
		return false
	}
	c.visited[key] = true
	return true
}

// AllowGoingThroughResourcesAgain resets the visited set so the same
// graph can be walked a second time.  The variable environment is
// retained: the keywords pass reuses the variables the first pass
// resolved.
func (c *RetrieverContext) AllowGoingThroughResourcesAgain() {
	c.visited = make(map[string]bool)
}
