package namespace

import (
	"strings"

	"github.com/dghubble/trie"

	"github.com/geyuegui/RIDE/pkg/collections"
)

// SuggestionTrie indexes suggestions by normalized name for exact and
// prefix queries.  Multiple suggestions may share one normalized name;
// insertion order is preserved within a key.
type SuggestionTrie struct {
	trie *trie.PathTrie
	size int
}

// NewSuggestionTrie constructs an empty index.
func NewSuggestionTrie() *SuggestionTrie {
	return &SuggestionTrie{
		trie: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: runeSegmenter,
		}),
	}
}

// Put adds the suggestion under its normalized name.
func (t *SuggestionTrie) Put(s Suggestion) {
	key := collections.Normalize(s.Name())
	if key == "" {
		return
	}
	existing, _ := t.trie.Get(key).([]Suggestion)
	t.trie.Put(key, append(existing, s))
	t.size++
}

// Get returns the suggestions whose normalized name equals the
// normalized query.
func (t *SuggestionTrie) Get(name string) []Suggestion {
	sugs, _ := t.trie.Get(collections.Normalize(name)).([]Suggestion)
	return sugs
}

// HasPrefix returns every suggestion whose normalized name starts with
// the normalized prefix.  An empty prefix returns everything.
func (t *SuggestionTrie) HasPrefix(prefix string) []Suggestion {
	norm := collections.Normalize(prefix)
	var result []Suggestion
	t.trie.Walk(func(key string, value interface{}) error {
		if strings.HasPrefix(key, norm) {
			result = append(result, value.([]Suggestion)...)
		}
		return nil
	})
	return result
}

// Len returns the number of suggestions in the index.
func (t *SuggestionTrie) Len() int {
	return t.size
}

// runeSegmenter segments keys one rune at a time so shared name prefixes
// share trie paths.
func runeSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := start + 1
	for end < len(path) && path[end]&0xC0 == 0x80 { // skip utf8 continuation bytes
		end++
	}
	if end >= len(path) {
		return path[start:], -1
	}
	return path[start:end], end
}
