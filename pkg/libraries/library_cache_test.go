package libraries_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geyuegui/RIDE/pkg/libraries"
)

type countingProvider struct {
	keywords map[string][]*libraries.Keyword
	defaults []*libraries.Keyword
	calls    map[string]int
	defCalls int
}

func newCountingProvider() *countingProvider {
	return &countingProvider{
		keywords: make(map[string][]*libraries.Keyword),
		calls:    make(map[string]int),
	}
}

func (p *countingProvider) LibraryKeywords(name string, args []string) ([]*libraries.Keyword, error) {
	p.calls[name]++
	if kws, ok := p.keywords[name]; ok {
		return kws, nil
	}
	return nil, fmt.Errorf("no such library: %s", name)
}

func (p *countingProvider) DefaultKeywords() []*libraries.Keyword {
	p.defCalls++
	return p.defaults
}

func TestLibraryCacheMemoizes(t *testing.T) {
	provider := newCountingProvider()
	provider.keywords["OperatingSystem"] = []*libraries.Keyword{
		{Name: "Create File", Library: "OperatingSystem"},
		{Name: "Remove File", Library: "OperatingSystem"},
	}
	c := libraries.NewLibraryCache(provider)

	first := c.Keywords("OperatingSystem", nil)
	second := c.Keywords("OperatingSystem", nil)
	require.Len(t, first, 2)
	require.Equal(t, first, second)
	require.Equal(t, 1, provider.calls["OperatingSystem"], "introspection must run once")
}

func TestLibraryCacheDistinguishesArgs(t *testing.T) {
	provider := newCountingProvider()
	provider.keywords["Remote"] = []*libraries.Keyword{{Name: "Run", Library: "Remote"}}
	c := libraries.NewLibraryCache(provider)

	c.Keywords("Remote", []string{"http://a"})
	c.Keywords("Remote", []string{"http://b"})
	require.Equal(t, 2, provider.calls["Remote"], "distinct args are distinct cache keys")
}

func TestLibraryCacheMemoizesFailure(t *testing.T) {
	provider := newCountingProvider()
	c := libraries.NewLibraryCache(provider)

	require.Empty(t, c.Keywords("NoSuchLibrary", nil))
	require.Empty(t, c.Keywords("NoSuchLibrary", nil))
	require.Equal(t, 1, provider.calls["NoSuchLibrary"], "failed introspection must not be retried")
}

func TestLibraryCacheDefaultKeywordsOnce(t *testing.T) {
	provider := newCountingProvider()
	provider.defaults = []*libraries.Keyword{{Name: "Log", Library: "BuiltIn"}}
	c := libraries.NewLibraryCache(provider)

	require.Len(t, c.DefaultKeywords(), 1)
	c.DefaultKeywords()
	require.Equal(t, 1, provider.defCalls)
}
