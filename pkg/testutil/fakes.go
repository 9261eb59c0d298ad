package testutil

import (
	"fmt"
	"path/filepath"

	"github.com/geyuegui/RIDE/pkg/datafile"
	"github.com/geyuegui/RIDE/pkg/libraries"
)

// FakeParser implements datafile.Parser from a fixed path-to-resource
// map, counting parse attempts per path.
type FakeParser struct {
	Resources map[string]*datafile.ResourceFile
	Calls     map[string]int
}

func NewFakeParser(resources ...*datafile.ResourceFile) *FakeParser {
	p := &FakeParser{
		Resources: make(map[string]*datafile.ResourceFile),
		Calls:     make(map[string]int),
	}
	for _, res := range resources {
		p.Resources[res.Source()] = res
	}
	return p
}

func (p *FakeParser) Parse(path string) (*datafile.ResourceFile, error) {
	key := filepath.Clean(path)
	p.Calls[key]++
	if res, ok := p.Resources[key]; ok {
		return res, nil
	}
	return nil, fmt.Errorf("no such resource: %s", path)
}

// FakeProvider implements libraries.KeywordProvider from fixed keyword
// sets, counting introspections per library.
type FakeProvider struct {
	Libraries map[string][]*libraries.Keyword
	Defaults  []*libraries.Keyword
	Calls     map[string]int
}

func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		Libraries: make(map[string][]*libraries.Keyword),
		Calls:     make(map[string]int),
	}
}

// AddLibrary registers a library exposing keywords with the given names.
func (p *FakeProvider) AddLibrary(name string, keywords ...string) {
	for _, kw := range keywords {
		p.Libraries[name] = append(p.Libraries[name], &libraries.Keyword{
			Name:    kw,
			Library: name,
		})
	}
}

// AddDefault registers an always-available keyword under the given
// library name.
func (p *FakeProvider) AddDefault(library string, keywords ...string) {
	for _, kw := range keywords {
		p.Defaults = append(p.Defaults, &libraries.Keyword{
			Name:    kw,
			Library: library,
		})
	}
}

func (p *FakeProvider) LibraryKeywords(name string, args []string) ([]*libraries.Keyword, error) {
	p.Calls[name]++
	if kws, ok := p.Libraries[name]; ok {
		return kws, nil
	}
	return nil, fmt.Errorf("no such library: %s", name)
}

func (p *FakeProvider) DefaultKeywords() []*libraries.Keyword {
	return p.Defaults
}

// FakeController implements namespace.Controller.
type FakeController struct {
	File   datafile.DataFile
	Locals map[string]any
}

func (c *FakeController) DataFile() datafile.DataFile {
	return c.File
}

func (c *FakeController) LocalVariables() map[string]any {
	if c.Locals == nil {
		return map[string]any{}
	}
	return c.Locals
}

// FakeVarFileLoader implements namespace.VarFileLoader from a fixed
// path-to-variables map.
type FakeVarFileLoader struct {
	Files map[string]map[string]any
	Calls map[string]int
}

func NewFakeVarFileLoader() *FakeVarFileLoader {
	return &FakeVarFileLoader{
		Files: make(map[string]map[string]any),
		Calls: make(map[string]int),
	}
}

func (l *FakeVarFileLoader) Load(path string, args []string) (map[string]any, error) {
	l.Calls[path]++
	if vars, ok := l.Files[path]; ok {
		return vars, nil
	}
	return nil, fmt.Errorf("invalid variable file: %s", path)
}
