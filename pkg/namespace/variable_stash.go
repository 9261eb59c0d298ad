package namespace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/geyuegui/RIDE/pkg/collections"
	"github.com/geyuegui/RIDE/pkg/datafile"
	"github.com/geyuegui/RIDE/pkg/variables"
)

// GlobalVariableSource is the provenance recorded for built-in globals.
const GlobalVariableSource = "Global"

// ArgumentVariableSource is the provenance recorded for caller-supplied
// local argument variables.
const ArgumentVariableSource = "Argument"

// globalVariables is the fixed built-in variable set copied into every
// fresh stash.  Run-context variables such as ${TEST_NAME} have no value
// outside execution and are bound to empty strings so references to them
// resolve instead of dangling.
var globalVariables = map[string]any{
	"${TEMPDIR}":           filepath.Clean(os.TempDir()),
	"${EXECDIR}":           execDir(),
	"${/}":                 string(os.PathSeparator),
	"${:}":                 string(os.PathListSeparator),
	"${SPACE}":             " ",
	"${EMPTY}":             "",
	"${True}":              true,
	"${False}":             false,
	"${None}":              nil,
	"${null}":              nil,
	"${OUTPUT_DIR}":        "",
	"${OUTPUT_FILE}":       "",
	"${SUMMARY_FILE}":      "",
	"${REPORT_FILE}":       "",
	"${LOG_FILE}":          "",
	"${DEBUG_FILE}":        "",
	"${PREV_TEST_NAME}":    "",
	"${PREV_TEST_STATUS}":  "",
	"${PREV_TEST_MESSAGE}": "",
	"${CURDIR}":            ".",
	"${TEST_NAME}":         "",
	"@{TEST_TAGS}":         "",
	"${TEST_STATUS}":       "",
	"${TEST_MESSAGE}":      "",
	"${SUITE_NAME}":        "",
	"${SUITE_SOURCE}":      "",
	"${SUITE_STATUS}":      "",
	"${SUITE_MESSAGE}":     "",
}

func execDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

// VarFileLoader loads a variable file into a name/value mapping.  The
// loader is owned by the host; a load failure is reported as an error
// and never aborts a resolution pass.
type VarFileLoader interface {
	Load(path string, args []string) (map[string]any, error)
}

// VariableStash is the layered variable environment of one resolution
// pass: built-in globals, then variable-table entries first-definition-
// wins, then variable files, then caller-supplied argument variables.
// It accumulates monotonically during a pass and is never shared between
// passes.
type VariableStash struct {
	values  map[string]any    // normalized name -> value
	names   map[string]string // normalized name -> decorated spelling
	sources map[string]string // normalized name -> provenance
	order   []string          // normalized names in binding order
	logger  zerolog.Logger
}

// NewVariableStash constructs a stash pre-populated with the built-in
// global variables.
func NewVariableStash(logger zerolog.Logger) *VariableStash {
	s := &VariableStash{
		values:  make(map[string]any),
		names:   make(map[string]string),
		sources: make(map[string]string),
		logger:  logger,
	}
	globals := make([]string, 0, len(globalVariables))
	for name := range globalVariables {
		globals = append(globals, name)
	}
	sort.Strings(globals)
	for _, name := range globals {
		s.Set(name, globalVariables[name], GlobalVariableSource)
	}
	return s
}

// Set binds name to value with the given provenance, overwriting any
// existing binding.  First-definition-wins policies are enforced by the
// callers that want them, via Has.
func (s *VariableStash) Set(name string, value any, source string) {
	key := collections.Normalize(name)
	if _, ok := s.values[key]; !ok {
		s.order = append(s.order, key)
		s.names[key] = name
	}
	s.values[key] = value
	s.sources[key] = source
}

// Has reports whether name is bound.
func (s *VariableStash) Has(name string) bool {
	_, ok := s.values[collections.Normalize(name)]
	return ok
}

// ReplaceVariables resolves variable references in the given string.
// When the whole string is exactly one reference the bound value is
// returned with its type preserved; otherwise references are substituted
// textually and unresolved ones are left intact.  It never fails.
func (s *VariableStash) ReplaceVariables(text string) any {
	if variables.IsVariable(text) {
		if value, ok := s.values[collections.Normalize(text)]; ok {
			return value
		}
	}
	return s.ReplaceString(text)
}

// ReplaceString resolves variable references in the given string to
// their string forms, best effort.
func (s *VariableStash) ReplaceString(text string) string {
	return variables.ReplaceReferences(text, func(ref string) (string, bool) {
		value, ok := s.values[collections.Normalize(ref)]
		if !ok {
			return "", false
		}
		return stringValue(value), true
	})
}

// SetFromVariableTable binds each declared variable that is not already
// bound.  A malformed declaration whose name is still syntactically a
// variable reference is bound to an empty value so work-in-progress
// files keep resolving.
func (s *VariableStash) SetFromVariableTable(table *datafile.VariableTable) {
	if table == nil {
		return
	}
	for _, entry := range table.Entries {
		value, err := tableValue(entry)
		if err != nil {
			if variables.IsVariable(entry.Name) && !s.Has(entry.Name) {
				s.Set(entry.Name, "", table.Source)
			}
			continue
		}
		if !s.Has(entry.Name) {
			s.Set(entry.Name, value, table.Source)
		}
	}
}

// SetFromFile loads a variable file through the given loader and binds
// every resulting variable with the file path as provenance.  The
// returned error is informational; callers treat a failed load as a
// no-op.
func (s *VariableStash) SetFromFile(path string, args []string, loader VarFileLoader) error {
	if loader == nil {
		return fmt.Errorf("no variable file loader configured")
	}
	vars, err := loader.Load(path, args)
	if err != nil {
		return fmt.Errorf("loading variable file %s: %w", path, err)
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.Set(name, vars[name], path)
	}
	return nil
}

// Variables returns every binding in binding order.
func (s *VariableStash) Variables() []*VariableInfo {
	infos := make([]*VariableInfo, 0, len(s.order))
	for _, key := range s.order {
		infos = append(infos, NewVariableInfo(s.names[key], s.values[key], s.sources[key]))
	}
	return infos
}

// tableValue converts a variable table entry's value cells to the bound
// value: list variables keep all cells, scalars take their single cell.
// A scalar with multiple cells is malformed.
func tableValue(entry *datafile.VariableDefinition) (any, error) {
	if !variables.IsVariable(entry.Name) {
		return nil, fmt.Errorf("invalid variable name %q", entry.Name)
	}
	if variables.IsListVariable(entry.Name) {
		return append([]string(nil), entry.Values...), nil
	}
	switch len(entry.Values) {
	case 0:
		return "", nil
	case 1:
		return entry.Values[0], nil
	default:
		return nil, fmt.Errorf("scalar variable %q has %d values", entry.Name, len(entry.Values))
	}
}

func stringValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
