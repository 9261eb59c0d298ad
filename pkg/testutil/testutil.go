// Package testutil provides fixture builders and fakes for exercising
// the namespace engine against in-memory datafile graphs.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/geyuegui/RIDE/pkg/datafile"
)

// NewSuite constructs an empty test case file at path.
func NewSuite(path string, children ...datafile.DataFile) *datafile.TestCaseFile {
	return &datafile.TestCaseFile{
		FileData:   datafile.FileData{Path: path},
		ChildFiles: children,
	}
}

// NewResource constructs an empty resource file at path.
func NewResource(path string) *datafile.ResourceFile {
	return &datafile.ResourceFile{
		FileData: datafile.FileData{Path: path},
	}
}

// AddKeyword appends a user keyword definition to the given file.
func AddKeyword(d *datafile.FileData, name string, args ...string) *datafile.Keyword {
	kw := &datafile.Keyword{Name: name, Args: args, Source: d.Path}
	d.KeywordList = append(d.KeywordList, kw)
	return kw
}

// AddVariable appends a variable table entry to the given file.
func AddVariable(d *datafile.FileData, name string, values ...string) {
	if d.VarTable == nil {
		d.VarTable = &datafile.VariableTable{Source: d.Path}
	}
	d.VarTable.Entries = append(d.VarTable.Entries, &datafile.VariableDefinition{
		Name:   name,
		Values: values,
	})
}

// AddImport appends an import declaration to the given file, with the
// import directory defaulted to the file's own directory.
func AddImport(d *datafile.FileData, kind datafile.ImportKind, name string, args ...string) {
	d.ImportList = append(d.ImportList, &datafile.Import{
		Kind:      kind,
		Name:      name,
		Args:      args,
		Directory: filepath.Dir(d.Path),
	})
}

// MustWriteFile writes content to dir/name, creating parents, and
// returns the full path.
func MustWriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// EqualError reports whether errors a and b are considered equal.
// They're equal if both are nil, or both are not nil and a.Error() == b.Error().
func EqualError(a, b error) bool {
	return a == nil && b == nil || a != nil && b != nil && a.Error() == b.Error()
}
