// Package datafile declares the parsed test-data model consumed by the
// namespace engine.  Files are produced by an external parsing layer
// behind the Parser interface; this package only describes their shape.
package datafile

import (
	"path/filepath"
	"strings"
)

// DataFile is a parsed suite or resource file.
type DataFile interface {
	// Name is the display name: the base filename without extension.
	Name() string
	// Source is the path the file was parsed from.
	Source() string
	// Directory is the directory containing the file.
	Directory() string
	// Imports returns the file's import declarations in declaration order.
	Imports() []*Import
	// VariableTable returns the file's variable table, possibly empty.
	VariableTable() *VariableTable
	// Keywords returns the user keywords defined in the file.
	Keywords() []*Keyword
	// Children returns nested suites, e.g. the suites under a directory
	// suite.  Resource files have no children.
	Children() []DataFile
}

// FileData is the backing data shared by suite and resource files.
type FileData struct {
	Path        string
	ImportList  []*Import
	VarTable    *VariableTable
	KeywordList []*Keyword
}

func (d *FileData) Name() string {
	base := filepath.Base(d.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (d *FileData) Source() string {
	return d.Path
}

func (d *FileData) Directory() string {
	return filepath.Dir(d.Path)
}

func (d *FileData) Imports() []*Import {
	return d.ImportList
}

func (d *FileData) VariableTable() *VariableTable {
	if d.VarTable == nil {
		return &VariableTable{Source: d.Path}
	}
	return d.VarTable
}

func (d *FileData) Keywords() []*Keyword {
	return d.KeywordList
}

// TestCaseFile is a suite file or directory suite.
type TestCaseFile struct {
	FileData
	ChildFiles []DataFile
}

func (f *TestCaseFile) Children() []DataFile {
	return f.ChildFiles
}

// ResourceFile is a reusable file imported by other files for its
// keywords and variables.
type ResourceFile struct {
	FileData
}

func (f *ResourceFile) Children() []DataFile {
	return nil
}
