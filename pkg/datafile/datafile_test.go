package datafile_test

import (
	"path/filepath"
	"testing"

	"github.com/geyuegui/RIDE/pkg/datafile"
)

func TestFileDataAccessors(t *testing.T) {
	res := &datafile.ResourceFile{
		FileData: datafile.FileData{Path: filepath.Join("/work", "common", "Login Keywords.robot")},
	}
	if got, want := res.Name(), "Login Keywords"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if got, want := res.Directory(), filepath.Join("/work", "common"); got != want {
		t.Errorf("Directory() = %q, want %q", got, want)
	}
	if res.Children() != nil {
		t.Error("resource files have no children")
	}
	if res.VariableTable() == nil {
		t.Error("VariableTable() must not be nil for files without variables")
	}
}

func TestImportKindString(t *testing.T) {
	for kind, want := range map[datafile.ImportKind]string{
		datafile.LibraryImport:   "Library",
		datafile.ResourceImport:  "Resource",
		datafile.VariablesImport: "Variables",
	} {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
