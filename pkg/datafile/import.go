package datafile

// ImportKind classifies an import declaration.
type ImportKind int

const (
	// LibraryImport imports a keyword library by name.
	LibraryImport ImportKind = iota
	// ResourceImport imports another data file for its keywords and
	// variables.
	ResourceImport
	// VariablesImport imports a variable file.
	VariablesImport
)

func (k ImportKind) String() string {
	switch k {
	case LibraryImport:
		return "Library"
	case ResourceImport:
		return "Resource"
	case VariablesImport:
		return "Variables"
	default:
		return "Unknown"
	}
}

// Import is one import declaration.  Name is a template that may contain
// variable references; it is resolved against the traversal's variable
// environment before use.
type Import struct {
	Kind ImportKind
	Name string
	Args []string
	// Directory is the directory of the importing file, used to resolve
	// relative resource and variable-file paths.
	Directory string
}
