package datafile

// Parser turns a file on disk into a parsed resource file.  Parsing is
// owned by the host application; the namespace engine only consumes the
// result and treats any parse error as an unresolvable file.
type Parser interface {
	Parse(path string) (*ResourceFile, error)
}
