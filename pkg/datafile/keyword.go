package datafile

// Keyword is a user keyword definition in a data file.
type Keyword struct {
	Name   string
	Args   []string
	Doc    string
	Source string
}
