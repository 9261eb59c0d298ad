package datafile

// VariableTable holds the variable definitions declared in one file.
type VariableTable struct {
	Source  string
	Entries []*VariableDefinition
}

// VariableDefinition is one row of a variable table: a decorated name
// such as "${HOST}" or "@{ITEMS}" and its value cells.
type VariableDefinition struct {
	Name   string
	Values []string
}
