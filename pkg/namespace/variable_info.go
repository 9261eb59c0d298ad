package namespace

import "fmt"

// VariableInfo is a resolvable variable: its decorated name, current
// value and provenance (the file, argument or global set that bound it).
type VariableInfo struct {
	name   string
	value  any
	source string
}

// NewVariableInfo constructs a variable suggestion.
func NewVariableInfo(name string, value any, source string) *VariableInfo {
	return &VariableInfo{name: name, value: value, source: source}
}

func (v *VariableInfo) Name() string {
	return v.name
}

// Value returns the variable's current value.
func (v *VariableInfo) Value() any {
	return v.value
}

// Source returns the provenance of the binding.
func (v *VariableInfo) Source() string {
	return v.source
}

func (v *VariableInfo) Details() string {
	return fmt.Sprintf("Source: %s\nValue: %v", v.source, v.value)
}

func (v *VariableInfo) String() string {
	return fmt.Sprintf("(%s=%v <%s>)", v.name, v.value, v.source)
}
