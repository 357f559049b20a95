package funcdoc

import "strings"

// Tags recognized at the start of a documentation line.
const (
	TagParam  = "@param"
	TagReturn = "@return"
)

// FunctionDoc is the documentation of one function.
type FunctionDoc struct {
	Return      *Return  `json:"return,omitempty"      yaml:"return,omitempty"`
	Name        string   `json:"name"                  yaml:"name"`
	Description []string `json:"description,omitempty" yaml:"description,omitempty"`
	Params      []Param  `json:"params,omitempty"      yaml:"params,omitempty"`
}

// Param documents one function parameter.
type Param struct {
	Default     *string `json:"default,omitempty" yaml:"default,omitempty"` // nil when no default is declared
	Name        string  `json:"name"              yaml:"name"`
	Description string  `json:"description"       yaml:"description"`
	Type        Type    `json:"type"              yaml:"type"`
}

// Return documents a function's return value.
type Return struct {
	Description string `json:"description" yaml:"description"`
	Type        Type   `json:"type"        yaml:"type"`
}

// Type is a declared type: one bare type name, or two or more alternatives
// of a union.
type Type []string

// IsUnion reports whether t has more than one alternative.
func (t Type) IsUnion() bool {
	return len(t) > 1
}

// String returns the alternatives of t joined with " | ".
func (t Type) String() string {
	return strings.Join(t, " | ")
}
