package domain

import (
	"strings"
)

// Span delimits one declaration, including its body, as byte offsets into
// the comment-normalized text of a file.
type Span struct {
	Start int
	End   int
}

// BuiltinFunction is one function or constructor declared in a builtins file.
type BuiltinFunction struct {
	Name          string   `json:"name"`
	Source        string   `json:"source"`
	IsConstructor bool     `json:"is_constructor"`
	Parameters    []string `json:"parameters"`
	ObjectName    string   `json:"object"` // set by the owning object
}

// String renders the function's interface, e.g. "every(callback, thisArg)".
func (f BuiltinFunction) String() string {
	s := f.Name + "(" + strings.Join(f.Parameters, ", ") + ")"
	if f.IsConstructor {
		s += " [Constructor]"
	}
	return s
}

// Less reports whether f sorts before g.
// Order: name, owning object, non-constructors first, parameters, source.
func (f BuiltinFunction) Less(g BuiltinFunction) bool {
	if f.Name != g.Name {
		return f.Name < g.Name
	}
	if f.ObjectName != g.ObjectName {
		return f.ObjectName < g.ObjectName
	}
	if f.IsConstructor != g.IsConstructor {
		return !f.IsConstructor
	}
	fp, gp := strings.Join(f.Parameters, ","), strings.Join(g.Parameters, ",")
	if fp != gp {
		return fp < gp
	}
	return f.Source < g.Source
}

// BuiltinObject groups the functions parsed from one builtins file.
type BuiltinObject struct {
	Name      string            `json:"name"`
	Functions []BuiltinFunction `json:"functions"`
}

// NewBuiltinObject creates an object and points every function back at it.
func NewBuiltinObject(name string, functions []BuiltinFunction) BuiltinObject {
	owned := make([]BuiltinFunction, len(functions))
	for i, fn := range functions {
		fn.ObjectName = name
		owned[i] = fn
	}
	return BuiltinObject{Name: name, Functions: owned}
}

// CopyrightEntry is the merged view of every copyright line for one owner.
type CopyrightEntry struct {
	Owner string
	Years []string
}

func (e CopyrightEntry) String() string {
	return strings.TrimSpace(strings.Join(e.Years, ", ") + " " + e.Owner)
}

// Manifest is a read-only snapshot of a collection, handed to emitters.
type Manifest struct {
	Framework   string            `json:"framework"`
	Namespace   string            `json:"namespace"`
	MacroPrefix string            `json:"macro_prefix"`
	Copyrights  []string          `json:"copyrights"`
	Objects     []BuiltinObject   `json:"objects"`
	Functions   []BuiltinFunction `json:"-"`
}
