package domain

import "fmt"

// UnknownFrameworkError is returned when a framework name is not registered.
type UnknownFrameworkError struct {
	Name string
}

func (e *UnknownFrameworkError) Error() string {
	return fmt.Sprintf("unknown framework: %s", e.Name)
}

// ParseErrorKind says which stage rejected the input.
type ParseErrorKind string

const (
	ParseErrorSignature ParseErrorKind = "signature"
	ParseErrorCopyright ParseErrorKind = "copyright"
	ParseErrorBraces    ParseErrorKind = "braces"
)

// ParseError reports a builtins file that does not follow the declaration grammar.
type ParseError struct {
	Kind   ParseErrorKind
	File   string
	Offset int // byte offset into the normalized text, -1 when unknown
	Msg    string
}

func (e *ParseError) Error() string {
	prefix := "parse error"
	if e.File != "" {
		prefix = e.File + ": " + prefix
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("%s (%s) at offset %d: %s", prefix, e.Kind, e.Offset, e.Msg)
	}
	return fmt.Sprintf("%s (%s): %s", prefix, e.Kind, e.Msg)
}
