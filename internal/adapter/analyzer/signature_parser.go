package analyzer

import (
	"regexp"
	"strings"

	"builtins/internal/domain"
)

// SignatureParser turns one declaration fragment into a BuiltinFunction.
type SignatureParser struct {
	normalizer  *CommentNormalizer
	name        *regexp.Regexp
	parameters  *regexp.Regexp
	constructor string
}

// NewSignatureParser creates a new signature parser.
func NewSignatureParser() *SignatureParser {
	return &SignatureParser{
		normalizer: NewCommentNormalizer(),
		name:       regexp.MustCompile(`(?s)(?:function|constructor)\s+(\w+)\s*\(`),
		// Only plain identifiers are accepted; defaults, rest and
		// destructuring parameters fall outside the builtins dialect.
		parameters:  regexp.MustCompile(`(?ms)^(?:function|constructor)\s+(?:\w+)\s*\(((?:\s*\w+)?\s*(?:\s*,\s*\w+)*)?\s*\)`),
		constructor: "constructor",
	}
}

// Parse extracts the name, constructor flag and parameter list of fragment.
// The fragment is expected to start with its declaration head.
func (p *SignatureParser) Parse(fragment string) (domain.BuiltinFunction, error) {
	source := p.normalizer.StripBlockComments(fragment)

	nameMatch := p.name.FindStringSubmatch(source)
	if nameMatch == nil {
		return domain.BuiltinFunction{}, &domain.ParseError{
			Kind:   domain.ParseErrorSignature,
			Offset: -1,
			Msg:    "no function or constructor name in " + abbreviate(source),
		}
	}

	paramMatch := p.parameters.FindStringSubmatch(source)
	if paramMatch == nil {
		return domain.BuiltinFunction{}, &domain.ParseError{
			Kind:   domain.ParseErrorSignature,
			Offset: -1,
			Msg:    "malformed parameter list for " + nameMatch[1],
		}
	}

	return domain.BuiltinFunction{
		Name:          nameMatch[1],
		Source:        source,
		IsConstructor: strings.HasPrefix(source, p.constructor),
		Parameters:    splitParameters(paramMatch[1]),
	}, nil
}

// splitParameters splits a comma-separated identifier list.
// A blank list yields an empty slice, never [""].
func splitParameters(list string) []string {
	params := []string{}
	if strings.TrimSpace(list) == "" {
		return params
	}
	for _, p := range strings.Split(list, ",") {
		params = append(params, strings.TrimSpace(p))
	}
	return params
}

// abbreviate keeps error messages readable for long fragments.
func abbreviate(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 60 {
		s = s[:60] + "..."
	}
	return "\"" + s + "\""
}
