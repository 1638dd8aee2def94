package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"builtins/internal/domain"
)

// FunctionScanner locates top-level function and constructor declarations
// and their bodies by brace-depth counting over comment-normalized text.
type FunctionScanner struct {
	normalizer *CommentNormalizer
	head       *regexp.Regexp
}

// NewFunctionScanner creates a new function scanner.
func NewFunctionScanner() *FunctionScanner {
	return &FunctionScanner{
		normalizer: NewCommentNormalizer(),
		head:       regexp.MustCompile(`(?s)\b(?:function|constructor)\s+\w+\s*\(.*?\)`),
	}
}

// Scan returns one span per top-level declaration in first-occurrence order,
// along with the normalized text the spans index into.
func (s *FunctionScanner) Scan(text string) ([]domain.Span, string, error) {
	normalized := s.normalizer.Normalize(text)

	var spans []domain.Span
	end := 0
	for _, loc := range s.head.FindAllStringIndex(normalized, -1) {
		start := loc[0]
		// Heads inside an accepted body, e.g. nested functions.
		if start < end {
			continue
		}

		open := strings.IndexByte(normalized[loc[1]:], '{')
		if open < 0 {
			return nil, "", &domain.ParseError{
				Kind:   domain.ParseErrorBraces,
				Offset: start,
				Msg:    fmt.Sprintf("no body found for %s", abbreviate(normalized[start:loc[1]])),
			}
		}

		closeAt, err := matchBrace(normalized, loc[1]+open)
		if err != nil {
			return nil, "", err
		}
		end = closeAt
		spans = append(spans, domain.Span{Start: start, End: end})
	}

	return spans, normalized, nil
}

// ScanFragments returns the trimmed text of every declaration in text.
func (s *FunctionScanner) ScanFragments(text string) ([]string, error) {
	spans, normalized, err := s.Scan(text)
	if err != nil {
		return nil, err
	}

	fragments := make([]string, 0, len(spans))
	for _, span := range spans {
		fragments = append(fragments, strings.TrimSpace(normalized[span.Start:span.End]))
	}
	return fragments, nil
}

// matchBrace returns the offset just past the '}' closing the '{' at open.
// Running out of input with unclosed braces is a parse error.
func matchBrace(text string, open int) (int, error) {
	depth := 1
	for i := open + 1; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}
	return 0, &domain.ParseError{
		Kind:   domain.ParseErrorBraces,
		Offset: open,
		Msg:    fmt.Sprintf("unbalanced braces: %d left open at end of input", depth),
	}
}
