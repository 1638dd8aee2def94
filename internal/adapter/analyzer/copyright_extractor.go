package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"builtins/internal/domain"
)

// licenseBodyMarker starts the boilerplate that follows the copyright lines.
const licenseBodyMarker = "Redistribution"

// CopyrightExtractor pulls copyright lines out of a file's license header.
type CopyrightExtractor struct {
	normalizer *CommentNormalizer
	strips     []string
}

func NewCopyrightExtractor() *CopyrightExtractor {
	return &CopyrightExtractor{
		normalizer: NewCommentNormalizer(),
		// Applied in sequence; each strip sees the result of the previous one.
		strips: []string{"/*", "*/", "*", "Copyright", "copyright", "(C)", "(c)"},
	}
}

// Extract returns the copyright lines of the first block comment in text,
// e.g. "2014, 2015 Apple Inc. All rights reserved.".
func (e *CopyrightExtractor) Extract(text string) ([]string, error) {
	header, ok := e.normalizer.FirstBlockComment(text)
	if !ok {
		return nil, &domain.ParseError{
			Kind:   domain.ParseErrorCopyright,
			Offset: -1,
			Msg:    "no license block comment found",
		}
	}
	if idx := strings.Index(header, licenseBodyMarker); idx >= 0 {
		header = header[:idx]
	}

	var lines []string
	for _, line := range strings.Split(header, "\n") {
		line = strings.TrimSpace(e.strip(line))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (e *CopyrightExtractor) strip(line string) string {
	for _, s := range e.strips {
		line = strings.ReplaceAll(line, s, "")
	}
	return line
}

var (
	copyrightYear  = regexp.MustCompile(`(\d{4})[, ]{0,2}`)
	copyrightOwner = regexp.MustCompile(`[^\d, ]`)
)

// MergeCopyrights groups raw copyright lines by owner and unions their years.
// Entries come back sorted by owner; years within an entry are sorted.
func MergeCopyrights(lines []string) []domain.CopyrightEntry {
	ownerYears := make(map[string]map[string]struct{})

	for _, line := range lines {
		owner := ""
		if loc := copyrightOwner.FindStringIndex(line); loc != nil {
			owner = line[loc[0]:]
		}

		years, ok := ownerYears[owner]
		if !ok {
			years = make(map[string]struct{})
			ownerYears[owner] = years
		}
		for _, m := range copyrightYear.FindAllStringSubmatch(line, -1) {
			years[m[1]] = struct{}{}
		}
	}

	entries := make([]domain.CopyrightEntry, 0, len(ownerYears))
	for owner, years := range ownerYears {
		sorted := make([]string, 0, len(years))
		for y := range years {
			sorted = append(sorted, y)
		}
		sort.Strings(sorted)
		entries = append(entries, domain.CopyrightEntry{Owner: owner, Years: sorted})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Owner < entries[j].Owner
	})
	return entries
}
