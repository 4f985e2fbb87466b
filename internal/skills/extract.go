// Package skills finds known skill terms in resume text.
package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-checker/internal/parsing"
)

// Extractor matches a fixed vocabulary of skill terms against text.
// It is safe to reuse across calls.
type Extractor struct {
	terms []skillTerm
}

type skillTerm struct {
	name    string
	pattern *regexp.Regexp
}

// NewExtractor compiles one whole-word pattern per vocabulary term.
// Terms are lower-cased for reporting and normalized for matching, so
// "scikit-learn" is searched as "scikit learn" but reported as "scikit-learn".
// Blank and duplicate terms are skipped.
func NewExtractor(vocabulary []string) *Extractor {
	terms := make([]skillTerm, 0, len(vocabulary))
	seen := make(map[string]bool, len(vocabulary))

	for _, raw := range vocabulary {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		needle := parsing.Normalize(name)
		if needle == "" {
			continue
		}

		// Normalized text separates tokens with single spaces only, so a
		// space or an end of text is the word boundary on both sides.
		pattern := regexp.MustCompile(`(?:^| )` + regexp.QuoteMeta(needle) + `(?: |$)`)
		terms = append(terms, skillTerm{name: name, pattern: pattern})
	}

	return &Extractor{terms: terms}
}

// Extract normalizes raw text and returns the vocabulary terms it contains,
// sorted ascending. The result is never nil.
func (e *Extractor) Extract(raw string) []string {
	found := make([]string, 0)
	text := parsing.Normalize(raw)
	if text == "" {
		return found
	}

	for _, term := range e.terms {
		if term.pattern.MatchString(text) {
			found = append(found, term.name)
		}
	}

	sort.Strings(found)
	return found
}

// Size returns the number of distinct terms the extractor matches.
func (e *Extractor) Size() int {
	return len(e.terms)
}

// Extract is a convenience wrapper that builds a one-off Extractor.
func Extract(raw string, vocabulary []string) []string {
	return NewExtractor(vocabulary).Extract(raw)
}
