package ingestion

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	innerSpace  = regexp.MustCompile(`[ \t\p{Zs}]+`)
	blankLines3 = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text while keeping its line structure.
// It applies NFKC (so ligatures and full-width forms become plain letters),
// drops control characters, normalizes line endings, collapses runs of
// spaces, and keeps at most one blank line between paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = norm.NFKC.String(content)
	content = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == '\ufeff' {
			return -1
		}
		return r
	}, content)

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimSpace(innerSpace.ReplaceAllString(line, " ")))
	}

	result := blankLines3.ReplaceAllString(strings.Join(cleaned, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// ParsePriorityKeywords splits a comma-separated keyword string, trimming
// each entry and dropping empties. Order and duplicates are kept.
func ParsePriorityKeywords(raw string) []string {
	keywords := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
