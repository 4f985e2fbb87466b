// Package parsing provides text normalization and tokenization shared by the
// skill extractor, keyword matcher and role recommender.
package parsing

import (
	"regexp"
	"sort"
	"strings"
)

// wordPattern matches runs of word characters, the unit the keyword matcher compares.
var wordPattern = regexp.MustCompile(`\w+`)

// Normalize lower-cases text, replaces every character outside [a-z0-9+] and
// whitespace with a space, collapses whitespace runs and trims the result.
// It never fails; empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	// Whitespace and disallowed characters both become a plain space so the
	// Fields/Join pass below can collapse them in one step.
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return ' '
	}, lower)

	return strings.Join(strings.Fields(mapped), " ")
}

// WordSet tokenizes text into its set of lower-cased words. Duplicates and
// order are discarded.
func WordSet(text string) map[string]struct{} {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// SortedWords returns the members of a word set in ascending order.
func SortedWords(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
