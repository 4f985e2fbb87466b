// Package suggestions turns match results into actionable resume edits.
package suggestions

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-checker/internal/catalog"
	"github.com/jonathan/resume-checker/internal/types"
)

// MaxMissingSuggestions caps how many missing words are turned into suggestions.
const MaxMissingSuggestions = 8

const (
	excellentThreshold = 80.0
	goodThreshold      = 50.0
)

// Generate builds the ordered suggestion list for one analysis.
//
// missing is taken in the order given; only its first MaxMissingSuggestions
// entries are used. extractedSkills is accepted for callers that want to
// tailor suggestions but does not currently change the output.
func Generate(missing, extractedSkills []string, matchPercentage float64, recs []types.RoleRecommendation, cat *catalog.Catalog) []string {
	if cat == nil {
		cat = catalog.Default()
	}

	out := make([]string, 0, 4+MaxMissingSuggestions)
	out = append(out, Headline(matchPercentage))

	if len(missing) > 0 {
		sample := missing
		if len(sample) > MaxMissingSuggestions {
			sample = sample[:MaxMissingSuggestions]
		}
		out = append(out, "Missing keywords to consider adding: "+strings.Join(sample, ", "))
		for _, kw := range sample {
			out = append(out, bulletFor(kw, cat))
		}
	} else {
		out = append(out, "No missing keywords detected relative to the JD text.")
	}

	if len(recs) > 0 {
		top := recs[0]
		out = append(out, fmt.Sprintf("Top recommended role: %s (similarity: %.2f)", top.Role, top.Score))
		if role, ok := cat.FindRole(top.Role); ok && role.Coaching != "" {
			out = append(out, role.Coaching)
		}
	}

	return out
}

// Headline returns the overall assessment line for a match percentage.
func Headline(matchPercentage float64) string {
	switch {
	case matchPercentage > excellentThreshold:
		return "Excellent match. Highlight relevant projects and achievements."
	case matchPercentage > goodThreshold:
		return "Good match. Add specific project bullets for missing skills."
	default:
		return "Low match. Add or emphasize skills/experience listed in job description."
	}
}

func bulletFor(kw string, cat *catalog.Catalog) string {
	if cat.IsMeasurable(kw) {
		return fmt.Sprintf("Add a measurable bullet: \"Used %s to analyze X records and improved Y by Z%%.\"", kw)
	}
	return fmt.Sprintf("Add experience/ project mentioning \"%s\". Example: \"Worked on %s for ...\".", kw, kw)
}
