// Package matching compares job description words against resume words.
package matching

import (
	"strings"

	"github.com/jonathan/resume-checker/internal/parsing"
	"github.com/jonathan/resume-checker/internal/types"
)

// priorityWeight is the score a priority keyword earns when the resume contains it.
const priorityWeight = 2

// MatchKeywords scores the overlap between a job description and a resume.
//
// Both texts are reduced to word sets, so repeated words and word order do
// not matter. Each priority keyword found in the resume adds priorityWeight;
// every other shared word adds one. The maximum is the number of unique job
// description words plus the number of priority keywords, which means the
// percentage can exceed 100. Matched and missing words are returned sorted.
func MatchKeywords(jobDescription, resume string, priority []string) types.KeywordMatch {
	jdWords := parsing.WordSet(jobDescription)
	resumeWords := parsing.WordSet(resume)

	priorityLower := make(map[string]bool, len(priority))
	weightedScore := 0
	for _, kw := range priority {
		lower := strings.ToLower(kw)
		priorityLower[lower] = true
		if _, ok := resumeWords[lower]; ok {
			weightedScore += priorityWeight
		}
	}

	matched := make(map[string]struct{})
	missing := make(map[string]struct{})
	normalScore := 0
	for w := range jdWords {
		if _, ok := resumeWords[w]; !ok {
			missing[w] = struct{}{}
			continue
		}
		matched[w] = struct{}{}
		if !priorityLower[w] {
			normalScore++
		}
	}

	maxScore := len(jdWords) + len(priority)
	percentage := 0.0
	if maxScore > 0 {
		percentage = float64(weightedScore+normalScore) / float64(maxScore) * 100
	}

	return types.KeywordMatch{
		MatchPercentage: percentage,
		MatchedWords:    parsing.SortedWords(matched),
		MissingWords:    parsing.SortedWords(missing),
		WeightedScore:   weightedScore,
		NormalScore:     normalScore,
		MaxScore:        maxScore,
	}
}
