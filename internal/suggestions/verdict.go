package suggestions

import (
	"fmt"

	"github.com/jonathan/resume-checker/internal/types"
)

// Verdict classifies a match percentage for the post-analysis notice.
// Thresholds differ from the headline: >= 75 good, >= 45 average.
func Verdict(matchPercentage float64) types.Verdict {
	switch {
	case matchPercentage >= 75:
		return types.VerdictGood
	case matchPercentage >= 45:
		return types.VerdictAverage
	default:
		return types.VerdictLow
	}
}

// Notice is the one-line message shown once an analysis completes.
func Notice(matchPercentage float64) string {
	switch Verdict(matchPercentage) {
	case types.VerdictGood:
		return fmt.Sprintf("Good match: %.2f%%. See the report above.", matchPercentage)
	case types.VerdictAverage:
		return fmt.Sprintf("Average match: %.2f%%. See suggestions to improve.", matchPercentage)
	default:
		return fmt.Sprintf("Low match: %.2f%%. Consider editing the resume and re-running the analysis.", matchPercentage)
	}
}
