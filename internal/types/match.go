// Package types provides type definitions for structured data used throughout the resume-checker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KeywordMatch is the result of comparing job description words with resume words.
type KeywordMatch struct {
	// MatchPercentage is totalScore / maxScore * 100. It is not clamped and
	// can exceed 100 when priority keywords contribute their double weight.
	MatchPercentage float64  `json:"match_percentage"`
	MatchedWords    []string `json:"matched_words"`
	MissingWords    []string `json:"missing_words"`
	WeightedScore   int      `json:"weighted_score"`
	NormalScore     int      `json:"normal_score"`
	MaxScore        int      `json:"max_score"`
}

// TotalScore returns the weighted plus normal score.
func (m KeywordMatch) TotalScore() int {
	return m.WeightedScore + m.NormalScore
}

// RoleRecommendation pairs a role from the corpus with its cosine similarity to the resume.
type RoleRecommendation struct {
	Role  string  `json:"role"`
	Score float64 `json:"score"`
}
