package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-checker/internal/ingestion"
	"github.com/jonathan/resume-checker/internal/matching"
	"github.com/jonathan/resume-checker/internal/parsing"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score keyword overlap between a resume and a job description",
	RunE:  runMatch,
}

var (
	matchResume   string
	matchJob      jobInput
	matchKeywords string
	matchCatalog  string
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to the resume (required)")
	matchJob.register(matchCmd)
	matchCmd.Flags().StringVarP(&matchKeywords, "keywords", "k", "", "Comma-separated priority keywords")
	matchCmd.Flags().StringVar(&matchCatalog, "catalog", "", "Path to a YAML or JSON catalog (default: built-in)")

	if err := matchCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(matchCatalog)
	if err != nil {
		return err
	}

	jobDescription, err := matchJob.resolve(cat)
	if err != nil {
		return err
	}
	if jobDescription == "" {
		jobDescription = cat.DefaultJobDescription
	}

	doc, err := ingestion.ExtractText(matchResume)
	if err != nil {
		return err
	}

	result := matching.MatchKeywords(
		parsing.Normalize(jobDescription),
		parsing.Normalize(doc.Text),
		priorityKeywords(cmd, matchKeywords),
	)

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Match Score: %.2f%%\n", result.MatchPercentage)
	_, _ = fmt.Fprintf(out, "Score: %d (%d weighted + %d normal) / %d max\n",
		result.TotalScore(), result.WeightedScore, result.NormalScore, result.MaxScore)
	_, _ = fmt.Fprintf(out, "Matched: %s\n", joinOrNone(result.MatchedWords))
	_, _ = fmt.Fprintf(out, "Missing: %s\n", joinOrNone(result.MissingWords))
	return nil
}

func joinOrNone(words []string) string {
	if len(words) == 0 {
		return "None"
	}
	return strings.Join(words, ", ")
}
