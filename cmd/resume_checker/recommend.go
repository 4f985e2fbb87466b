package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-checker/internal/ingestion"
	"github.com/jonathan/resume-checker/internal/parsing"
	"github.com/jonathan/resume-checker/internal/pipeline"
	"github.com/jonathan/resume-checker/internal/ranking"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank catalog roles by similarity to a resume",
	Long:  "Ranks every catalog role by TF-IDF cosine similarity between its description and the resume text. --top 0 lists all roles.",
	RunE:  runRecommend,
}

var (
	recommendResume  string
	recommendTop     int
	recommendCatalog string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendResume, "resume", "r", "", "Path to the resume (required)")
	recommendCmd.Flags().IntVar(&recommendTop, "top", pipeline.DefaultTopN, "Number of roles to show (0 for all)")
	recommendCmd.Flags().StringVar(&recommendCatalog, "catalog", "", "Path to a YAML or JSON catalog (default: built-in)")

	if err := recommendCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(recommendCatalog)
	if err != nil {
		return err
	}

	doc, err := ingestion.ExtractText(recommendResume)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	recs, err := ranking.Recommend(parsing.Normalize(doc.Text), cat.Roles, topN(cmd, recommendTop))
	if errors.Is(err, ranking.ErrNoSharedVocabulary) || errors.Is(err, ranking.ErrEmptyVocabulary) {
		_, _ = fmt.Fprintln(out, "No recommendations available.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to recommend roles: %w", err)
	}

	for _, r := range recs {
		_, _ = fmt.Fprintf(out, " - %s (similarity: %.2f)\n", r.Role, r.Score)
	}
	return nil
}
