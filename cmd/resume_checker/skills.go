package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-checker/internal/ingestion"
	"github.com/jonathan/resume-checker/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List catalog skills found in a resume",
	RunE:  runSkills,
}

var (
	skillsResume  string
	skillsCatalog string
)

func init() {
	skillsCmd.Flags().StringVarP(&skillsResume, "resume", "r", "", "Path to the resume (required)")
	skillsCmd.Flags().StringVar(&skillsCatalog, "catalog", "", "Path to a YAML or JSON catalog (default: built-in)")

	if err := skillsCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(skillsCatalog)
	if err != nil {
		return err
	}

	doc, err := ingestion.ExtractText(skillsResume)
	if err != nil {
		return err
	}

	found := skills.NewExtractor(cat.Skills).Extract(doc.Text)
	out := cmd.OutOrStdout()
	if len(found) == 0 {
		_, _ = fmt.Fprintln(out, "None detected")
		return nil
	}
	_, _ = fmt.Fprintln(out, strings.Join(found, "\n"))
	return nil
}
