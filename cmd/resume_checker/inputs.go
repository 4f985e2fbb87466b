package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-checker/internal/catalog"
	"github.com/jonathan/resume-checker/internal/ingestion"
)

// jobInput holds the three mutually exclusive ways of passing a job description.
type jobInput struct {
	text   string
	file   string
	sample string
}

func (j *jobInput) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&j.text, "job", "j", "", "Job description text (blank uses the catalog default)")
	cmd.Flags().StringVar(&j.file, "job-file", "", "Path to a job description file (.txt, .html, .pdf, .docx)")
	cmd.Flags().StringVar(&j.sample, "sample", "", "Name of a sample job description from the catalog")
	cmd.MarkFlagsMutuallyExclusive("job", "job-file", "sample")
}

// resolve returns the job description text. Blank input stays blank so the
// pipeline can substitute the catalog default.
func (j *jobInput) resolve(cat *catalog.Catalog) (string, error) {
	switch {
	case j.file != "":
		text, err := ingestion.LoadJobDescription(j.file)
		if err != nil {
			return "", err
		}
		return text, nil
	case j.sample != "":
		sample, ok := cat.FindSampleJob(j.sample)
		if !ok {
			return "", fmt.Errorf("unknown sample job %q (run 'resume_checker samples' to list them)", j.sample)
		}
		return sample.Text, nil
	default:
		return strings.TrimSpace(j.text), nil
	}
}

// priorityKeywords parses the --keywords flag, falling back to the config file.
func priorityKeywords(cmd *cobra.Command, raw string) []string {
	if !cmd.Flags().Changed("keywords") && len(appConfig.Keywords) > 0 {
		return append([]string{}, appConfig.Keywords...)
	}
	return ingestion.ParsePriorityKeywords(raw)
}

// topN returns --top when given, otherwise the merged config value.
func topN(cmd *cobra.Command, flagValue int) int {
	if cmd.Flags().Changed("top") {
		return flagValue
	}
	return appConfig.TopN
}
