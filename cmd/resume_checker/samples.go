package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var samplesCmd = &cobra.Command{
	Use:   "samples [name]",
	Short: "List sample job descriptions, or print one by name",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSamples,
}

var samplesCatalog string

func init() {
	samplesCmd.Flags().StringVar(&samplesCatalog, "catalog", "", "Path to a YAML or JSON catalog (default: built-in)")
	rootCmd.AddCommand(samplesCmd)
}

func runSamples(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(samplesCatalog)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		sample, ok := cat.FindSampleJob(args[0])
		if !ok {
			return fmt.Errorf("unknown sample job %q", args[0])
		}
		_, _ = fmt.Fprintln(out, sample.Text)
		return nil
	}

	if len(cat.SampleJobs) == 0 {
		_, _ = fmt.Fprintln(out, "No sample job descriptions in catalog.")
		return nil
	}
	for _, s := range cat.SampleJobs {
		_, _ = fmt.Fprintf(out, "%-12s %s\n", s.Name, s.Title)
	}
	return nil
}
