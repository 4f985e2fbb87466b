package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-checker/internal/observability"
	"github.com/jonathan/resume-checker/internal/pipeline"
	"github.com/jonathan/resume-checker/internal/rendering"
	"github.com/jonathan/resume-checker/internal/schemas"
	"github.com/jonathan/resume-checker/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long:  "Extracts resume text, scores keyword overlap with the job description, recommends roles and prints the full report with suggestions.",
	RunE:  runAnalyze,
}

var (
	analyzeResume   string
	analyzeJob      jobInput
	analyzeKeywords string
	analyzeTop      int
	analyzeOut      string
	analyzeSave     bool
	analyzeOutDir   string
	analyzeJSON     string
	analyzeCatalog  string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to the resume (.pdf, .docx, .txt, .html) (required)")
	analyzeJob.register(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeKeywords, "keywords", "k", "", "Comma-separated priority keywords, e.g. \"Excel, Power BI\"")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", pipeline.DefaultTopN, "Number of role recommendations (at least 1)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Save the report to this file")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Save the report under --out-dir with a timestamped name")
	analyzeCmd.Flags().StringVar(&analyzeOutDir, "out-dir", "", "Directory for --save (default: current directory)")
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "Also write the analysis as JSON to this file")
	analyzeCmd.Flags().StringVar(&analyzeCatalog, "catalog", "", "Path to a YAML or JSON catalog (default: built-in)")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	analyzeCmd.MarkFlagsMutuallyExclusive("out", "save")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(analyzeCatalog)
	if err != nil {
		return err
	}

	jobDescription, err := analyzeJob.resolve(cat)
	if err != nil {
		return err
	}

	top := topN(cmd, analyzeTop)
	if top < 1 {
		return fmt.Errorf("--top must be at least 1, got %d", top)
	}

	req := types.AnalyzeRequest{
		ResumePath:       analyzeResume,
		JobDescription:   jobDescription,
		PriorityKeywords: priorityKeywords(cmd, analyzeKeywords),
		TopN:             top,
	}

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)
	opts := pipeline.Options{Catalog: cat}
	if appConfig.Verbose {
		opts.OnProgress = func(e pipeline.ProgressEvent) {
			printStep(printer, e)
		}
	}

	analysis, err := pipeline.Analyze(cmd.Context(), req, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if top, ok := analysis.TopRecommendation(); ok {
		slog.Debug("analysis complete", "run_id", analysis.RunID, "top_role", top.Role, "score", top.Score)
	}

	_, _ = fmt.Fprint(out, analysis.Report)
	printer.PrintVerdict(analysis.KeywordMatch.MatchPercentage)

	if path := reportPath(analysis.GeneratedAt); path != "" {
		if err := rendering.SaveReport(path, analysis.Report); err != nil {
			// The report was already printed; saving is best effort.
			slog.Error("failed to save report", "path", path, "error", err)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save report: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(out, "Report saved to: %s\n", path)
		}
	}

	if analyzeJSON != "" {
		if err := rendering.SaveAnalysisJSON(analyzeJSON, analysis); err != nil {
			return fmt.Errorf("failed to write analysis JSON: %w", err)
		}
		// Output validation is a safety check, not a requirement
		if err := schemas.ValidateFile(schemas.AnalysisSchema, analyzeJSON); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Output validation failed: %v\n", err)
		}
		_, _ = fmt.Fprintf(out, "Analysis JSON written to: %s\n", analyzeJSON)
	}

	return nil
}

// reportPath returns where to save the report, or "" when saving was not requested.
func reportPath(generatedAt time.Time) string {
	if analyzeOut != "" {
		return analyzeOut
	}
	if !analyzeSave {
		return ""
	}
	dir := analyzeOutDir
	if dir == "" {
		dir = appConfig.OutDir
	}
	return filepath.Join(dir, rendering.DefaultReportName(generatedAt))
}

func printStep(printer *observability.Printer, e pipeline.ProgressEvent) {
	switch content := e.Content.(type) {
	case *types.Document:
		printer.PrintDocument(content)
	case types.KeywordMatch:
		printer.PrintKeywordMatch(content)
	case []types.RoleRecommendation:
		printer.PrintRecommendations(content)
	default:
		if e.Step == pipeline.StepSkills {
			if found, ok := e.Content.([]string); ok {
				printer.PrintSkills(found)
				return
			}
		}
		slog.Debug(e.Message, "step", e.Step, "run_id", e.RunID)
	}
}
