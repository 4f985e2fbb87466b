// Package main implements the resume_checker CLI, which scores a resume
// against a job description and recommends matching roles.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-checker/internal/catalog"
	"github.com/jonathan/resume-checker/internal/config"
	"github.com/jonathan/resume-checker/internal/logging"
	"github.com/jonathan/resume-checker/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:               "resume_checker",
	Short:             "Resume analyzer",
	Long:              "resume_checker extracts text from a PDF, DOCX, TXT or HTML resume, scores it against a job description, recommends roles by TF-IDF similarity and prints a report with actionable suggestions.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

var (
	configPath string
	verbose    bool
	noColor    bool

	// appConfig is the config file and environment merged over built-in
	// defaults, loaded before every command.
	appConfig config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs and step details")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cmd.Flags().Changed("verbose") || !cfg.Verbose {
		cfg.Verbose = verbose
	}
	if cmd.Flags().Changed("no-color") || !cfg.NoColor {
		cfg.NoColor = noColor
	}
	appConfig = cfg.MergeWithDefaults(config.Config{TopN: pipeline.DefaultTopN})

	logging.Setup(cmd.ErrOrStderr(), cfg.Verbose, cfg.NoColor)
	return nil
}

// loadCatalog resolves the catalog from the flag, then the config, then the embedded default.
func loadCatalog(flagPath string) (*catalog.Catalog, error) {
	path := flagPath
	if path == "" {
		path = appConfig.Catalog
	}
	cat, err := catalog.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
