package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-checker/internal/catalog"
)

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog <path>",
	Short: "Validate a YAML or JSON catalog file",
	Long:  "Checks a catalog file against the catalog JSON schema and for duplicate role and sample names.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateCatalog,
}

func init() {
	rootCmd.AddCommand(validateCatalogCmd)
}

func runValidateCatalog(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Catalog %s is valid: %d skills, %d roles, %d sample jobs\n",
		args[0], len(cat.Skills), len(cat.Roles), len(cat.SampleJobs))
	_, _ = fmt.Fprintf(out, "Roles: %s\n", strings.Join(cat.RoleNames(), ", "))
	return nil
}
