package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trendsearth/stacgen/internal/validation"
	"github.com/trendsearth/stacgen/pkg/errors"
)

// validateCmd checks a generated catalog tree on disk.
var validateCmd = &cobra.Command{
	Use:   "validate [catalog-dir]",
	Short: "Validate a generated catalog tree",
	Long: `Walk a generated catalog tree and check every document: STAC structural
requirements, link integrity, asset href resolution, and extent
containment. Exits nonzero when violations are found.`,
	Example: `  stacgen validate
  stacgen validate ./catalog`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	catalogDir := ""
	if len(args) == 1 {
		catalogDir = args[0]
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalogDir = cfg.OutputDir
	}

	issues, err := validation.Check(cmd.Context(), catalogDir)
	if err != nil {
		return err
	}

	if len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintln(cmd.ErrOrStderr(), issue.String())
		}
		return errors.NewValidationError("catalog", catalogDir,
			fmt.Sprintf("%d validation issue(s) found", len(issues)))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Catalog is valid")
	return nil
}
