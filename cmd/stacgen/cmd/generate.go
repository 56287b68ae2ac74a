package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trendsearth/stacgen/internal/build"
	"github.com/trendsearth/stacgen/internal/scan"
	"github.com/trendsearth/stacgen/internal/write"
	"github.com/trendsearth/stacgen/pkg/constants"
	"github.com/trendsearth/stacgen/pkg/logging"
)

// generateCmd regenerates the catalog tree from the data directory.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the STAC catalog from Trends.Earth outputs",
	Long: `Scan the data directory, build the catalog/collection/item hierarchy,
and write it to the output directory as a self-contained STAC tree.

The previous output is replaced wholesale; the catalog is regenerated
from scratch on each run.`,
	Example: `  stacgen generate
  stacgen generate --data ./data --output ./catalog
  stacgen generate --datasets ./datasets.yaml`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("data", "", "data directory with per-country outputs")
	generateCmd.Flags().String("output", "", "output directory for the generated catalog")
	generateCmd.Flags().String("datasets", "", "dataset kind definitions file")

	mustBindFlag("data_dir", generateCmd, "data")
	mustBindFlag("output_dir", generateCmd, "output")
	mustBindFlag("datasets_file", generateCmd, "datasets")

	rootCmd.AddCommand(generateCmd)
}

// mustBindFlag binds a cobra flag to a viper key.
func mustBindFlag(key string, cmd *cobra.Command, flag string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), constants.CommandTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.CheckDataDir(); err != nil {
		return err
	}

	defs, err := scan.LoadDefinitions(cfg.DatasetsFile)
	if err != nil {
		return err
	}

	logging.Info().
		Str("data", cfg.DataDir).
		Str("output", cfg.OutputDir).
		Msg("Creating STAC Trends.Earth catalog")

	countries, err := scan.Scan(ctx, cfg.DataDir, defs)
	if err != nil {
		return err
	}
	if len(countries) == 0 {
		logging.Warn().Str("data", cfg.DataDir).Msg("No datasets found")
	}

	tree, err := build.Build(ctx, cfg.Catalog, countries, defs.BBoxes)
	if err != nil {
		return err
	}

	return write.New(cfg.OutputDir, cfg.DataDir).Write(ctx, tree)
}
