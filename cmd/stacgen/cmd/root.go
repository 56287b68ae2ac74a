// Package cmd implements the stacgen command line interface.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trendsearth/stacgen/internal/config"
	"github.com/trendsearth/stacgen/pkg/logging"
)

var (
	configFile string
	verbose    bool
	quiet      bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stacgen",
	Short: "Trends.Earth STAC catalog generator",
	Long: `Stacgen generates a static SpatioTemporal Asset Catalog (STAC) from
Trends.Earth per-country output directories.

It walks a data folder, maps each country's dataset files into a STAC
catalog/collection/item hierarchy, and writes the hierarchy as a
self-contained tree of JSON documents. The generated tree can be checked
with 'stacgen validate' and previewed with 'stacgen serve'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with signal-aware context.
func Execute(version, commit, date string) error {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Err(err).Msg("Command failed")
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.stacgen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".stacgen")
	}

	// Load .env files before viper env binding.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			logging.Warn().Err(err).Msg("Failed to load .env file")
		}
	}

	viper.SetEnvPrefix("STACGEN")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil {
		logging.Debug().Str("file", viper.ConfigFileUsed()).Msg("Loaded config file")
	}

	switch {
	case verbose:
		logging.SetLevel(zerolog.DebugLevel)
	case quiet:
		logging.SetLevel(zerolog.ErrorLevel)
	}
}

// loadConfig resolves the validated runtime configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}
