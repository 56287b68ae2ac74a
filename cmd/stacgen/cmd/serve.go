package cmd

import (
	"github.com/spf13/cobra"

	"github.com/trendsearth/stacgen/internal/server"
	"github.com/trendsearth/stacgen/pkg/logging"
)

// serveCmd starts the catalog preview server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated catalog with permissive CORS",
	Long: `Start a read-only static file server over the generated catalog tree.
Every response carries permissive CORS headers so browser-based STAC
viewers can load the catalog from another origin.`,
	Example: `  stacgen serve
  stacgen serve --port 8080 --host 127.0.0.1`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "server port")
	serveCmd.Flags().String("host", "", "bind address")

	mustBindFlag("server.port", serveCmd, "port")
	mustBindFlag("server.host", serveCmd, "host")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srv := server.New(cfg.Server, cfg.OutputDir, logging.Default())
	return srv.Run(cmd.Context())
}
