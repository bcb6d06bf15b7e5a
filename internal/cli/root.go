// Package cli wires the calibration controller into a cobra command tree.
// Everything here is an I/O adapter: it consumes session snapshots and store
// rows and produces terminal output, never touching pipeline internals.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// #region root

var (
	dbPath  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "calibctl",
	Short: "Calibration session controller",
	Long: `calibctl collects manual numeric signals and free-text raw input,
derives text features, aggregates metrics, and classifies each run into
qualitative pressure/load/clarity/readiness labels.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", envOr("CALIBCTL_DB", "calibctl.db"),
		"path to the calibration history database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// #endregion root

// #region helpers

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
