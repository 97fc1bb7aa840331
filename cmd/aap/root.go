package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/config"
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/observability"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "aap",
	Short: "AI automation platform: route business requests into workflows",
	Long: `aap classifies a free-text business request into a workflow,
executes the workflow's plan against a shared blackboard state, and
assembles a decision packet for downstream synthesis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command with the given base context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the CLI logger; log output goes to stderr so command
// output on stdout stays clean.
func newLogger(cfg *config.Config) *slog.Logger {
	var w io.Writer = os.Stderr
	if !verbose && cfg.Logging.Level != "debug" {
		// Keep interactive runs quiet; the event trace is printed anyway.
		w = io.Discard
	}
	return observability.NewLogger(cfg.Logging, w)
}
