package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for clickprint
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clickprint",
		Short: "Mouse-dynamics feature extraction for graphical-password sessions",
		Long: `Clickprint turns a captured graphical-password attempt (cursor trajectory
plus grid clicks) into a fixed vector of behavioural features, compares it
against an enrolled reference profile, and explains the result.

Sessions and profiles are read from JSON or YAML files.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: .clickprint/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	cmd.PersistentFlags().Bool("lenient", false, "Skip session validation")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(NewExtractCommand())
	cmd.AddCommand(NewCompareCommand())
	cmd.AddCommand(NewClassifyCommand())
	cmd.AddCommand(NewExplainCommand())
	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewPlotCommand())
	cmd.AddCommand(NewServeCommand())

	return cmd
}
