package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/clickprint/internal/classify"
	"github.com/harrison/clickprint/internal/display"
	"github.com/harrison/clickprint/internal/features"
)

// NewClassifyCommand creates and returns the classify subcommand
func NewClassifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <session>",
		Short: "Heuristically classify a session as human or automated",
		Long: `Score five features (velocity entropy, velocity spread, jitter, curvature
and hesitations) against fixed thresholds. Three or more human-like
indicators yield a "human" verdict. The verdict is advisory only.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			return runClassify(rt, args[0], asJSON)
		},
	}

	cmd.Flags().Bool("json", false, "Print the classification as JSON")

	return cmd
}

func runClassify(rt *runtime, path string, asJSON bool) error {
	s, err := rt.loadSession(path)
	if err != nil {
		return err
	}

	result := classify.Classify(features.Extract(s))
	if asJSON {
		return writeJSON(rt.out, result)
	}
	display.Classification(rt.out, result)
	return nil
}
