package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/clickprint/internal/compare"
	"github.com/harrison/clickprint/internal/display"
	"github.com/harrison/clickprint/internal/explain"
	"github.com/harrison/clickprint/internal/features"
	"github.com/harrison/clickprint/internal/models"
)

// comparisonOutput is the --json shape of the compare command.
type comparisonOutput struct {
	Reference    models.BiometricFeatures `json:"reference"`
	Attempt      models.BiometricFeatures `json:"attempt"`
	Comparison   models.FeatureComparison `json:"comparison"`
	AverageDelta float64                  `json:"averageDelta"`
	Bucket       string                   `json:"bucket"`
}

// NewCompareCommand creates and returns the compare subcommand
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <reference> <attempt>",
		Short: "Compare an attempt against a reference profile",
		Long: `Compute the percentage deltas of an attempt's latency, velocity, path
deviation and click precision relative to a reference.

The reference is an enrollment session, or with --profile a feature vector
written by "clickprint extract --out".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			profile, _ := cmd.Flags().GetBool("profile")
			asJSON, _ := cmd.Flags().GetBool("json")
			return runCompare(rt, args[0], args[1], profile, asJSON)
		},
	}

	cmd.Flags().Bool("profile", false, "Treat <reference> as a stored feature profile instead of a session")
	cmd.Flags().Bool("json", false, "Print the comparison as JSON")

	return cmd
}

func runCompare(rt *runtime, referencePath, attemptPath string, profile, asJSON bool) error {
	reference, err := rt.loadReference(referencePath, profile)
	if err != nil {
		return err
	}
	s, err := rt.loadSession(attemptPath)
	if err != nil {
		return err
	}

	attempt := features.Extract(s)
	cmp := compare.Features(reference, attempt)

	if asJSON {
		avg := compare.AverageDelta(cmp)
		return writeJSON(rt.out, comparisonOutput{
			Reference:    reference,
			Attempt:      attempt,
			Comparison:   cmp,
			AverageDelta: avg,
			Bucket:       explain.Bucket(avg),
		})
	}

	display.Comparison(rt.out, cmp)
	return nil
}
