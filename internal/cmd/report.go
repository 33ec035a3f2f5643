package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/clickprint/internal/classify"
	"github.com/harrison/clickprint/internal/report"
)

// NewReportCommand creates and returns the report subcommand
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <attempt>",
		Short: "Write a full analysis report for an attempt",
		Long: `Write features, comparison, classification and narrative for an attempt
to a Markdown, HTML or JSON file. The format defaults to the extension of
--out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			reference, _ := cmd.Flags().GetString("reference")
			profile, _ := cmd.Flags().GetBool("profile")
			out, _ := cmd.Flags().GetString("out")
			formatFlag, _ := cmd.Flags().GetString("format")

			format, err := report.ParseFormat(formatFlag, out)
			if err != nil {
				return err
			}

			a, err := rt.analyze(cmd.Context(), args[0], reference, profile)
			if err != nil {
				return err
			}

			r := report.New(a.Features, a.Comparison, classify.Classify(a.Features), a.Narrative, a.Explainer)
			if err := r.WriteFile(out, format); err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "Report %s written to %s\n", r.ID, out)
			return nil
		},
	}

	addAnalysisFlags(cmd)
	cmd.Flags().String("out", "", "Output file (required)")
	cmd.Flags().String("format", "", "Output format: md, html or json (default: from --out extension)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
