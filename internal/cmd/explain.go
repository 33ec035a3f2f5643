package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/harrison/clickprint/internal/compare"
	"github.com/harrison/clickprint/internal/display"
	"github.com/harrison/clickprint/internal/explain"
	"github.com/harrison/clickprint/internal/features"
	"github.com/harrison/clickprint/internal/models"
)

// analysis is an attempt's features, its optional comparison and narrative.
type analysis struct {
	Features   models.BiometricFeatures
	Comparison *models.FeatureComparison
	Narrative  string
	Explainer  string
}

// NewExplainCommand creates and returns the explain subcommand
func NewExplainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <attempt>",
		Short: "Describe an attempt in plain language",
		Long: `Produce a short narrative for an attempt, optionally against a reference.

When the LLM explainer is enabled (explainer.enabled in config or --llm) and
the Ollama server answers its health check, the narrative comes from the
model; otherwise, or if generation fails, a local template is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			reference, _ := cmd.Flags().GetString("reference")
			profile, _ := cmd.Flags().GetBool("profile")

			a, err := rt.analyze(cmd.Context(), args[0], reference, profile)
			if err != nil {
				return err
			}
			display.Narrative(rt.out, a.Explainer, a.Narrative)
			return nil
		},
	}

	addAnalysisFlags(cmd)

	return cmd
}

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().String("reference", "", "Reference session (or profile with --profile)")
	cmd.Flags().Bool("profile", false, "Treat --reference as a stored feature profile")
	cmd.Flags().Bool("llm", false, "Use the Ollama explainer (overrides config)")
	cmd.Flags().String("model", "", "Ollama model name (overrides config)")
}

// analyze extracts the attempt, compares it when a reference is given and
// asks the selected explainer for a narrative.
func (rt *runtime) analyze(ctx context.Context, attemptPath, referencePath string, profile bool) (*analysis, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := rt.loadSession(attemptPath)
	if err != nil {
		return nil, err
	}
	a := &analysis{Features: features.Extract(s)}

	if referencePath != "" {
		reference, err := rt.loadReference(referencePath, profile)
		if err != nil {
			return nil, err
		}
		cmp := compare.Features(reference, a.Features)
		a.Comparison = &cmp
	}

	explainer := explain.Select(ctx, rt.cfg.Explainer, rt.log)
	a.Explainer = explainer.Name()
	a.Narrative, err = explainer.Explain(ctx, a.Features, a.Comparison)
	if err != nil {
		return nil, err
	}
	return a, nil
}
