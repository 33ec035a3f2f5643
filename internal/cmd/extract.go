package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/clickprint/internal/display"
	"github.com/harrison/clickprint/internal/features"
	"github.com/harrison/clickprint/internal/fileutil"
	"github.com/harrison/clickprint/internal/models"
)

// extractedSession pairs a session file with its feature vector for --json output.
type extractedSession struct {
	Session  string                   `json:"session"`
	Features models.BiometricFeatures `json:"features"`

	captured *models.Session
}

// NewExtractCommand creates and returns the extract subcommand
func NewExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <session>...",
		Short: "Extract the feature vector from one or more sessions",
		Long: `Read captured sessions (JSON or YAML) and print their feature vectors.

With --out, the feature vector of a single session is written as JSON and
can later be used as a reference profile:
  clickprint extract enroll.json --out profile.json
  clickprint compare --profile profile.json attempt.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			out, _ := cmd.Flags().GetString("out")
			return runExtract(rt, args, asJSON, out)
		},
	}

	cmd.Flags().Bool("json", false, "Print features as JSON")
	cmd.Flags().String("out", "", "Write the feature vector of a single session to this JSON file")

	return cmd
}

func runExtract(rt *runtime, paths []string, asJSON bool, out string) error {
	if out != "" && len(paths) != 1 {
		return fmt.Errorf("--out takes exactly one session, got %d", len(paths))
	}

	var progress *display.ProgressIndicator
	if len(paths) > 1 {
		progress = display.NewProgressIndicator(rt.errOut, len(paths))
		progress.Start()
	}

	results := make([]extractedSession, 0, len(paths))
	for _, path := range paths {
		if progress != nil {
			progress.Step(path)
		}
		s, err := rt.loadSession(path)
		if err != nil {
			return err
		}
		results = append(results, extractedSession{Session: path, Features: features.Extract(s), captured: s})
	}
	if progress != nil {
		progress.Complete()
	}

	if out != "" {
		data, err := json.MarshalIndent(results[0].Features, "", "  ")
		if err != nil {
			return fmt.Errorf("encode features: %w", err)
		}
		if err := fileutil.LockAndWrite(out, append(data, '\n')); err != nil {
			return fmt.Errorf("write profile: %w", err)
		}
		rt.log.LogInfo(fmt.Sprintf("Wrote feature profile to %s", out))
	}

	if asJSON {
		if len(results) == 1 {
			return writeJSON(rt.out, results[0].Features)
		}
		return writeJSON(rt.out, results)
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(rt.out)
		}
		display.SessionSummary(rt.out, r.Session, r.captured)
		display.Features(rt.out, r.Features)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
