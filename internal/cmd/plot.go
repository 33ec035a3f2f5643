package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/clickprint/internal/chart"
)

// NewPlotCommand creates and returns the plot subcommand
func NewPlotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot <session>",
		Short: "Draw a session's trajectory or velocity profile",
		Long: `Draw a session for visual inspection. The output format follows the
extension of --out:
  .png, .svg, .pdf  cursor trajectory over the image grid
  .html             interactive velocity profile with the hesitation threshold`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			return runPlot(rt, args[0], out)
		},
	}

	cmd.Flags().String("out", "", "Output file (required)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runPlot(rt *runtime, path, out string) error {
	s, err := rt.loadSession(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(out)) {
	case ".html", ".htm":
		err = chart.SaveVelocityProfile(s, out)
	default:
		err = chart.SaveTrajectory(s, out)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(rt.out, "Plot written to %s\n", out)
	return nil
}
