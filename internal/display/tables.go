package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/clickprint/internal/classify"
	"github.com/harrison/clickprint/internal/compare"
	"github.com/harrison/clickprint/internal/explain"
	"github.com/harrison/clickprint/internal/models"
)

var (
	headerColor = color.New(color.Bold)
	goodColor   = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	badColor    = color.New(color.FgRed)
	stepColor   = color.New(color.FgCyan)
)

// bucketColor maps an average-delta bucket to its colour.
func bucketColor(bucket string) *color.Color {
	switch bucket {
	case explain.BucketCloseMatch:
		return goodColor
	case explain.BucketModerate:
		return warnColor
	case explain.BucketSignificant:
		return badColor
	default:
		return headerColor
	}
}

// SessionSummary prints a one-line capture summary for the named session.
func SessionSummary(w io.Writer, name string, s *models.Session) {
	fmt.Fprintf(w, "%s %d samples over %.0f ms, %d clicks on a %dx%d grid\n",
		headerColor.Sprint(name+":"), len(s.Trajectory), s.Duration(), len(s.Clicks), s.GridSize, s.GridSize)
}

// Features prints every feature as a name/value/unit row.
func Features(w io.Writer, f models.BiometricFeatures) {
	headerColor.Fprintln(w, "Features")
	for _, field := range f.Fields() {
		fmt.Fprintf(w, "  %-24s %14.4f  %s\n", field.Name, field.Value, field.Unit)
	}
}

// Comparison prints the four deltas, their average and its bucket.
func Comparison(w io.Writer, c models.FeatureComparison) {
	avg := compare.AverageDelta(c)
	bucket := explain.Bucket(avg)

	headerColor.Fprintln(w, "Comparison")
	fmt.Fprintf(w, "  %-24s %9.1f%%\n", "latency", c.LatencyDelta)
	fmt.Fprintf(w, "  %-24s %9.1f%%\n", "velocity", c.VelocityDelta)
	fmt.Fprintf(w, "  %-24s %9.1f%%\n", "path deviation", c.PathDeviationDelta)
	fmt.Fprintf(w, "  %-24s %9.1f%%\n", "click precision", c.PrecisionDelta)
	fmt.Fprintf(w, "  %-24s %9.1f%%  %s\n", "average", avg, bucketColor(bucket).Sprint(bucket))
}

// Classification prints the verdict and each indicator.
func Classification(w io.Writer, r classify.Result) {
	verdict := badColor.Sprint(r.Verdict)
	if r.IsHuman() {
		verdict = goodColor.Sprint(r.Verdict)
	}
	fmt.Fprintf(w, "%s %s (%d/%d indicators)\n", headerColor.Sprint("Verdict:"), verdict, r.Score, len(r.Indicators))

	for _, ind := range r.Indicators {
		mark := badColor.Sprint("✗")
		if ind.HumanLike {
			mark = goodColor.Sprint("✓")
		}
		fmt.Fprintf(w, "  %s %-20s %10.4f  (threshold %g)\n", mark, ind.Name, ind.Value, ind.Threshold)
	}
}

// Narrative prints an explainer's output under a header naming the backend.
func Narrative(w io.Writer, explainer, text string) {
	headerColor.Fprintf(w, "Assessment (%s)\n", explainer)
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
