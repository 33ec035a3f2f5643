package chart

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/harrison/clickprint/internal/features"
	"github.com/harrison/clickprint/internal/fileutil"
	"github.com/harrison/clickprint/internal/models"
	"github.com/harrison/clickprint/internal/signal"
)

// VelocityProfile builds a line chart of segment velocity against the
// segment's start time, with the hesitation threshold drawn alongside.
func VelocityProfile(s *models.Session) *charts.Line {
	v := signal.Velocities(s.Trajectory)

	xs := make([]string, len(v))
	speed := make([]opts.LineData, len(v))
	threshold := make([]opts.LineData, len(v))
	for i := range v {
		xs[i] = strconv.FormatFloat(s.Trajectory[i].T, 'f', -1, 64)
		speed[i] = opts.LineData{Value: v[i]}
		threshold[i] = opts.LineData{Value: features.HesitationVelocityThreshold}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Velocity profile", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Velocity profile", Subtitle: fmt.Sprintf("segments=%d clicks=%d", len(v), len(s.Clicks))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (ms)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "px/ms", NameLocation: "middle", NameGap: 40}),
	)
	line.SetXAxis(xs).
		AddSeries("velocity", speed).
		AddSeries("hesitation threshold", threshold)

	return line
}

// RenderVelocityProfile writes the chart as a standalone HTML page.
func RenderVelocityProfile(w io.Writer, s *models.Session) error {
	if err := VelocityProfile(s).Render(w); err != nil {
		return fmt.Errorf("render velocity chart: %w", err)
	}
	return nil
}

// SaveVelocityProfile renders the chart and writes it atomically to path.
func SaveVelocityProfile(s *models.Session, path string) error {
	var buf bytes.Buffer
	if err := RenderVelocityProfile(&buf, s); err != nil {
		return err
	}
	return fileutil.LockAndWrite(path, buf.Bytes())
}
