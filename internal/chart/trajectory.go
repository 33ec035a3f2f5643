// Package chart draws a session for visual inspection: the cursor trajectory
// over the image grid as a static image, and the velocity profile as an
// interactive HTML chart.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/harrison/clickprint/internal/features"
	"github.com/harrison/clickprint/internal/fileutil"
	"github.com/harrison/clickprint/internal/models"
)

var (
	pathColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	clickColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	centreColor = color.RGBA{R: 127, G: 127, B: 127, A: 255}
)

// maxCentreGrid bounds the grid size for which cell centres are drawn.
const maxCentreGrid = 32

// ImageFormats are the extensions SaveTrajectory accepts.
var ImageFormats = []string{"png", "svg", "pdf"}

// Trajectory plots the cursor path, the numbered clicks and the centre of
// every grid cell in image coordinates (y grows downward).
func Trajectory(s *models.Session) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Trajectory (%d samples, %d clicks)", len(s.Trajectory), len(s.Clicks))
	p.X.Label.Text = "x (px)"
	p.Y.Label.Text = "y (px)"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(plotter.NewGrid())

	if s.ImageDimensions.Width > 0 && s.ImageDimensions.Height > 0 {
		p.X.Min, p.X.Max = 0, s.ImageDimensions.Width
		p.Y.Min, p.Y.Max = 0, s.ImageDimensions.Height
	}

	if s.GridSize > 0 && s.GridSize <= maxCentreGrid {
		centres := make(plotter.XYs, 0, s.GridSize*s.GridSize)
		for i := 0; i < s.GridSize*s.GridSize; i++ {
			x, y := features.CellCenter(i, s.GridSize, s.ImageDimensions)
			centres = append(centres, plotter.XY{X: x, Y: y})
		}
		sc, err := plotter.NewScatter(centres)
		if err != nil {
			return nil, fmt.Errorf("cell centres: %w", err)
		}
		sc.GlyphStyle.Color = centreColor
		sc.GlyphStyle.Shape = draw.CrossGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
		p.Legend.Add("cell centre", sc)
	}

	if len(s.Trajectory) > 0 {
		pts := make(plotter.XYs, len(s.Trajectory))
		for i, pt := range s.Trajectory {
			pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("trajectory: %w", err)
		}
		line.Color = pathColor
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add("cursor", line)
	}

	if len(s.Clicks) > 0 {
		pts := make(plotter.XYs, len(s.Clicks))
		labels := make([]string, len(s.Clicks))
		for i, c := range s.Clicks {
			pts[i] = plotter.XY{X: c.X, Y: c.Y}
			labels[i] = strconv.Itoa(i + 1)
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("clicks: %w", err)
		}
		sc.GlyphStyle.Color = clickColor
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(4)
		p.Add(sc)
		p.Legend.Add("click", sc)

		lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
		if err != nil {
			return nil, fmt.Errorf("click labels: %w", err)
		}
		p.Add(lbl)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p, nil
}

// SaveTrajectory renders Trajectory to path. The format comes from the file
// extension and must be one of ImageFormats.
func SaveTrajectory(s *models.Session, path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !isImageFormat(format) {
		return fmt.Errorf("unsupported image format %q (want %s)", format, strings.Join(ImageFormats, ", "))
	}

	p, err := Trajectory(s)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(7*vg.Inch, 7*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("render trajectory: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return fmt.Errorf("render trajectory: %w", err)
	}
	return fileutil.LockAndWrite(path, buf.Bytes())
}

func isImageFormat(format string) bool {
	for _, f := range ImageFormats {
		if f == format {
			return true
		}
	}
	return false
}
