package features

import (
	"github.com/harrison/clickprint/internal/models"
	"github.com/harrison/clickprint/internal/signal"
	"github.com/harrison/clickprint/internal/stats"
)

const (
	// HesitationVelocityThreshold is the speed (px/ms) below which a segment counts as dwelling.
	HesitationVelocityThreshold = 0.1

	// HesitationRadius is the distance (px) from a click within which dwelling counts as hesitation.
	HesitationRadius = 30.0
)

// Precision holds click accuracy and hesitation features.
type Precision struct {
	ClickPrecision      float64
	HesitationCount     int
	HesitationTotalTime float64
}

// PrecisionFeatures measures how close clicks land to their cell centres and
// how often the cursor dwells near a click.
func PrecisionFeatures(s *models.Session) Precision {
	count, total := Hesitations(s.Trajectory, s.Clicks)
	return Precision{
		ClickPrecision:      ClickPrecision(s.Clicks, s.GridSize, s.ImageDimensions),
		HesitationCount:     count,
		HesitationTotalTime: total,
	}
}

// CellCenter returns the pixel centre of a grid cell. Cells are numbered
// row-major from the top-left corner.
func CellCenter(gridIndex, gridSize int, dims models.ImageDimensions) (float64, float64) {
	if gridSize <= 0 {
		return 0, 0
	}
	cellW := dims.Width / float64(gridSize)
	cellH := dims.Height / float64(gridSize)
	row := gridIndex / gridSize
	col := gridIndex % gridSize
	return (float64(col) + 0.5) * cellW, (float64(row) + 0.5) * cellH
}

// ClickPrecision is the mean distance of each click from the centre of its
// target cell. Zero when there are no clicks or the grid is empty.
func ClickPrecision(clicks []models.ClickData, gridSize int, dims models.ImageDimensions) float64 {
	if len(clicks) == 0 || gridSize <= 0 {
		return 0
	}
	offsets := make([]float64, 0, len(clicks))
	for _, c := range clicks {
		cx, cy := CellCenter(c.GridIndex, gridSize, dims)
		offsets = append(offsets, signal.Distance(c.X, c.Y, cx, cy))
	}
	return stats.Mean(offsets)
}

// nearClick reports whether p lies within HesitationRadius of any click.
func nearClick(p models.Point, clicks []models.ClickData) bool {
	for _, c := range clicks {
		if signal.Distance(p.X, p.Y, c.X, c.Y) <= HesitationRadius {
			return true
		}
	}
	return false
}

// Hesitations scans the trajectory with a two-state machine (moving /
// hesitating). A segment is hesitating when its velocity is below
// HesitationVelocityThreshold and its end sample lies near a click. Each
// transition into the hesitating state counts once; the time spent there is
// accumulated in milliseconds, including a dwell still open at the end.
func Hesitations(trajectory []models.Point, clicks []models.ClickData) (int, float64) {
	if len(trajectory) < 2 || len(clicks) == 0 {
		return 0, 0
	}

	var (
		count      int
		total      float64
		hesitating bool
		start      float64
	)
	for i := 1; i < len(trajectory); i++ {
		prev, cur := trajectory[i-1], trajectory[i]
		slow := signal.Velocity(prev, cur) < HesitationVelocityThreshold
		switch {
		case slow && nearClick(cur, clicks):
			if !hesitating {
				hesitating = true
				start = prev.T
				count++
			}
		case hesitating:
			total += prev.T - start
			hesitating = false
		}
	}
	if hesitating {
		total += trajectory[len(trajectory)-1].T - start
	}

	return count, total
}
