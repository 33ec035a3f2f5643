package features

import (
	"github.com/harrison/clickprint/internal/models"
	"github.com/harrison/clickprint/internal/signal"
	"github.com/harrison/clickprint/internal/stats"
)

// Path holds the shape features of a trajectory relative to its clicks.
type Path struct {
	Length          float64
	Direct          float64
	DirectnessRatio float64
	Deviation       float64
	CurvatureIndex  float64
}

// PathFeatures compares the travelled trajectory against the straight-line
// skeleton through the clicks.
func PathFeatures(trajectory []models.Point, clicks []models.ClickData) Path {
	p := Path{
		Length:          signal.PathLength(trajectory),
		Direct:          signal.DirectPath(clicks),
		DirectnessRatio: 1,
		Deviation:       PathDeviation(trajectory, clicks),
		CurvatureIndex:  stats.Mean(signal.TurnAngles(trajectory)),
	}
	if p.Direct > 0 {
		p.DirectnessRatio = p.Length / p.Direct
	}
	return p
}

// PathDeviation is the mean distance of each trajectory sample from the
// segment joining the two clicks that bracket it in time.
//
// Samples before the second click are measured against the first segment.
// Samples later than the final click contribute nothing but still count in
// the denominator. Fewer than two clicks, or an empty trajectory, yields 0.
func PathDeviation(trajectory []models.Point, clicks []models.ClickData) float64 {
	if len(trajectory) == 0 || len(clicks) < 2 {
		return 0
	}

	last := len(clicks) - 1
	seg := 0
	var total float64
	for _, p := range trajectory {
		for seg < last && p.T > clicks[seg+1].T {
			seg++
		}
		if seg >= last {
			break // past the final click
		}
		a, b := clicks[seg], clicks[seg+1]
		total += signal.PointToSegmentDistance(p.X, p.Y, a.X, a.Y, b.X, b.Y)
	}

	return total / float64(len(trajectory))
}
