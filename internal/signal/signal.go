// Package signal implements the geometric and kinematic primitives computed
// over a cursor trajectory or a click sequence.
//
// All functions are pure: they read their input slices and never modify them.
// Every division by a time or length delta is guarded and yields 0 instead of
// NaN or Inf when the denominator is not positive.
package signal

import (
	"math"

	"github.com/harrison/clickprint/internal/models"
)

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Velocity returns distance over elapsed time between two samples,
// or 0 when t2 <= t1.
func Velocity(p1, p2 models.Point) float64 {
	dt := p2.T - p1.T
	if dt <= 0 {
		return 0
	}
	return Distance(p1.X, p1.Y, p2.X, p2.Y) / dt
}

// Velocities returns the per-segment velocities of a trajectory.
// The result has len(trajectory)-1 entries (none for fewer than two samples).
func Velocities(trajectory []models.Point) []float64 {
	if len(trajectory) < 2 {
		return nil
	}
	out := make([]float64, 0, len(trajectory)-1)
	for i := 1; i < len(trajectory); i++ {
		out = append(out, Velocity(trajectory[i-1], trajectory[i]))
	}
	return out
}

// Accelerations returns the acceleration magnitude between consecutive
// segments: |v[i] - v[i-1]| divided by the duration of segment i.
func Accelerations(trajectory []models.Point) []float64 {
	velocities := Velocities(trajectory)
	if len(velocities) < 2 {
		return nil
	}
	out := make([]float64, 0, len(velocities)-1)
	for i := 1; i < len(velocities); i++ {
		dt := trajectory[i+1].T - trajectory[i].T
		if dt <= 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, math.Abs(velocities[i]-velocities[i-1])/dt)
	}
	return out
}

// NormalizeAngle wraps an angle into [-π, π].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// heading is the direction of travel from a to b.
func heading(a, b models.Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// AngularVelocities returns, for every interior sample, the absolute turn
// angle between the incoming and outgoing direction divided by the time
// spanned by the two segments.
func AngularVelocities(trajectory []models.Point) []float64 {
	if len(trajectory) < 3 {
		return nil
	}
	out := make([]float64, 0, len(trajectory)-2)
	for i := 1; i < len(trajectory)-1; i++ {
		turn := NormalizeAngle(heading(trajectory[i], trajectory[i+1]) - heading(trajectory[i-1], trajectory[i]))
		dt := trajectory[i+1].T - trajectory[i-1].T
		if dt <= 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, math.Abs(turn)/dt)
	}
	return out
}

// TurnAngles returns the absolute turn angle at every interior sample,
// folded so that reflex angles are reported as their complement (≤ π).
func TurnAngles(trajectory []models.Point) []float64 {
	if len(trajectory) < 3 {
		return nil
	}
	out := make([]float64, 0, len(trajectory)-2)
	for i := 1; i < len(trajectory)-1; i++ {
		turn := math.Abs(heading(trajectory[i], trajectory[i+1]) - heading(trajectory[i-1], trajectory[i]))
		if turn > math.Pi {
			turn = 2*math.Pi - turn
		}
		out = append(out, turn)
	}
	return out
}

// SecondDifferences returns the magnitude of the discrete second difference
// of the coordinates at every interior sample.
func SecondDifferences(trajectory []models.Point) []float64 {
	if len(trajectory) < 3 {
		return nil
	}
	out := make([]float64, 0, len(trajectory)-2)
	for i := 1; i < len(trajectory)-1; i++ {
		ddx := trajectory[i+1].X - 2*trajectory[i].X + trajectory[i-1].X
		ddy := trajectory[i+1].Y - 2*trajectory[i].Y + trajectory[i-1].Y
		out = append(out, math.Hypot(ddx, ddy))
	}
	return out
}

// PathLength is the sum of consecutive sample distances.
func PathLength(trajectory []models.Point) float64 {
	var total float64
	for i := 1; i < len(trajectory); i++ {
		total += Distance(trajectory[i-1].X, trajectory[i-1].Y, trajectory[i].X, trajectory[i].Y)
	}
	return total
}

// DirectPath is the sum of consecutive click distances, the straight-line
// skeleton of the password.
func DirectPath(clicks []models.ClickData) float64 {
	var total float64
	for i := 1; i < len(clicks); i++ {
		total += Distance(clicks[i-1].X, clicks[i-1].Y, clicks[i].X, clicks[i].Y)
	}
	return total
}

// PointToSegmentDistance returns the distance from (px, py) to the finite
// segment (x1, y1)-(x2, y2). The projection parameter is clamped to [0, 1];
// a zero-length segment degenerates to a point distance.
func PointToSegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return Distance(px, py, x1, y1)
	}

	t := ((px-x1)*dx + (py-y1)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))

	return Distance(px, py, x1+t*dx, y1+t*dy)
}
