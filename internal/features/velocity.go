package features

import (
	"github.com/harrison/clickprint/internal/models"
	"github.com/harrison/clickprint/internal/signal"
	"github.com/harrison/clickprint/internal/stats"
)

// Velocity holds the speed and rate-of-change statistics of a trajectory.
type Velocity struct {
	Mean                 float64
	StdDev               float64
	Entropy              float64
	AccelerationVariance float64
	AngularVelocityMean  float64
}

// VelocityFeatures summarises per-segment velocities, accelerations and
// angular velocities. Trajectories with fewer than two samples yield zeros.
func VelocityFeatures(trajectory []models.Point) Velocity {
	velocities := signal.Velocities(trajectory)
	return Velocity{
		Mean:                 stats.Mean(velocities),
		StdDev:               stats.StdDev(velocities),
		Entropy:              stats.Entropy(velocities),
		AccelerationVariance: stats.Variance(signal.Accelerations(trajectory)),
		AngularVelocityMean:  stats.Mean(signal.AngularVelocities(trajectory)),
	}
}

// JitterScore is the mean magnitude of the discrete second difference of the
// trajectory coordinates, a proxy for high-frequency tremor. Zero for fewer
// than three samples.
func JitterScore(trajectory []models.Point) float64 {
	return stats.Mean(signal.SecondDifferences(trajectory))
}
