// Package features derives a BiometricFeatures vector from one captured Session.
//
// Extract is the single entry point; the timing, velocity, path, precision and
// jitter extractors it combines are exported so each can be exercised on its
// own. Extraction is a pure read of the Session: the same input always yields
// the same vector, and degenerate input (fewer than two samples or clicks)
// produces neutral values rather than NaN, Inf or an error.
package features

import (
	"github.com/harrison/clickprint/internal/models"
)

// Extract computes the full feature vector for a session.
func Extract(s *models.Session) models.BiometricFeatures {
	if s == nil {
		s = &models.Session{}
	}

	timing := TimingFeatures(s.Clicks)
	velocity := VelocityFeatures(s.Trajectory)
	path := PathFeatures(s.Trajectory, s.Clicks)
	precision := PrecisionFeatures(s)

	return models.BiometricFeatures{
		MeanInterClickLatency:   timing.MeanLatency,
		StdDevInterClickLatency: timing.StdDevLatency,
		LatencyEntropy:          timing.LatencyEntropy,

		MeanVelocity:    velocity.Mean,
		StdDevVelocity:  velocity.StdDev,
		VelocityEntropy: velocity.Entropy,

		PathDeviation:   path.Deviation,
		PathLength:      path.Length,
		DirectPath:      path.Direct,
		DirectnessRatio: path.DirectnessRatio,
		CurvatureIndex:  path.CurvatureIndex,

		ClickPrecision:      precision.ClickPrecision,
		HesitationCount:     precision.HesitationCount,
		HesitationTotalTime: precision.HesitationTotalTime,

		AccelerationVariance: velocity.AccelerationVariance,
		AngularVelocityMean:  velocity.AngularVelocityMean,
		JitterScore:          JitterScore(s.Trajectory),
	}
}
