// Package compare measures how far an attempt's feature vector deviates from
// an enrolled reference profile.
package compare

import (
	"math"

	"github.com/harrison/clickprint/internal/models"
	"github.com/harrison/clickprint/internal/stats"
)

// PercentDelta returns |attempt - reference| / reference * 100.
// A zero reference yields 0 when the attempt is also zero and 100 otherwise.
func PercentDelta(reference, attempt float64) float64 {
	if reference == 0 {
		if attempt == 0 {
			return 0
		}
		return 100
	}
	return math.Abs(attempt-reference) / reference * 100
}

// Features compares the four headline metrics of attempt against reference.
// Deltas are relative to reference, so swapping the arguments generally
// changes the result.
func Features(reference, attempt models.BiometricFeatures) models.FeatureComparison {
	return models.FeatureComparison{
		LatencyDelta:       PercentDelta(reference.MeanInterClickLatency, attempt.MeanInterClickLatency),
		VelocityDelta:      PercentDelta(reference.MeanVelocity, attempt.MeanVelocity),
		PathDeviationDelta: PercentDelta(reference.PathDeviation, attempt.PathDeviation),
		PrecisionDelta:     PercentDelta(reference.ClickPrecision, attempt.ClickPrecision),
	}
}

// AverageDelta is the arithmetic mean of the four deltas.
func AverageDelta(c models.FeatureComparison) float64 {
	return stats.Mean(c.Deltas())
}
