package features

import (
	"github.com/harrison/clickprint/internal/models"
	"github.com/harrison/clickprint/internal/stats"
)

// Timing holds the inter-click latency statistics, in milliseconds.
type Timing struct {
	MeanLatency    float64
	StdDevLatency  float64
	LatencyEntropy float64
}

// InterClickLatencies returns the differences between consecutive click timestamps.
func InterClickLatencies(clicks []models.ClickData) []float64 {
	if len(clicks) < 2 {
		return nil
	}
	out := make([]float64, 0, len(clicks)-1)
	for i := 1; i < len(clicks); i++ {
		out = append(out, clicks[i].T-clicks[i-1].T)
	}
	return out
}

// TimingFeatures summarises inter-click latencies. Fewer than two clicks
// yields all zeros.
func TimingFeatures(clicks []models.ClickData) Timing {
	latencies := InterClickLatencies(clicks)
	return Timing{
		MeanLatency:    stats.Mean(latencies),
		StdDevLatency:  stats.StdDev(latencies),
		LatencyEntropy: stats.Entropy(latencies),
	}
}
