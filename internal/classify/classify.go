// Package classify provides a heuristic human/automation verdict over a
// feature vector. It is advisory only and makes no authentication decision.
package classify

import (
	"github.com/harrison/clickprint/internal/models"
)

// Verdict values.
const (
	VerdictHuman     = "human"
	VerdictAutomated = "automated"
)

// Fixed thresholds. A feature at or above its threshold is a human indicator.
const (
	VelocityEntropyThreshold = 1.0  // bits
	StdDevVelocityThreshold  = 0.05 // px/ms
	JitterScoreThreshold     = 0.5  // px
	CurvatureIndexThreshold  = 0.1  // rad
	HesitationCountThreshold = 1

	// MinHumanIndicators is the number of indicators required for a human verdict.
	MinHumanIndicators = 3
)

// Indicator is one thresholded feature.
type Indicator struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
	HumanLike bool    `json:"humanLike"`
}

// Result is the outcome of Classify.
type Result struct {
	Verdict    string      `json:"verdict"`
	Score      int         `json:"score"`
	Indicators []Indicator `json:"indicators"`
}

// IsHuman reports whether the verdict is human.
func (r Result) IsHuman() bool {
	return r.Verdict == VerdictHuman
}

// Classify scores five features against fixed thresholds. Scripted input
// tends to move at constant speed along straight lines without tremor or
// dwelling, so it misses most indicators.
func Classify(f models.BiometricFeatures) Result {
	indicators := []Indicator{
		newIndicator("velocityEntropy", f.VelocityEntropy, VelocityEntropyThreshold),
		newIndicator("stdDevVelocity", f.StdDevVelocity, StdDevVelocityThreshold),
		newIndicator("jitterScore", f.JitterScore, JitterScoreThreshold),
		newIndicator("curvatureIndex", f.CurvatureIndex, CurvatureIndexThreshold),
		newIndicator("hesitationCount", float64(f.HesitationCount), HesitationCountThreshold),
	}

	r := Result{Verdict: VerdictAutomated, Indicators: indicators}
	for _, ind := range indicators {
		if ind.HumanLike {
			r.Score++
		}
	}
	if r.Score >= MinHumanIndicators {
		r.Verdict = VerdictHuman
	}
	return r
}

func newIndicator(name string, value, threshold float64) Indicator {
	return Indicator{
		Name:      name,
		Value:     value,
		Threshold: threshold,
		HumanLike: value >= threshold,
	}
}
