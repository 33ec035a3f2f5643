package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/harrison/clickprint/internal/compare"
	"github.com/harrison/clickprint/internal/models"
)

// Average-delta bucket boundaries, in percent.
const (
	CloseMatchLimit = 20.0
	ModerateLimit   = 50.0
)

// Bucket labels used by the template narrative.
const (
	BucketCloseMatch  = "closely match"
	BucketModerate    = "moderate deviation"
	BucketSignificant = "significant deviation"
	BucketNoReference = "no reference"
)

// Bucket classifies an average delta.
func Bucket(averageDelta float64) string {
	switch {
	case averageDelta < CloseMatchLimit:
		return BucketCloseMatch
	case averageDelta < ModerateLimit:
		return BucketModerate
	default:
		return BucketSignificant
	}
}

// BucketFor returns the bucket for a comparison, or BucketNoReference when nil.
func BucketFor(comparison *models.FeatureComparison) string {
	if comparison == nil {
		return BucketNoReference
	}
	return Bucket(compare.AverageDelta(*comparison))
}

// TemplateExplainer builds a fixed-form narrative locally. It never fails.
type TemplateExplainer struct{}

// Name returns "template".
func (TemplateExplainer) Name() string { return "template" }

// Explain renders the narrative for the comparison's average-delta bucket.
func (TemplateExplainer) Explain(_ context.Context, f models.BiometricFeatures, comparison *models.FeatureComparison) (string, error) {
	return Template(f, comparison), nil
}

// Template is the narrative TemplateExplainer returns.
func Template(f models.BiometricFeatures, comparison *models.FeatureComparison) string {
	var b strings.Builder

	if comparison == nil {
		b.WriteString("No reference profile is enrolled, so this session is described on its own. ")
		fmt.Fprintf(&b, "The cursor moved %.1f px at a mean of %.3f px/ms (directness ratio %.2f), ",
			f.PathLength, f.MeanVelocity, f.DirectnessRatio)
		fmt.Fprintf(&b, "with a mean of %.0f ms between clicks, %d hesitation(s) near click targets ",
			f.MeanInterClickLatency, f.HesitationCount)
		fmt.Fprintf(&b, "and clicks landing %.1f px from cell centres on average.", f.ClickPrecision)
		return b.String()
	}

	avg := compare.AverageDelta(*comparison)
	switch Bucket(avg) {
	case BucketCloseMatch:
		fmt.Fprintf(&b, "The attempt's mouse dynamics closely match the reference profile (average deviation %.1f%%).", avg)
	case BucketModerate:
		fmt.Fprintf(&b, "The attempt shows a moderate deviation from the reference profile (average deviation %.1f%%).", avg)
	default:
		fmt.Fprintf(&b, "The attempt shows a significant deviation from the reference profile (average deviation %.1f%%).", avg)
	}

	fmt.Fprintf(&b, " Timing differs by %.1f%%, velocity by %.1f%%, path deviation by %.1f%% and click precision by %.1f%%.",
		comparison.LatencyDelta, comparison.VelocityDelta, comparison.PathDeviationDelta, comparison.PrecisionDelta)

	if name, delta := largestDelta(*comparison); delta >= CloseMatchLimit {
		fmt.Fprintf(&b, " The largest difference is in %s.", name)
	}

	return b.String()
}

func largestDelta(c models.FeatureComparison) (string, float64) {
	names := []string{"timing", "velocity", "path deviation", "click precision"}
	deltas := c.Deltas()
	best := 0
	for i := range deltas {
		if deltas[i] > deltas[best] {
			best = i
		}
	}
	return names[best], deltas[best]
}
