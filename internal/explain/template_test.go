package explain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/clickprint/internal/models"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{0, BucketCloseMatch},
		{19.99, BucketCloseMatch},
		{20, BucketModerate},
		{49.99, BucketModerate},
		{50, BucketSignificant},
		{250, BucketSignificant},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Bucket(tt.avg), "avg=%v", tt.avg)
	}
}

func TestTemplateExplainer(t *testing.T) {
	tests := []struct {
		name       string
		comparison *models.FeatureComparison
		contains   []string
		excludes   []string
	}{
		{
			name:       "average 10 closely matches",
			comparison: &models.FeatureComparison{LatencyDelta: 10, VelocityDelta: 15, PathDeviationDelta: 5, PrecisionDelta: 10},
			contains:   []string{"closely match", "average deviation 10.0%"},
			excludes:   []string{"largest difference"},
		},
		{
			name:       "average 35 is moderate",
			comparison: &models.FeatureComparison{LatencyDelta: 30, VelocityDelta: 40, PathDeviationDelta: 20, PrecisionDelta: 50},
			contains:   []string{"moderate deviation", "average deviation 35.0%", "largest difference is in click precision"},
		},
		{
			name:       "average 62.5 is significant",
			comparison: &models.FeatureComparison{LatencyDelta: 60, VelocityDelta: 70, PathDeviationDelta: 55, PrecisionDelta: 65},
			contains:   []string{"significant deviation", "average deviation 62.5%", "largest difference is in velocity"},
		},
		{
			name:     "no reference describes the session",
			contains: []string{"No reference profile", "hesitation"},
			excludes: []string{"closely match", "deviation from the reference"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Explainer = TemplateExplainer{}
			text, err := e.Explain(context.Background(), models.BiometricFeatures{MeanVelocity: 0.4, HesitationCount: 2}, tt.comparison)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, text, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, text, s)
			}
		})
	}
}

func TestTemplate_Deterministic(t *testing.T) {
	f := models.BiometricFeatures{PathLength: 812.5, MeanVelocity: 0.37, ClickPrecision: 14.2}
	c := &models.FeatureComparison{LatencyDelta: 12, VelocityDelta: 3}
	assert.Equal(t, Template(f, c), Template(f, c))
	assert.Equal(t, "template", TemplateExplainer{}.Name())
}
