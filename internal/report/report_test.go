package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/clickprint/internal/classify"
	"github.com/harrison/clickprint/internal/models"
)

func sampleReport(comparison *models.FeatureComparison) *Report {
	f := models.BiometricFeatures{
		MeanInterClickLatency: 640,
		MeanVelocity:          0.42,
		VelocityEntropy:       2.1,
		StdDevVelocity:        0.12,
		JitterScore:           0.9,
		HesitationCount:       2,
		DirectnessRatio:       1.3,
	}
	return New(f, comparison, classify.Classify(f), "The attempt's mouse dynamics closely match the reference profile.", "template")
}

func TestNew(t *testing.T) {
	a := sampleReport(nil)
	b := sampleReport(nil)

	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.GeneratedAt.IsZero())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name, path string
		want       string
		wantErr    bool
	}{
		{"md", "", FormatMarkdown, false},
		{"Markdown", "", FormatMarkdown, false},
		{"HTML", "", FormatHTML, false},
		{"json", "", FormatJSON, false},
		{"", "out/report.html", FormatHTML, false},
		{"", "out/report", FormatMarkdown, false},
		{"", "report.pdf", "", true},
		{"docx", "", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name, tt.path)
		if tt.wantErr {
			assert.Error(t, err, "ParseFormat(%q, %q)", tt.name, tt.path)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestMarkdown(t *testing.T) {
	t.Run("with comparison", func(t *testing.T) {
		r := sampleReport(&models.FeatureComparison{LatencyDelta: 10, VelocityDelta: 15, PathDeviationDelta: 5, PrecisionDelta: 10})
		md := r.Markdown()

		assert.Contains(t, md, "# Mouse Dynamics Report")
		assert.Contains(t, md, "**Report ID:** "+r.ID)
		assert.Contains(t, md, "## Classification: human (4/5 indicators)")
		assert.Contains(t, md, "| **Average** | **10.0%** |")
		assert.Contains(t, md, "Bucket: **closely match**")
		assert.Contains(t, md, "| meanVelocity | 0.4200 | px/ms |")
	})

	t.Run("without comparison", func(t *testing.T) {
		md := sampleReport(nil).Markdown()
		assert.Contains(t, md, "No reference profile was supplied.")
		assert.NotContains(t, md, "Bucket:")
	})
}

func TestHTML(t *testing.T) {
	r := sampleReport(&models.FeatureComparison{LatencyDelta: 60, VelocityDelta: 70, PathDeviationDelta: 55, PrecisionDelta: 65})
	html, err := r.HTML()
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<h1>Mouse Dynamics Report</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<strong>significant deviation</strong>")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	r := sampleReport(nil)

	for _, format := range []string{FormatMarkdown, FormatHTML, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(dir, "reports", "attempt."+format)
			require.NoError(t, r.WriteFile(path, format))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.NotEmpty(t, data)

			if format == FormatJSON {
				var decoded Report
				require.NoError(t, json.Unmarshal(data, &decoded))
				assert.Equal(t, r.ID, decoded.ID)
				assert.Nil(t, decoded.Comparison)
				assert.Equal(t, r.Classification.Verdict, decoded.Classification.Verdict)
			}
		})
	}

	err := r.WriteFile(filepath.Join(dir, "x.txt"), "txt")
	assert.Error(t, err)
}
