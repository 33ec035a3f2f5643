// Package explain turns a feature vector and its comparison against a
// reference profile into a short natural-language assessment.
//
// Two backends exist: a local Ollama model reached over HTTP, and a
// deterministic template that never fails. Select probes the model once at
// startup and wraps it in a FallbackExplainer so a failed generation still
// yields the template narrative.
package explain

import (
	"context"

	"github.com/harrison/clickprint/internal/models"
)

// Explainer produces a narrative for a feature vector. comparison is nil when
// no reference profile is enrolled.
type Explainer interface {
	Name() string
	Explain(ctx context.Context, features models.BiometricFeatures, comparison *models.FeatureComparison) (string, error)
}
