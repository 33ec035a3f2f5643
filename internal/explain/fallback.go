package explain

import (
	"context"
	"fmt"

	"github.com/harrison/clickprint/internal/logger"
	"github.com/harrison/clickprint/internal/models"
)

// FallbackExplainer tries Primary and, when it fails, logs a warning and
// returns the Secondary narrative instead.
type FallbackExplainer struct {
	Primary   Explainer
	Secondary Explainer
	Log       logger.Logger
}

// Name reports both backends, e.g. "ollama:llama3.2+template".
func (f *FallbackExplainer) Name() string {
	return f.Primary.Name() + "+" + f.Secondary.Name()
}

// Explain returns the primary narrative, or the secondary one on failure.
// An error is returned only when both fail.
func (f *FallbackExplainer) Explain(ctx context.Context, features models.BiometricFeatures, comparison *models.FeatureComparison) (string, error) {
	text, err := f.Primary.Explain(ctx, features, comparison)
	if err == nil {
		return text, nil
	}
	if f.Log != nil {
		f.Log.LogWarn(fmt.Sprintf("%s explainer failed, falling back to %s: %v", f.Primary.Name(), f.Secondary.Name(), err))
	}

	text, fbErr := f.Secondary.Explain(ctx, features, comparison)
	if fbErr != nil {
		return "", fmt.Errorf("%s: %w (primary: %v)", f.Secondary.Name(), fbErr, err)
	}
	return text, nil
}
