package explain

import (
	"context"
	"fmt"

	"github.com/harrison/clickprint/internal/config"
	"github.com/harrison/clickprint/internal/logger"
)

// Select picks the narrative backend for this process. When the model is
// enabled and answers its health probe, the result wraps it with the
// template as fallback; otherwise the template explainer is returned.
func Select(ctx context.Context, cfg config.ExplainerConfig, log logger.Logger) Explainer {
	if !cfg.Enabled {
		log.LogDebug("LLM explainer disabled, using template")
		return TemplateExplainer{}
	}

	ollama := NewOllamaExplainer(cfg)
	if !ollama.IsAvailable(ctx) {
		log.LogWarn(fmt.Sprintf("Ollama not reachable at %s, using template explainer", cfg.BaseURL))
		return TemplateExplainer{}
	}

	log.LogInfo(fmt.Sprintf("Using Ollama model %s at %s", cfg.Model, cfg.BaseURL))
	return &FallbackExplainer{
		Primary:   ollama,
		Secondary: TemplateExplainer{},
		Log:       log,
	}
}
