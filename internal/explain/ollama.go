package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/harrison/clickprint/internal/config"
	"github.com/harrison/clickprint/internal/models"
)

// Disclaimer prefixes every model-generated narrative.
const Disclaimer = "NON-EVIDENTIARY AI ANALYSIS: generated by a language model for reviewer reference only; verify every finding independently."

// generateRequest is the JSON body for Ollama's /api/generate.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// OllamaExplainer asks a local Ollama model for the narrative, with lazy
// health checking.
type OllamaExplainer struct {
	config       config.ExplainerConfig
	httpClient   *http.Client
	healthClient *http.Client
	available    bool
	once         sync.Once
}

// NewOllamaExplainer creates an explainer for the given configuration.
// Generation requests are bounded by cfg.Timeout, the health probe by
// cfg.HealthTimeout.
func NewOllamaExplainer(cfg config.ExplainerConfig) *OllamaExplainer {
	return &OllamaExplainer{
		config:       cfg,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		healthClient: &http.Client{Timeout: cfg.HealthTimeout},
	}
}

// Name identifies the backend and model.
func (o *OllamaExplainer) Name() string {
	return "ollama:" + o.config.Model
}

// CheckHealth performs a health check against the Ollama server.
// Returns true if GET /api/tags responds with HTTP 200 OK.
func (o *OllamaExplainer) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.endpoint("/api/tags"), nil)
	if err != nil {
		return false
	}
	resp, err := o.healthClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// IsAvailable returns whether the model can be used.
// If the explainer is disabled in config, returns false immediately.
// Otherwise the health check runs once and its result is cached.
func (o *OllamaExplainer) IsAvailable(ctx context.Context) bool {
	if !o.config.Enabled {
		return false
	}

	o.once.Do(func() {
		o.available = o.CheckHealth(ctx)
	})

	return o.available
}

// Explain sends a prompt built from the features to /api/generate and returns
// the model's response prefixed with Disclaimer.
func (o *OllamaExplainer) Explain(ctx context.Context, f models.BiometricFeatures, comparison *models.FeatureComparison) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  o.config.Model,
		Prompt: Prompt(f, comparison),
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("encode generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint("/api/generate"), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	text := strings.TrimSpace(out.Response)
	if text == "" {
		return "", fmt.Errorf("ollama returned an empty response")
	}

	return Disclaimer + "\n\n" + text, nil
}

func (o *OllamaExplainer) endpoint(path string) string {
	return strings.TrimRight(o.config.BaseURL, "/") + path
}

// Prompt builds the model prompt from the feature vector and, when present,
// the comparison and its template bucket.
func Prompt(f models.BiometricFeatures, comparison *models.FeatureComparison) string {
	var b strings.Builder

	b.WriteString("You are a behavioral biometrics analyst. A user entered a graphical password by clicking cells on an image grid. ")
	b.WriteString("Assess whether the mouse dynamics below are consistent with the enrolled user.\n\n")

	b.WriteString("Session features:\n")
	fmt.Fprintf(&b, "- Mean inter-click latency: %.1f ms (std dev %.1f ms, entropy %.2f bits)\n",
		f.MeanInterClickLatency, f.StdDevInterClickLatency, f.LatencyEntropy)
	fmt.Fprintf(&b, "- Mean velocity: %.3f px/ms (std dev %.3f, entropy %.2f bits)\n",
		f.MeanVelocity, f.StdDevVelocity, f.VelocityEntropy)
	fmt.Fprintf(&b, "- Path length: %.1f px, direct path %.1f px, directness ratio %.2f\n",
		f.PathLength, f.DirectPath, f.DirectnessRatio)
	fmt.Fprintf(&b, "- Path deviation: %.2f px, curvature index %.3f rad\n", f.PathDeviation, f.CurvatureIndex)
	fmt.Fprintf(&b, "- Click precision: %.1f px from cell centre\n", f.ClickPrecision)
	fmt.Fprintf(&b, "- Hesitations: %d totalling %.0f ms\n", f.HesitationCount, f.HesitationTotalTime)
	fmt.Fprintf(&b, "- Acceleration variance: %.6f, angular velocity mean %.4f rad/ms, jitter %.2f px\n",
		f.AccelerationVariance, f.AngularVelocityMean, f.JitterScore)

	if comparison == nil {
		b.WriteString("\nNo reference profile is enrolled.\n")
	} else {
		b.WriteString("\nPercentage deltas against the reference profile:\n")
		fmt.Fprintf(&b, "- Latency: %.1f%%\n- Velocity: %.1f%%\n- Path deviation: %.1f%%\n- Click precision: %.1f%%\n",
			comparison.LatencyDelta, comparison.VelocityDelta, comparison.PathDeviationDelta, comparison.PrecisionDelta)
		fmt.Fprintf(&b, "Average delta bucket: %s.\n", BucketFor(comparison))
	}

	b.WriteString("\nProvide a 2-3 sentence assessment. Keep the response under 100 words.")
	return b.String()
}
