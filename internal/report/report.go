// Package report renders an analysis of one attempt as Markdown, HTML or JSON.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/harrison/clickprint/internal/classify"
	"github.com/harrison/clickprint/internal/compare"
	"github.com/harrison/clickprint/internal/explain"
	"github.com/harrison/clickprint/internal/fileutil"
	"github.com/harrison/clickprint/internal/models"
)

// Output formats accepted by Render and WriteFile.
const (
	FormatMarkdown = "md"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// Report is a rendered-on-demand analysis of one attempt.
type Report struct {
	ID             string                    `json:"id"`
	GeneratedAt    time.Time                 `json:"generatedAt"`
	Features       models.BiometricFeatures  `json:"features"`
	Comparison     *models.FeatureComparison `json:"comparison,omitempty"`
	Classification classify.Result           `json:"classification"`
	Narrative      string                    `json:"narrative"`
	Explainer      string                    `json:"explainer"`
}

// New assembles a report with a fresh ID. comparison may be nil.
func New(features models.BiometricFeatures, comparison *models.FeatureComparison, classification classify.Result, narrative, explainerName string) *Report {
	return &Report{
		ID:             uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		Features:       features,
		Comparison:     comparison,
		Classification: classification,
		Narrative:      narrative,
		Explainer:      explainerName,
	}
}

// ParseFormat normalises a format name. An empty name is inferred from the
// extension of path, defaulting to Markdown.
func ParseFormat(name, path string) (string, error) {
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(path), ".")
		if name == "" {
			return FormatMarkdown, nil
		}
	}
	switch strings.ToLower(name) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported report format %q (want md, html or json)", name)
}

// Markdown renders the report as a Markdown document.
func (r *Report) Markdown() string {
	var b strings.Builder

	b.WriteString("# Mouse Dynamics Report\n\n")
	fmt.Fprintf(&b, "- **Report ID:** %s\n", r.ID)
	fmt.Fprintf(&b, "- **Generated:** %s\n", r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- **Explainer:** %s\n\n", r.Explainer)

	b.WriteString("## Assessment\n\n")
	b.WriteString(strings.TrimSpace(r.Narrative))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "## Classification: %s (%d/%d indicators)\n\n",
		r.Classification.Verdict, r.Classification.Score, len(r.Classification.Indicators))
	b.WriteString("| Indicator | Value | Threshold | Human-like |\n")
	b.WriteString("|---|---:|---:|:---:|\n")
	for _, ind := range r.Classification.Indicators {
		mark := "no"
		if ind.HumanLike {
			mark = "yes"
		}
		fmt.Fprintf(&b, "| %s | %.4f | %.4g | %s |\n", ind.Name, ind.Value, ind.Threshold, mark)
	}
	b.WriteString("\n")

	b.WriteString("## Comparison\n\n")
	if r.Comparison == nil {
		b.WriteString("No reference profile was supplied.\n\n")
	} else {
		c := *r.Comparison
		b.WriteString("| Metric | Delta |\n|---|---:|\n")
		fmt.Fprintf(&b, "| Latency | %.1f%% |\n", c.LatencyDelta)
		fmt.Fprintf(&b, "| Velocity | %.1f%% |\n", c.VelocityDelta)
		fmt.Fprintf(&b, "| Path deviation | %.1f%% |\n", c.PathDeviationDelta)
		fmt.Fprintf(&b, "| Click precision | %.1f%% |\n", c.PrecisionDelta)
		fmt.Fprintf(&b, "| **Average** | **%.1f%%** |\n\n", compare.AverageDelta(c))
		fmt.Fprintf(&b, "Bucket: **%s**\n\n", explain.BucketFor(r.Comparison))
	}

	b.WriteString("## Features\n\n")
	b.WriteString("| Feature | Value | Unit |\n|---|---:|---|\n")
	for _, f := range r.Features.Fields() {
		fmt.Fprintf(&b, "| %s | %.4f | %s |\n", f.Name, f.Value, f.Unit)
	}

	return b.String()
}

// HTML renders the Markdown document to a standalone HTML page.
func (r *Report) HTML() (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(r.Markdown()), &body); err != nil {
		return "", fmt.Errorf("render report html: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>Mouse Dynamics Report %s</title>\n", r.ID)
	b.WriteString("</head>\n<body>\n")
	b.Write(body.Bytes())
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

// Render returns the report in the given format.
func (r *Report) Render(format string) ([]byte, error) {
	switch format {
	case FormatMarkdown:
		return []byte(r.Markdown()), nil
	case FormatHTML:
		s, err := r.HTML()
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode report json: %w", err)
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("unsupported report format %q", format)
}

// WriteFile renders the report and writes it atomically to path.
func (r *Report) WriteFile(path, format string) error {
	data, err := r.Render(format)
	if err != nil {
		return err
	}
	if err := fileutil.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
