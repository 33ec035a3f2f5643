package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harrison/clickprint/internal/classify"
	"github.com/harrison/clickprint/internal/compare"
	"github.com/harrison/clickprint/internal/explain"
	"github.com/harrison/clickprint/internal/features"
	"github.com/harrison/clickprint/internal/logger"
	"github.com/harrison/clickprint/internal/models"
)

// CompareRequest pairs an enrolled reference profile with a new attempt.
type CompareRequest struct {
	Reference *models.BiometricFeatures `json:"reference"`
	Attempt   *models.Session           `json:"attempt"`
}

// CompareResponse is returned by /v1/compare.
type CompareResponse struct {
	Features     models.BiometricFeatures `json:"features"`
	Comparison   models.FeatureComparison `json:"comparison"`
	AverageDelta float64                  `json:"averageDelta"`
	Bucket       string                   `json:"bucket"`
}

// ClassifyResponse is returned by /v1/classify.
type ClassifyResponse struct {
	Features       models.BiometricFeatures `json:"features"`
	Classification classify.Result          `json:"classification"`
}

// ExplainRequest is CompareRequest with an optional reference.
type ExplainRequest = CompareRequest

// ExplainResponse is returned by /v1/explain.
type ExplainResponse struct {
	Features   models.BiometricFeatures  `json:"features"`
	Comparison *models.FeatureComparison `json:"comparison,omitempty"`
	Narrative  string                    `json:"narrative"`
	Explainer  string                    `json:"explainer"`
}

// AnalysisHandler serves the feature pipeline over HTTP.
type AnalysisHandler struct {
	explainer explain.Explainer
	log       logger.Logger
}

func NewAnalysisHandler(explainer explain.Explainer, log logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{explainer: explainer, log: log}
}

func (h *AnalysisHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "explainer": h.explainer.Name()})
}

func (h *AnalysisHandler) Features(c *gin.Context) {
	var session models.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		h.badRequest(c, err)
		return
	}
	if !h.validate(c, &session) {
		return
	}
	c.JSON(http.StatusOK, features.Extract(&session))
}

func (h *AnalysisHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	if req.Reference == nil {
		h.badRequest(c, errors.New("reference is required"))
		return
	}
	if req.Attempt == nil {
		h.badRequest(c, errors.New("attempt is required"))
		return
	}
	if !h.validate(c, req.Attempt) {
		return
	}

	f := features.Extract(req.Attempt)
	cmp := compare.Features(*req.Reference, f)
	avg := compare.AverageDelta(cmp)
	c.JSON(http.StatusOK, CompareResponse{
		Features:     f,
		Comparison:   cmp,
		AverageDelta: avg,
		Bucket:       explain.Bucket(avg),
	})
}

func (h *AnalysisHandler) Classify(c *gin.Context) {
	var session models.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		h.badRequest(c, err)
		return
	}
	if !h.validate(c, &session) {
		return
	}

	f := features.Extract(&session)
	c.JSON(http.StatusOK, ClassifyResponse{Features: f, Classification: classify.Classify(f)})
}

func (h *AnalysisHandler) Explain(c *gin.Context) {
	var req ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	if req.Attempt == nil {
		h.badRequest(c, errors.New("attempt is required"))
		return
	}
	if !h.validate(c, req.Attempt) {
		return
	}

	f := features.Extract(req.Attempt)
	var cmp *models.FeatureComparison
	if req.Reference != nil {
		fc := compare.Features(*req.Reference, f)
		cmp = &fc
	}

	narrative, err := h.explainer.Explain(c.Request.Context(), f, cmp)
	if err != nil {
		h.log.LogError("Failed to explain attempt: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate explanation"})
		return
	}

	c.JSON(http.StatusOK, ExplainResponse{
		Features:   f,
		Comparison: cmp,
		Narrative:  narrative,
		Explainer:  h.explainer.Name(),
	})
}

// validate rejects malformed sessions with 422 unless ?lenient=true.
func (h *AnalysisHandler) validate(c *gin.Context, s *models.Session) bool {
	if c.Query("lenient") == "true" {
		return true
	}
	if err := s.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func (h *AnalysisHandler) badRequest(c *gin.Context, err error) {
	h.log.LogDebug("Failed to bind request: " + err.Error())
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data: " + err.Error()})
}
