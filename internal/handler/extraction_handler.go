package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vocalis/internal/domain"
	"vocalis/internal/extract"
)

// TranscriptAnalyzer runs the full transcript extraction pipeline.
type TranscriptAnalyzer interface {
	ExtractClientData(ctx context.Context, transcript string) domain.Record
}

// RecordNormalizer runs the normalization stage on its own, for callers that
// already hold a structured record.
type RecordNormalizer interface {
	Normalize(record domain.Record, transcript string) domain.Record
}

// ExtractionHandler handles transcript extraction endpoints.
type ExtractionHandler struct {
	analyzer   TranscriptAnalyzer
	normalizer RecordNormalizer
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(analyzer TranscriptAnalyzer, normalizer RecordNormalizer) *ExtractionHandler {
	return &ExtractionHandler{analyzer: analyzer, normalizer: normalizer}
}

type extractRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// Extract handles POST /api/v1/extractions
func (h *ExtractionHandler) Extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "transcript is required")
		return
	}
	if strings.TrimSpace(req.Transcript) == "" {
		RespondError(c, http.StatusBadRequest, "EMPTY_TRANSCRIPT", "transcript must not be blank")
		return
	}

	record := h.analyzer.ExtractClientData(c.Request.Context(), req.Transcript)
	RespondOK(c, record)
}

type normalizeRequest struct {
	Record     domain.Record `json:"record" binding:"required"`
	Transcript string        `json:"transcript"`
}

// Normalize handles POST /api/v1/extractions/normalize
func (h *ExtractionHandler) Normalize(c *gin.Context) {
	var req normalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "record is required")
		return
	}

	record := h.normalizer.Normalize(req.Record, req.Transcript)
	RespondOK(c, record)
}

// Sections handles GET /api/v1/extractions/sections
func (h *ExtractionHandler) Sections(c *gin.Context) {
	RespondOK(c, extract.Sections())
}
