package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocalis/internal/domain"
)

type stubAnalyzer struct {
	record domain.Record
}

func (s *stubAnalyzer) ExtractClientData(ctx context.Context, transcript string) domain.Record {
	return s.record
}

type stubNormalizer struct{}

func (s *stubNormalizer) Normalize(record domain.Record, transcript string) domain.Record {
	record["normalized"] = true
	return record
}

func setupTestRouter(h *ExtractionHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/extractions", h.Extract)
	r.POST("/api/v1/extractions/normalize", h.Normalize)
	r.GET("/api/v1/extractions/sections", h.Sections)
	return r
}

func TestExtract(t *testing.T) {
	h := NewExtractionHandler(&stubAnalyzer{record: domain.Record{"nom": "Dupont"}}, &stubNormalizer{})
	r := setupTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extractions",
		strings.NewReader(`{"transcript": "je m'appelle Jean Dupont"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Dupont", data["nom"])
}

func TestExtract_MissingTranscript(t *testing.T) {
	h := NewExtractionHandler(&stubAnalyzer{}, &stubNormalizer{})
	r := setupTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extractions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtract_BlankTranscript(t *testing.T) {
	h := NewExtractionHandler(&stubAnalyzer{}, &stubNormalizer{})
	r := setupTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extractions",
		strings.NewReader(`{"transcript": "   "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNormalizeEndpoint(t *testing.T) {
	h := NewExtractionHandler(&stubAnalyzer{}, &stubNormalizer{})
	r := setupTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extractions/normalize",
		strings.NewReader(`{"record": {"nom": "Dupont"}, "transcript": ""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, true, data["normalized"])
}

func TestSections(t *testing.T) {
	h := NewExtractionHandler(&stubAnalyzer{}, &stubNormalizer{})
	r := setupTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/extractions/sections", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	sections := resp.Data.([]any)
	assert.Len(t, sections, 12)
	assert.Equal(t, "client", sections[0])
}
