package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibero-edu/microcred-recommender/internal/index"
	"github.com/ibero-edu/microcred-recommender/internal/pipeline"
	"github.com/ibero-edu/microcred-recommender/internal/types"
)

// setupTestServer builds a server around a small fitted engine, without a
// database. Persistence-dependent paths are covered by integration tests.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	courses := index.NewCourseIndex()
	courses.Fit([]types.Course{
		{Name: "Python para análisis", CombinedText: "python python python datos"},
		{Name: "Estadística con datos", CombinedText: "datos datos datos python"},
		{Name: "Marketing digital", CombinedText: "marketing ventas publicidad redes"},
	})

	specs := index.NewSpecializationIndex()
	specs.Fit([]types.Specialization{
		{Name: "Análisis de Datos", CombinedText: "análisis datos python estadística"},
	})

	return &Server{
		engine: &pipeline.Engine{Courses: courses, Specializations: specs},
		stats:  types.CatalogStats{TotalCourses: 3, AvgHours: 9.5, Domains: 2, Languages: 1},
	}
}

func TestHandleAnalyze_Success(t *testing.T) {
	s := setupTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{
		Text: "Programa de análisis de datos con python. El curso desarrolla competencias de " +
			"programación en python y estadística aplicada para estudiantes de posgrado.",
	})
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Recommendations)
	assert.Empty(t, resp.RunID, "no run is recorded without a database")
	assert.NotEmpty(t, resp.Recommendations.Terms)
	require.NotEmpty(t, resp.Recommendations.Courses)
	assert.Equal(t, "Python para análisis", resp.Recommendations.Courses[0].Course.Name)
}

func TestHandleAnalyze_InvalidJSON(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestHandleAnalyze_MissingText(t *testing.T) {
	s := setupTestServer(t)

	body, _ := json.Marshal(map[string]any{"max_terms": 5})
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation error")
}

func TestHandleAnalyze_MinScoreOutOfRange(t *testing.T) {
	s := setupTestServer(t)

	body, _ := json.Marshal(map[string]any{"text": "documento", "min_score": 1.5})
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation error")
}

func TestHandleAnalyze_RequestLimitsApplied(t *testing.T) {
	s := setupTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{
		Text: "Programa de análisis de datos con python. El curso desarrolla competencias de " +
			"programación en python y estadística aplicada para estudiantes de posgrado.",
		TopCourses: 1,
		MaxTerms:   3,
	})
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.LessOrEqual(t, len(resp.Recommendations.Courses), 1)
	assert.LessOrEqual(t, len(resp.Recommendations.Terms), 3)
}

func TestHandleCatalogStats(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog/stats", nil)
	w := httptest.NewRecorder()

	s.handleCatalogStats(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stats types.CatalogStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalCourses)
	assert.Equal(t, 9.5, stats.AvgHours)
}

func TestHandleSources(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/sources", nil)
	w := httptest.NewRecorder()

	s.handleSources(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "FUENTES DE DATOS EXTERNAS")
}

func TestHandleHealth(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var health map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])
}

func TestHandleGetAnalysis_InvalidUUID(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/analyses/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetAnalysis(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid UUID")
}
