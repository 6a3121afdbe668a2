package server

import (
	"encoding/json"
	"log"
	"net/http"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ibero-edu/microcred-recommender/internal/db"
	"github.com/ibero-edu/microcred-recommender/internal/kb"
	"github.com/ibero-edu/microcred-recommender/internal/types"
)

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	Text               string  `json:"text" validate:"required"`
	DocumentName       string  `json:"document_name,omitempty"`
	MaxTerms           int     `json:"max_terms,omitempty" validate:"gte=0"`
	TopCourses         int     `json:"top_courses,omitempty" validate:"gte=0"`
	TopSpecializations int     `json:"top_specializations,omitempty" validate:"gte=0"`
	MaxExternal        int     `json:"max_external,omitempty" validate:"gte=0"`
	MinScore           float64 `json:"min_score,omitempty" validate:"gte=0,lte=1"`
}

// AnalyzeResponse represents the response for /analyze
type AnalyzeResponse struct {
	RunID           string                 `json:"run_id,omitempty"`
	Recommendations *types.Recommendations `json:"recommendations"`
}

var requestValidator = validator.New()

// handleAnalyze runs one analysis over the posted document text and
// returns the recommendations synchronously. When persistence is
// available the run and its results are stored and the run ID returned.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := requestValidator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	opts := s.opts
	if req.MaxTerms > 0 {
		opts.MaxTerms = req.MaxTerms
	}
	if req.TopCourses > 0 {
		opts.TopCourses = req.TopCourses
	}
	if req.TopSpecializations > 0 {
		opts.TopSpecializations = req.TopSpecializations
	}
	if req.MaxExternal > 0 {
		opts.MaxExternal = req.MaxExternal
	}
	if req.MinScore > 0 {
		opts.MinScore = req.MinScore
	}

	documentName := req.DocumentName
	if documentName == "" {
		documentName = "(sin nombre)"
	}

	var runID uuid.UUID
	if s.db != nil {
		id, err := s.db.CreateAnalysis(r.Context(), documentName, utf8.RuneCountInString(req.Text))
		if err != nil {
			log.Printf("Warning: failed to persist analysis run: %v", err)
		} else {
			runID = id
		}
	}

	rec, err := s.engine.Analyze(r.Context(), req.Text, opts)
	if err != nil {
		if s.db != nil && runID != uuid.Nil {
			_ = s.db.CompleteAnalysis(r.Context(), runID, db.StatusFailed)
		}
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	if s.db != nil && runID != uuid.Nil {
		if err := s.db.SaveRecommendations(r.Context(), runID, rec); err != nil {
			log.Printf("Warning: failed to save recommendations: %v", err)
		}
		_ = s.db.CompleteAnalysis(r.Context(), runID, db.StatusCompleted)
	}

	resp := AnalyzeResponse{Recommendations: rec}
	if runID != uuid.Nil {
		resp.RunID = runID.String()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCatalogStats returns the loaded catalog summary
func (s *Server) handleCatalogStats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.stats)
}

// handleSources returns the external knowledge base as plain text, the
// same reference users can download from the CLI.
func (s *Server) handleSources(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(kb.SourcesText())); err != nil {
		log.Printf("Error writing sources response: %v", err)
	}
}

// handleListAnalyses lists recent stored analysis runs
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	filters := db.AnalysisFilters{
		Status: r.URL.Query().Get("status"),
	}

	runs, err := s.db.ListAnalyses(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list analyses: "+err.Error())
		return
	}
	if runs == nil {
		runs = []db.Analysis{}
	}
	s.jsonResponse(w, http.StatusOK, runs)
}

// handleGetAnalysis returns one stored analysis run
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	run, err := s.db.GetAnalysis(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get analysis: "+err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

// handleGetRecommendations returns the stored results of a run
func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	rec, err := s.db.GetRecommendations(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get recommendations: "+err.Error())
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Recommendations not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteAnalysis removes a stored run and its results
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteAnalysis(r.Context(), runID); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// pathUUID parses a UUID path segment, writing the error response itself
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	idStr := r.PathValue(name)
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing "+name+" path parameter")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid UUID: "+idStr)
		return uuid.Nil, false
	}
	return id, true
}
