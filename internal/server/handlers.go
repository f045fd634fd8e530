package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/sanitize"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// resumePreviewChars is how much of the resume text is kept alongside a
// stored analysis. The full text is never persisted.
const resumePreviewChars = 500

// PredictResponse wraps a prediction with the stored record ID and any
// validation warnings about the input text.
type PredictResponse struct {
	*types.PredictionResult
	ID       string   `json:"id,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// AnalyzeResponse wraps a deep analysis the same way.
type AnalyzeResponse struct {
	*types.AnalysisResult
	ID       string   `json:"id,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// handlePredict handles POST /predict: classify a resume and return the
// prediction. The result is stored best-effort; storage failure does not
// fail the request.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	text, warnings, ok := s.decodeResumeText(w, r)
	if !ok {
		return
	}

	result, err := s.engine.Predict(text)
	if err != nil {
		log.Printf("Error during prediction: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Prediction failed")
		return
	}

	resp := PredictResponse{PredictionResult: result, Warnings: warnings}
	if id, ok := s.storePrediction(r, text, result, nil); ok {
		resp.ID = id.String()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnalyze handles POST /analyze: the full prediction plus text
// metrics, sections, keywords, and readability.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	text, warnings, ok := s.decodeResumeText(w, r)
	if !ok {
		return
	}

	result, err := s.engine.Analyze(text)
	if err != nil {
		log.Printf("Error during analysis: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	resp := AnalyzeResponse{AnalysisResult: result, Warnings: warnings}
	if id, ok := s.storePrediction(r, text, &result.PredictionResult, result); ok {
		resp.ID = id.String()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCategories returns the closed set of job categories the model
// can predict.
func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	labels := s.engine.Labels()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"categories": labels,
		"count":      len(labels),
	})
}

// handleStoreResult handles POST /results: store a caller-supplied
// analysis result explicitly.
func (s *Server) handleStoreResult(w http.ResponseWriter, r *http.Request) {
	var req types.StoreResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	device := req.DeviceType
	if device == "" {
		device = r.UserAgent()
	}

	rec := analysisRecord(req.ResumeText, &req.Result.PredictionResult, req.Result)
	rec.Device = device

	id, err := s.store.SaveAnalysis(r.Context(), rec)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String(), "status": "stored"})
}

// handleHistory handles GET /history: list stored analyses, newest
// first. Supports limit, offset, category, and source query parameters.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	filters := db.AnalysisFilters{
		JobCategory: r.URL.Query().Get("category"),
		Source:      r.URL.Query().Get("source"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		filters.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid offset")
			return
		}
		filters.Offset = n
	}

	analyses, err := s.store.ListAnalyses(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

// handleGetAnalysis handles GET /analyses/{id}
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if analysis == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleDeleteAnalysis handles DELETE /analyses/{id}
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteAnalysis(r.Context(), id); err != nil {
		if err.Error() == "analysis not found: "+id.String() {
			s.errorResponse(w, http.StatusNotFound, "Analysis not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleFeedback handles POST /analyses/{id}/feedback
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req types.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	// Feedback must reference an existing analysis
	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if analysis == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	feedbackID, err := s.store.SaveFeedback(r.Context(), id, req.Rating, req.Comment)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": feedbackID.String()})
}

// handleListFeedback handles GET /analyses/{id}/feedback
func (s *Server) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	feedback, err := s.store.ListFeedback(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"feedback": feedback,
		"count":    len(feedback),
	})
}

// decodeResumeText decodes and validates an AnalyzeRequest, sanitizes
// the text, and rejects input that sanitizes down to nothing. Writes the
// error response itself when validation fails.
func (s *Server) decodeResumeText(w http.ResponseWriter, r *http.Request) (string, []string, bool) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return "", nil, false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return "", nil, false
	}

	text := sanitize.Sanitize(req.ResumeText)
	if strings.TrimSpace(text) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Resume text is empty")
		return "", nil, false
	}

	return text, types.ResumeTextWarnings(text), true
}

// storePrediction stores an analysis record best-effort. A nil analysis
// means the record came from /predict and carries no text metrics.
func (s *Server) storePrediction(r *http.Request, text string, prediction *types.PredictionResult, analysis *types.AnalysisResult) (uuid.UUID, bool) {
	rec := analysisRecord(text, prediction, analysis)
	rec.Device = r.UserAgent()

	id, err := s.store.SaveAnalysis(r.Context(), rec)
	if err != nil {
		log.Printf("Warning: failed to store analysis: %v", err)
		return uuid.Nil, false
	}
	return id, true
}

// analysisRecord builds a db.Analysis from a prediction and optional
// deep-analysis metrics.
func analysisRecord(text string, prediction *types.PredictionResult, analysis *types.AnalysisResult) *db.Analysis {
	rec := &db.Analysis{
		ResumeHash:      hashResume(text),
		ResumePreview:   previewResume(text),
		JobCategory:     prediction.JobCategory,
		Confidence:      prediction.Confidence,
		Skills:          db.StringArray(prediction.Skills),
		ExperienceLevel: string(prediction.ExperienceLevel),
		Summary:         prediction.Summary,
		Source:          "prediction",
	}
	if analysis != nil {
		rec.Source = "analysis"
		rec.WordCount = analysis.WordCount
		rec.CharacterCount = analysis.CharacterCount
		rec.AvgSentenceLength = analysis.AvgSentenceLength
		rec.Sections = db.StringArray(analysis.Sections)
		rec.Keywords = db.StringArray(analysis.Keywords)
		rec.ReadabilityScore = analysis.ReadabilityScore
	}
	return rec
}

// hashResume returns the hex SHA-256 of the resume text.
func hashResume(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// previewResume returns the first resumePreviewChars runes of the text.
func previewResume(text string) string {
	runes := []rune(text)
	if len(runes) <= resumePreviewChars {
		return text
	}
	return string(runes[:resumePreviewChars])
}

// pathID parses the {id} path segment as a UUID, writing a 400 on
// failure.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return uuid.Nil, false
	}
	return id, true
}
