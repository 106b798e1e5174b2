package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/resume-skills/internal/classifier"
	"github.com/spigell/resume-skills/internal/document"
	"github.com/spigell/resume-skills/internal/output"
	"github.com/spigell/resume-skills/internal/resume"
	"github.com/spigell/resume-skills/internal/skills"
	"github.com/spigell/resume-skills/internal/store"
)

type textRequest struct {
	Text       string   `json:"text"`
	Candidates []string `json:"candidates,omitempty"`
}

type findingsResponse struct {
	Skills []skills.Finding `json:"skills"`
	Count  int              `json:"count"`
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	var (
		analysis *resume.Analysis
		err      error
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		analysis, err = s.processMultipart(r)
	} else {
		var req textRequest
		if err = decodeJSON(r, &req); err == nil {
			analysis, err = s.analyzer.ProcessText(r.Context(), req.Text)
		}
	}
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	if s.store != nil {
		if err := s.store.Save(r.Context(), analysis); err != nil {
			s.logger.Error("saving analysis failed", zap.String("id", analysis.ID.String()), zap.Error(err))
			s.errorResponse(w, err)
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

func (s *Server) processMultipart(r *http.Request) (*resume.Analysis, error) {
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		return nil, badRequest(fmt.Errorf("parse multipart form: %w", err))
	}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return s.analyzer.ProcessText(r.Context(), r.FormValue("text"))
	}
	if err != nil {
		return nil, badRequest(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, badRequest(fmt.Errorf("read upload: %w", err))
	}
	return s.analyzer.ProcessBytes(r.Context(), header.Filename, data)
}

func (s *Server) handleRuleBased(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	findings, err := s.analyzer.RuleBased(req.Text)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, findingsResponse{Skills: findings, Count: len(findings)})
}

func (s *Server) handleZeroShot(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	findings, err := s.analyzer.ZeroShot(r.Context(), req.Text, req.Candidates)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, findingsResponse{Skills: findings, Count: len(findings)})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	profile, err := s.analyzer.Profile(r.Context(), req.Text)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	if _, err := w.Write(output.Schema()); err != nil {
		s.logger.Warn("error writing schema", zap.Error(err))
	}
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.jsonResponse(w, http.StatusNotImplemented, map[string]string{"error": "store is not configured"})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, badRequest(fmt.Errorf("invalid limit %q", raw)))
			return
		}
		limit = n
	}

	records, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": records, "total": len(records)})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.jsonResponse(w, http.StatusNotImplemented, map[string]string{"error": "store is not configured"})
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, badRequest(fmt.Errorf("invalid analysis id: %w", err)))
		return
	}

	analysis, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	body := map[string]any{
		"status": "ok",
		"stages": s.analyzer.Describe(),
	}
	if s.models != nil {
		body["models"] = s.models.Info()
	}
	s.jsonResponse(w, http.StatusOK, body)
}

type requestError struct{ err error }

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func badRequest(err error) error { return &requestError{err: err} }

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest(fmt.Errorf("decode request: %w", err))
	}
	return nil
}

// statusOf maps domain errors to HTTP statuses.
func statusOf(err error) int {
	var (
		reqErr     *requestError
		valErr     *skills.ValidationError
		extErr     *document.ExtractionError
		maxErr     *http.MaxBytesError
		unavailErr *classifier.ModelUnavailableError
	)

	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &reqErr), errors.As(err, &valErr):
		return http.StatusBadRequest
	case errors.As(err, &extErr):
		switch extErr.Reason {
		case document.ReasonUnsupported:
			return http.StatusUnsupportedMediaType
		case document.ReasonNoText, document.ReasonUnreadable:
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case resume.IsClassifierDisabled(err):
		return http.StatusNotImplemented
	case errors.As(err, &unavailErr):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := output.WriteJSON(w, data); err != nil {
		s.logger.Warn("error encoding JSON response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	s.jsonResponse(w, status, map[string]string{"error": strings.TrimSpace(err.Error())})
}
