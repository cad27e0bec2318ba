package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/study-search/internal/types"
)

// maxRequestBody caps request payload size (question plus document text).
const maxRequestBody = 10 << 20 // 10 MiB

// handleSearch answers a question against the supplied document text.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req types.SearchRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "question and document are required")
		return
	}

	result := s.engine.Search(req.Question, req.Document)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleDetect parses a question without solving it.
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req types.DetectRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	parsed := s.engine.Detect(req.Question)
	s.jsonResponse(w, http.StatusOK, parsed)
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON decodes the request body, writing an error response on failure.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON request body")
		return err
	}
	return nil
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
