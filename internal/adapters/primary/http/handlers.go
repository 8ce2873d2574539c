package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
	Time      time.Time `json:"time"`
}

// SlidesRequest is the JSON form of a POST /api/slides body
type SlidesRequest struct {
	Markdown string `json:"markdown"`
}

// SlidesResponse represents the slides API response
type SlidesResponse struct {
	Title    string                 `json:"title,omitempty"`
	Author   string                 `json:"author,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Slides   []entities.Slide       `json:"slides"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth reports liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// handleSlides extracts slides from the markdown request body.
// The body is raw markdown unless Content-Type is application/json.
func (s *Server) handleSlides(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.GetMaxBodyBytes()))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.recordFailure("too_large")
			s.writeError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.recordFailure("read")
		s.writeError(w, r, http.StatusBadRequest, "reading request body failed")
		return
	}

	if isJSON(r.Header.Get("Content-Type")) {
		var req SlidesRequest
		if err := json.Unmarshal(body, &req); err != nil {
			s.recordFailure("bad_json")
			s.writeError(w, r, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}
		body = []byte(req.Markdown)
	}

	if s.metrics != nil {
		s.metrics.DocumentBytes.Observe(float64(len(body)))
	}

	presentation, err := s.presenter.ExtractPresentation(r.Context(), body)
	if err != nil {
		status, reason := http.StatusInternalServerError, "internal"
		if entities.IsInputError(err) {
			status, reason = http.StatusBadRequest, "input"
		}
		s.recordFailure(reason)
		s.logger.Warn("slide extraction failed",
			slog.String("request_id", RequestIDFromContext(r.Context())),
			slog.String("error", err.Error()),
		)
		s.writeError(w, r, status, err.Error())
		return
	}

	if s.metrics != nil {
		s.metrics.SlidesExtracted.Add(float64(len(presentation.Slides)))
	}

	s.writeJSON(w, r, http.StatusOK, SlidesResponse{
		Title:    presentation.Title,
		Author:   presentation.Author,
		Metadata: presentation.Metadata,
		Slides:   presentation.Slides,
	})
}

// writeJSON encodes v, indenting when ?pretty is truthy
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if pretty, _ := strconv.ParseBool(r.URL.Query().Get("pretty")); pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		s.logger.Error("encoding response failed", slog.String("error", err.Error()))
	}
}

// writeError sends a JSON error body with the status text as the error code
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.writeJSON(w, r, status, ErrorResponse{
		Error:     http.StatusText(status),
		Message:   message,
		RequestID: RequestIDFromContext(r.Context()),
		Time:      time.Now().UTC(),
	})
}

// recordFailure counts a rejected extraction request
func (s *Server) recordFailure(reason string) {
	if s.metrics != nil {
		s.metrics.ExtractFailures.WithLabelValues(reason).Inc()
	}
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}
