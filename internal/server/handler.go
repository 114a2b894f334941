// Package server exposes lookups and history management over JSON HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/history"
	"github.com/at-ishikawa/glossa/internal/lookup"
)

const maxBodyBytes = 1 << 16

// HealthCheck reports whether a dependency is usable.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Handler routes the lookup and history endpoints.
type Handler struct {
	service  *lookup.Service
	recorder *history.Recorder
	checks   []HealthCheck

	mux *http.ServeMux
}

// NewHandler creates a Handler. recorder may be nil, in which case the
// history endpoints answer 503.
func NewHandler(service *lookup.Service, recorder *history.Recorder, checks ...HealthCheck) *Handler {
	h := &Handler{
		service:  service,
		recorder: recorder,
		checks:   checks,
		mux:      http.NewServeMux(),
	}
	h.mux.HandleFunc("POST /lookup", h.handleLookup)
	h.mux.HandleFunc("GET /lookup/{lang}/{word}", h.handleLookupResult)
	h.mux.HandleFunc("GET /definitions", h.handleDefinitions)
	h.mux.HandleFunc("GET /settings/history", h.handleGetHistorySetting)
	h.mux.HandleFunc("PUT /settings/history", h.handlePutHistorySetting)
	h.mux.HandleFunc("GET /healthz", h.handleHealthz)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// handleLookup answers with the collapsed reply and always 200, so callers
// that only understand {} / {"content":{}} / {"content":{...}} keep working.
// An unusable request gets {} like any other failed lookup.
func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	var req lookup.Request
	if err := decodeJSON(r, &req); err != nil {
		slog.Default().DebugContext(r.Context(), "ignoring lookup request", "error", err)
		writeJSON(w, r, http.StatusOK, lookup.Reply{})
		return
	}
	if strings.TrimSpace(req.Word) == "" || strings.TrimSpace(req.Lang) == "" {
		slog.Default().DebugContext(r.Context(), "ignoring lookup request without word or lang", "word", req.Word, "lang", req.Lang)
		writeJSON(w, r, http.StatusOK, lookup.Reply{})
		return
	}

	writeJSON(w, r, http.StatusOK, h.service.Handle(r.Context(), req))
}

type lookupResultResponse struct {
	Status     string              `json:"status"`
	Content    *dictionary.Content `json:"content,omitempty"`
	StatusCode int                 `json:"upstreamStatus,omitempty"`
	Error      string              `json:"error,omitempty"`
}

func (h *Handler) handleLookupResult(w http.ResponseWriter, r *http.Request) {
	req := lookup.Request{
		Lang: r.PathValue("lang"),
		Word: r.PathValue("word"),
	}
	result := h.service.Lookup(r.Context(), req)

	resp := lookupResultResponse{
		Status:     result.Status.String(),
		Content:    lookup.ReplyFrom(result).Content,
		StatusCode: result.StatusCode,
	}
	if result.Err != nil {
		resp.Error = result.Err.Error()
	}
	writeJSON(w, r, httpStatus(result.Status), resp)
}

func httpStatus(status dictionary.Status) int {
	switch status {
	case dictionary.StatusFound, dictionary.StatusNoDefinitions:
		return http.StatusOK
	case dictionary.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

type definitionsResponse struct {
	Definitions map[string]string `json:"definitions"`
}

func (h *Handler) handleDefinitions(w http.ResponseWriter, r *http.Request) {
	if !h.requireRecorder(w, r) {
		return
	}
	definitions, err := h.recorder.Definitions(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, r, http.StatusOK, definitionsResponse{Definitions: definitions})
}

func (h *Handler) handleGetHistorySetting(w http.ResponseWriter, r *http.Request) {
	if !h.requireRecorder(w, r) {
		return
	}
	setting, err := h.recorder.Setting(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, r, http.StatusOK, setting)
}

type historySettingRequest struct {
	Enabled *bool `json:"enabled"`
}

func (h *Handler) handlePutHistorySetting(w http.ResponseWriter, r *http.Request) {
	if !h.requireRecorder(w, r) {
		return
	}
	var req historySettingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if req.Enabled == nil {
		writeError(w, r, http.StatusBadRequest, errors.New("enabled is required"))
		return
	}
	if err := h.recorder.SetEnabled(r.Context(), *req.Enabled); err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, r, http.StatusOK, history.Setting{Enabled: *req.Enabled})
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	code := http.StatusOK
	for _, check := range h.checks {
		if resp.Checks == nil {
			resp.Checks = make(map[string]string, len(h.checks))
		}
		if err := check.Check(r.Context()); err != nil {
			resp.Checks[check.Name] = err.Error()
			resp.Status = "unavailable"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[check.Name] = "ok"
	}
	writeJSON(w, r, code, resp)
}

func (h *Handler) requireRecorder(w http.ResponseWriter, r *http.Request) bool {
	if h.recorder != nil {
		return true
	}
	writeError(w, r, http.StatusServiceUnavailable, errors.New("history storage is not configured"))
	return false
}

func decodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, code int, err error) {
	if code >= http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, r, code, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().WarnContext(r.Context(), "failed to write response", "path", r.URL.Path, "error", err)
	}
}
