package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic"
	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic/ast"
	"github.com/BrunoMiglioretto/Parser-Latex/internal/history"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/cache"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/health"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/logging"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/version"
)

// ParseRequest represents a parse request for one or more formulas
type ParseRequest struct {
	Formula  string   `json:"formula,omitempty"`
	Formulas []string `json:"formulas,omitempty"`
}

// ParseResult represents the outcome for a single formula
type ParseResult struct {
	Input    string `json:"input"`
	OK       bool   `json:"ok"`
	Rendered string `json:"rendered,omitempty"`
	Tree     string `json:"tree,omitempty"`
	Error    string `json:"error,omitempty"`
	Stage    string `json:"stage,omitempty"`
	Nodes    int    `json:"nodes,omitempty"`
	Depth    int    `json:"depth,omitempty"`
	Duration string `json:"duration,omitempty"`
	Cached   bool   `json:"cached,omitempty"`
}

// ParseResponse represents a parse response
type ParseResponse struct {
	RequestID string        `json:"request_id"`
	Results   []ParseResult `json:"results"`
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
}

// HistoryResponse represents a page of history records
type HistoryResponse struct {
	Records []HistoryRecord `json:"records"`
	Total   int             `json:"total"`
}

// HistoryRecord represents a single recorded parse
type HistoryRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Input     string    `json:"input"`
	OK        bool      `json:"ok"`
	Rendered  string    `json:"rendered,omitempty"`
	Error     string    `json:"error,omitempty"`
	Nodes     int       `json:"nodes,omitempty"`
	Depth     int       `json:"depth,omitempty"`
}

// HistoryStatsResponse represents aggregate history statistics
type HistoryStatsResponse struct {
	Total     int64            `json:"total"`
	Succeeded int64            `json:"succeeded"`
	Failed    int64            `json:"failed"`
	BySource  map[string]int64 `json:"by_source,omitempty"`
	LastParse time.Time        `json:"last_parse,omitempty"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Handler handles HTTP requests for the parser gateway
type Handler struct {
	engine    *logic.Engine
	store     history.Store
	recorder  *history.Writer
	results   *cache.ResultCache
	healthReg *health.Registry
	logger    *logging.Logger
	startTime time.Time
}

// NewHandler creates a new API handler. The store and recorder may be nil
// when history is disabled; a nil results cache disables verdict caching.
func NewHandler(engine *logic.Engine, store history.Store, recorder *history.Writer, results *cache.ResultCache, healthReg *health.Registry) *Handler {
	return &Handler{
		engine:    engine,
		store:     store,
		recorder:  recorder,
		results:   results,
		healthReg: healthReg,
		logger:    logging.New("gateway-handler"),
		startTime: time.Now(),
	}
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")

	switch path {
	case "":
		h.handleRoot(w, r)
	case "parse":
		h.handleParse(w, r)
	case "health":
		h.handleHealth(w, r)
	case "version":
		h.handleVersion(w, r)
	case "history":
		h.handleHistory(w, r)
	case "history/stats":
		h.handleHistoryStats(w, r)
	default:
		h.writeError(w, http.StatusNotFound, "not_found", "Endpoint not found", "")
	}
}

// handleRoot handles the root endpoint
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"name":    "latexp API",
		"version": version.Version,
		"endpoints": []string{
			"POST /api/v1/parse",
			"GET  /api/v1/health",
			"GET  /api/v1/version",
			"GET  /api/v1/history",
			"GET  /api/v1/history/stats",
			"GET  /ws",
		},
	}
	h.writeJSON(w, http.StatusOK, info)
}

// handleParse parses one formula or a batch of formulas
func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use POST", "")
		return
	}

	var req ParseRequest
	if err := h.readJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON", err.Error())
		return
	}

	lines := req.Formulas
	if req.Formula != "" {
		lines = append([]string{req.Formula}, lines...)
	}
	if len(lines) == 0 {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Formula required", "")
		return
	}

	requestID := uuid.New().String()

	resp := ParseResponse{
		RequestID: requestID,
		Results:   make([]ParseResult, len(lines)),
		Total:     len(lines),
	}

	// Resolve cached verdicts first; only the misses hit the engine.
	cached := 0
	missIdx := make([]int, 0, len(lines))
	missLines := make([]string, 0, len(lines))
	for i, line := range lines {
		if h.results != nil {
			if out, ok := h.results.Get(line); ok {
				resp.Results[i] = ParseResult{
					Input:    line,
					OK:       out.OK,
					Rendered: out.Rendered,
					Tree:     out.Tree,
					Error:    out.Error,
					Stage:    out.Stage,
					Nodes:    out.Nodes,
					Depth:    out.Depth,
					Cached:   true,
				}
				if out.OK {
					resp.Succeeded++
				} else {
					resp.Failed++
				}
				cached++
				h.recordOutcome(history.SourceAPI, line, out)
				continue
			}
		}
		missIdx = append(missIdx, i)
		missLines = append(missLines, line)
	}

	if len(missLines) > 0 {
		results := h.engine.ParseAll(missLines)
		for j, res := range results {
			out := ParseResult{
				Input:    res.Input,
				OK:       res.Err == nil,
				Rendered: res.Rendered,
				Nodes:    res.Nodes,
				Depth:    res.Depth,
				Duration: res.Duration.String(),
			}
			if res.Err != nil {
				out.Error = res.Err.Error()
				out.Stage = string(stageOf(res.Err))
				resp.Failed++
			} else {
				out.Tree = ast.Tree(res.Formula)
				resp.Succeeded++
			}
			resp.Results[missIdx[j]] = out

			h.record(history.SourceAPI, res)
			if h.results != nil {
				h.results.Put(res.Input, cache.ParseOutcome{
					OK:       out.OK,
					Rendered: out.Rendered,
					Tree:     out.Tree,
					Error:    out.Error,
					Stage:    out.Stage,
					Nodes:    out.Nodes,
					Depth:    out.Depth,
				})
			}
		}
	}

	h.logger.Info("Parse request",
		"request_id", requestID,
		"total", resp.Total,
		"failed", resp.Failed,
		"cached", cached,
	)

	h.writeJSON(w, http.StatusOK, resp)
}

// handleHealth handles health check requests
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	report := h.healthReg.CheckWithTimeout(5 * time.Second)

	status := http.StatusOK
	if report.Status == health.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, report)
}

// handleVersion handles version requests
func (h *Handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}
	h.writeJSON(w, http.StatusOK, version.Info())
}

// handleHistory lists recorded parses, newest first
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	if h.store == nil {
		h.writeError(w, http.StatusServiceUnavailable, "history_disabled", "History is not enabled", "")
		return
	}

	// Pending records have not reached the store yet; flush first so the
	// listing reflects the requests already answered.
	if h.recorder != nil {
		h.recorder.Flush()
	}

	filter := history.Filter{Limit: 50}
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		}
	}
	if v := q.Get("source"); v != "" {
		filter.Source = history.Source(v)
	}
	if v := q.Get("ok"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.OK = &b
		}
	}
	if v := q.Get("contains"); v != "" {
		filter.Contains = v
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := h.store.Query(ctx, filter)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to query history", err.Error())
		return
	}

	resp := HistoryResponse{
		Records: make([]HistoryRecord, len(records)),
		Total:   len(records),
	}
	for i, rec := range records {
		resp.Records[i] = HistoryRecord{
			ID:        rec.ID,
			Timestamp: rec.Timestamp,
			Source:    string(rec.Source),
			Input:     rec.Input,
			OK:        rec.OK,
			Rendered:  rec.Rendered,
			Error:     rec.Error,
			Nodes:     rec.Nodes,
			Depth:     rec.Depth,
		}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleHistoryStats returns aggregate history statistics
func (h *Handler) handleHistoryStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	if h.store == nil {
		h.writeError(w, http.StatusServiceUnavailable, "history_disabled", "History is not enabled", "")
		return
	}

	if h.recorder != nil {
		h.recorder.Flush()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats, err := h.store.Stats(ctx)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to read history stats", err.Error())
		return
	}

	bySource := make(map[string]int64, len(stats.BySource))
	for src, n := range stats.BySource {
		bySource[string(src)] = n
	}

	h.writeJSON(w, http.StatusOK, HistoryStatsResponse{
		Total:     stats.Total,
		Succeeded: stats.Succeeded,
		Failed:    stats.Failed,
		BySource:  bySource,
		LastParse: stats.LastParse,
	})
}

// record hands a parse result to the async history recorder
func (h *Handler) record(source history.Source, res logic.Result) {
	if h.recorder == nil {
		return
	}

	rec := &history.Record{
		Source:   source,
		Input:    res.Input,
		OK:       res.Err == nil,
		Rendered: res.Rendered,
		Nodes:    res.Nodes,
		Depth:    res.Depth,
		Duration: res.Duration,
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	}
	h.recorder.Record(rec)
}

// recordOutcome records a cache-served verdict in the parse history
func (h *Handler) recordOutcome(source history.Source, input string, out cache.ParseOutcome) {
	if h.recorder == nil {
		return
	}

	rec := &history.Record{
		Source:   source,
		Input:    input,
		OK:       out.OK,
		Rendered: out.Rendered,
		Nodes:    out.Nodes,
		Depth:    out.Depth,
	}
	if !out.OK {
		rec.Error = out.Error
	}
	h.recorder.Record(rec)
}

// stageOf extracts the processing stage from an engine error
func stageOf(err error) logic.Stage {
	if lerr, ok := err.(*logic.Error); ok {
		return lerr.Stage
	}
	return logic.StageParse
}

// readJSON decodes the request body into v
func (h *Handler) readJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

// writeError writes a JSON error response
func (h *Handler) writeError(w http.ResponseWriter, status int, code, message, details string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}
