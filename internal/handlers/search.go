package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"planwell/internal/content"
	"planwell/internal/contextutil"
	"planwell/internal/search"
)

// SearchHandler handles HTTP requests for content search.
type SearchHandler struct {
	engine *search.Engine
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(engine *search.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

// SearchResultResponse is one scored record in the search response.
type SearchResultResponse struct {
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Excerpt        string   `json:"excerpt"`
	ContentType    string   `json:"content_type"`
	Category       string   `json:"category"`
	Difficulty     string   `json:"difficulty,omitempty"`
	RelevanceScore int      `json:"relevance_score"`
	MatchedFields  []string `json:"matched_fields"`
}

// SearchResponse represents the HTTP response payload for searches.
type SearchResponse struct {
	// The query term exactly as the client sent it
	Query string `json:"query"`

	Results []SearchResultResponse `json:"results"`

	// Total matches before pagination
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles GET /api/search requests.
//
// Query parameters: q (term), type, category, difficulty (each may be
// repeated or comma-separated), limit, offset.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	params := r.URL.Query()

	query := content.SearchQuery{
		Term: params.Get("q"),
		Filters: content.SearchFilters{
			ContentType:     multiValue(params["type"]),
			Category:        multiValue(params["category"]),
			DifficultyLevel: multiValue(params["difficulty"]),
		},
	}

	// Zero limit defers to the engine's configured default.
	limit, err := boundedIntParam(params.Get("limit"), 0, 100)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid limit")
		return
	}
	offset, err := boundedIntParam(params.Get("offset"), 0, 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid offset")
		return
	}
	query.Limit = limit
	query.Offset = offset

	page, err := h.engine.Search(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "search failed", "term", query.Term, "error", err)
		if errors.Is(err, search.ErrRetrievalFailed) {
			writeError(w, http.StatusServiceUnavailable, "Search unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to run search")
		return
	}

	results := make([]SearchResultResponse, 0, len(page.Results))
	for _, res := range page.Results {
		fields := make([]string, 0, len(res.MatchedFields))
		for _, f := range res.MatchedFields {
			fields = append(fields, string(f))
		}
		results = append(results, SearchResultResponse{
			Slug:           res.Record.Slug,
			Title:          res.Record.Title,
			Excerpt:        res.Record.Excerpt,
			ContentType:    string(res.Record.ContentType),
			Category:       res.Record.Category,
			Difficulty:     res.Record.DifficultyLevel,
			RelevanceScore: res.RelevanceScore,
			MatchedFields:  fields,
		})
	}

	resp := SearchResponse{
		Query:   query.Term,
		Results: results,
		Total:   page.Total,
		Limit:   page.Limit,
		Offset:  page.Offset,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// multiValue flattens repeated and comma-separated query parameters.
func multiValue(raw []string) []string {
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// boundedIntParam parses a non-negative integer parameter. A max of 0
// means unbounded.
func boundedIntParam(raw string, fallback, max int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New("invalid integer parameter")
	}
	if max > 0 && n > max {
		n = max
	}
	return n, nil
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}
