package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"planwell/internal/calcexpr"
	"planwell/internal/content"
	"planwell/internal/contextutil"
	"planwell/internal/storage"
)

// CalculateHandler evaluates a calculator record's formulas against
// caller-supplied input values.
type CalculateHandler struct {
	store storage.ContentStore
}

// NewCalculateHandler creates a new CalculateHandler.
func NewCalculateHandler(store storage.ContentStore) *CalculateHandler {
	return &CalculateHandler{store: store}
}

// CalculateRequest represents the HTTP request payload for evaluating a
// calculator. Missing inputs fall back to the calculator's defaults.
type CalculateRequest struct {
	Inputs map[string]float64 `json:"inputs"`
}

// CalculateResponse represents the evaluated formula results.
type CalculateResponse struct {
	Slug    string             `json:"slug"`
	Results map[string]float64 `json:"results"`
}

// ServeHTTP handles POST /api/content/{slug}/calculate requests.
func (h *CalculateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		writeError(w, http.StatusBadRequest, "Slug is required")
		return
	}

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.store.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Content not found")
			return
		}
		logger.ErrorContext(ctx, "failed to load content", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load content")
		return
	}

	if rec.ContentType != content.TypeCalculator || rec.CalculatorConfig == nil {
		writeError(w, http.StatusNotFound, "Not a calculator")
		return
	}

	// Defaults first, caller inputs on top.
	vars := make(map[string]float64, len(req.Inputs)+len(rec.CalculatorConfig.Defaults))
	for name, v := range rec.CalculatorConfig.Defaults {
		vars[name] = v
	}
	for name, v := range req.Inputs {
		vars[name] = v
	}

	results := make(map[string]float64, len(rec.CalculatorConfig.Formulas))
	for name, formula := range rec.CalculatorConfig.Formulas {
		value, err := calcexpr.Evaluate(formula, vars)
		if err != nil {
			logger.WarnContext(ctx, "formula evaluation failed",
				"slug", slug, "formula", name, "error", err)
			writeError(w, http.StatusBadRequest, "Cannot evaluate formula: "+name)
			return
		}
		results[name] = value
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(CalculateResponse{Slug: slug, Results: results}); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
