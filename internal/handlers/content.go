package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"planwell/internal/content"
	"planwell/internal/contextutil"
	"planwell/internal/normalizer"
	"planwell/internal/schema"
	"planwell/internal/storage"
)

// ContentHandler handles HTTP requests for content records.
type ContentHandler struct {
	store      storage.ContentStore
	normalizer *normalizer.Normalizer
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(store storage.ContentStore, n *normalizer.Normalizer) *ContentHandler {
	return &ContentHandler{store: store, normalizer: n}
}

// CreateContentRequest represents the HTTP request payload for authoring
// content. Body holds the raw document text; Filename drives type and
// category classification.
type CreateContentRequest struct {
	Filename     string   `json:"filename"`
	Body         string   `json:"body"`
	Category     string   `json:"category,omitempty"`
	SeedKeywords []string `json:"seed_keywords,omitempty"`
}

// ContentSummary is the listing view of a record: enough to render an index
// page without shipping the body.
type ContentSummary struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	ContentType string `json:"content_type"`
	Category    string `json:"category"`
	ReadingTime int    `json:"reading_time_minutes"`
}

// List serves GET /api/content with every published record.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	records, err := h.store.ListPublished(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list content", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list content")
		return
	}

	summaries := make([]ContentSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, ContentSummary{
			Slug:        rec.Slug,
			Title:       rec.Title,
			Excerpt:     rec.Excerpt,
			ContentType: string(rec.ContentType),
			Category:    rec.Category,
			ReadingTime: rec.ReadingTimeMinutes,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summaries); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// Get serves GET /api/content/{slug}.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		writeError(w, http.StatusBadRequest, "Slug is required")
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

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// Create serves POST /api/content. The raw document is normalized into a
// full record and stored; posting the same slug again updates it.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Filename) == "" {
		writeError(w, http.StatusBadRequest, "Filename is required")
		return
	}
	if strings.TrimSpace(req.Body) == "" {
		writeError(w, http.StatusBadRequest, "Body is required")
		return
	}

	rec := h.normalizer.Normalize(normalizer.RawInput{
		Filename:     req.Filename,
		Data:         []byte(req.Body),
		Category:     req.Category,
		SeedKeywords: req.SeedKeywords,
	})

	if err := h.store.Upsert(ctx, rec); err != nil {
		logger.ErrorContext(ctx, "failed to store content", "slug", rec.Slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store content")
		return
	}

	logger.InfoContext(ctx, "content stored", "slug", rec.Slug, "type", rec.ContentType)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// Schema serves GET /api/content/{slug}/schema with the page's JSON-LD
// descriptors.
func (h *ContentHandler) Schema(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		writeError(w, http.StatusBadRequest, "Slug is required")
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

	meta := &schema.ArticleMeta{
		PublishedAt: rec.CreatedAt,
		ModifiedAt:  rec.UpdatedAt,
	}

	var trail []schema.Breadcrumb
	if rec.Category != "" {
		trail = []schema.Breadcrumb{
			{Name: "Home", URL: schema.SiteURL},
			{Name: rec.Category, URL: schema.SiteURL + "/" + content.Slugify(rec.Category)},
			{Name: rec.Title, URL: schema.SiteURL + "/" + rec.Slug},
		}
	}

	descriptors := schema.Emit(rec, meta, trail)

	w.Header().Set("Content-Type", "application/ld+json")
	if err := json.NewEncoder(w).Encode(descriptors); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
