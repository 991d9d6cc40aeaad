package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"planwell/internal/contextutil"
	"planwell/internal/schema"
	"planwell/internal/seo"
)

// FAQHandler serves the static FAQ sets per topic.
type FAQHandler struct{}

// NewFAQHandler creates a new FAQHandler.
func NewFAQHandler() *FAQHandler {
	return &FAQHandler{}
}

// FAQResponse represents the HTTP response payload for a topic's FAQs.
type FAQResponse struct {
	Topic string    `json:"topic"`
	FAQs  []seo.FAQ `json:"faqs"`

	// JSON-LD FAQPage descriptor for the same entries
	Schema schema.Descriptor `json:"schema"`

	// Categories adjacent to the topic in the cluster table
	Related []string `json:"related,omitempty"`
}

// ServeHTTP handles GET /api/faq/{topic} requests.
func (h *FAQHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	topic := strings.TrimSpace(chi.URLParam(r, "topic"))
	if topic == "" {
		writeError(w, http.StatusBadRequest, "Topic is required")
		return
	}

	faqs := seo.GenerateFAQ(topic)
	if len(faqs) == 0 {
		writeError(w, http.StatusNotFound, "No FAQs for topic")
		return
	}

	resp := FAQResponse{
		Topic:   topic,
		FAQs:    faqs,
		Schema:  schema.FAQPage(faqs),
		Related: seo.RelatedCategories(topic),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
