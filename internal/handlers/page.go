package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"planwell/internal/content"
	"planwell/internal/contextutil"
	"planwell/internal/storage"
)

// PageHandler renders published content records as HTML pages.
type PageHandler struct {
	store    storage.ContentStore
	template *template.Template
}

// pageData holds template data for rendered content pages.
type pageData struct {
	Title           string
	MetaDescription string
	Category        string
	ContentType     string
	ReadingTime     int
	Keywords        string
	Paragraphs      []string
}

// NewPageHandler creates a new handler for serving content pages.
func NewPageHandler(store storage.ContentStore) *PageHandler {
	tmpl := template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <meta name="description" content="{{.MetaDescription}}">
  <meta name="keywords" content="{{.Keywords}}">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 760px;
      line-height: 1.7;
      color: #1f2937;
    }
    header {
      margin-bottom: 2rem;
      border-bottom: 1px solid #e5e7eb;
      padding-bottom: 1.5rem;
    }
    h1 {
      margin-top: 0;
      font-size: 2rem;
    }
    .meta {
      color: #6b7280;
      font-size: 0.95rem;
      margin-top: 0.5rem;
    }
    article p {
      margin: 1rem 0;
    }
    @media (max-width: 640px) {
      body {
        padding: 1rem;
      }
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="meta">{{.Category}} &middot; {{.ContentType}} &middot; {{.ReadingTime}} min read</p>
  </header>
  <article>{{range .Paragraphs}}<p>{{.}}</p>
{{end}}</article>
</body>
</html>`))

	return &PageHandler{
		store:    store,
		template: tmpl,
	}
}

// ServeHTTP renders the requested record as an HTML page. Draft records are
// not served.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		http.Error(w, "slug is required", http.StatusBadRequest)
		return
	}

	rec, err := h.store.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "page not found", http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "failed to load page", "slug", slug, "error", err)
		http.Error(w, "failed to load page", http.StatusInternalServerError)
		return
	}

	if !rec.IsPublished() {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	data := pageData{
		Title:           rec.Title,
		MetaDescription: rec.MetaDescription,
		Category:        rec.Category,
		ContentType:     string(rec.ContentType),
		ReadingTime:     rec.ReadingTimeMinutes,
		Keywords:        strings.Join(rec.SemanticKeywords, ", "),
		Paragraphs:      paragraphs(rec),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, data); err != nil {
		logger.ErrorContext(ctx, "failed to execute page template", "slug", slug, "error", err)
	}
}

// paragraphs splits the normalized body into displayable paragraphs, falling
// back to one block when the text carries no blank lines.
func paragraphs(rec *content.Record) []string {
	var out []string
	for _, block := range strings.Split(rec.RawContent, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	if len(out) == 0 && strings.TrimSpace(rec.RawContent) != "" {
		out = []string{strings.TrimSpace(rec.RawContent)}
	}
	return out
}
