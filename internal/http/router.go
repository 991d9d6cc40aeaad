package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"planwell/internal/handlers"
	"planwell/internal/ingest"
	"planwell/internal/normalizer"
	"planwell/internal/progress"
	"planwell/internal/search"
	"planwell/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Store         storage.ContentStore
	SearchEngine  *search.Engine
	Normalizer    *normalizer.Normalizer
	Importer      *ingest.Importer
	ContentDir    string
	ProgressStore progress.Store
	DB            *sql.DB
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	searchHandler := handlers.NewSearchHandler(deps.SearchEngine)
	contentHandler := handlers.NewContentHandler(deps.Store, deps.Normalizer)
	faqHandler := handlers.NewFAQHandler()
	pageHandler := handlers.NewPageHandler(deps.Store)
	calculateHandler := handlers.NewCalculateHandler(deps.Store)

	progressStore := deps.ProgressStore
	if progressStore == nil {
		progressStore = progress.NewMemoryStore()
	}
	progressHandler := handlers.NewProgressHandler(deps.Store, progressStore)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/search", searchHandler)
		r.Post("/content", contentHandler.Create)
		r.Get("/content", contentHandler.List)
		r.Get("/content/{slug}", contentHandler.Get)
		r.Get("/content/{slug}/schema", contentHandler.Schema)
		r.Post("/content/{slug}/calculate", calculateHandler.ServeHTTP)
		r.Post("/content/{slug}/progress", progressHandler.Start)
		r.Get("/progress/{key}", progressHandler.Get)
		r.Post("/progress/{key}/{action}", progressHandler.Transition)
		r.Method(http.MethodGet, "/faq/{topic}", faqHandler)
		if deps.Importer != nil {
			r.Method(http.MethodPost, "/import", handlers.NewImportHandler(deps.Importer, deps.ContentDir))
		}
	})

	r.Method(http.MethodGet, "/pages/{slug}", pageHandler)
	r.Method(http.MethodGet, "/healthz", handlers.NewHealthHandler(deps.DB))

	return r
}
