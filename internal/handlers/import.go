package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"planwell/internal/contextutil"
	"planwell/internal/ingest"
)

// ImportHandler handles HTTP requests for triggering a content re-import.
type ImportHandler struct {
	importer   *ingest.Importer
	contentDir string
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importer *ingest.Importer, contentDir string) *ImportHandler {
	return &ImportHandler{
		importer:   importer,
		contentDir: contentDir,
	}
}

// ImportResponse represents the response from the import endpoint.
type ImportResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ServeHTTP handles HTTP requests for triggering a content re-import.
func (h *ImportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.contentDir == "" {
		writeError(w, http.StatusConflict, "No content directory configured")
		return
	}

	logger.InfoContext(ctx, "content import triggered via API", "dir", h.contentDir)

	// Run the import in a goroutine so it doesn't block the HTTP response.
	// Use background context so the import continues after the request completes.
	go func() {
		importCtx := context.Background()
		summary, err := h.importer.Run(importCtx, h.contentDir)
		if err != nil {
			logger.ErrorContext(importCtx, "content import completed with errors", "error", err)
			return
		}
		logger.InfoContext(importCtx, "content import completed",
			"imported", summary.Imported, "failed", summary.Failed)
	}()

	// Return immediately with accepted status
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(ImportResponse{
		Message: "Import started. Check server logs for progress.",
		Status:  "accepted",
	})
}
