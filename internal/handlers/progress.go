package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"planwell/internal/content"
	"planwell/internal/contextutil"
	"planwell/internal/progress"
	"planwell/internal/storage"
)

// ProgressHandler manages step progress sessions for tools and checklists.
type ProgressHandler struct {
	contentStore  storage.ContentStore
	progressStore progress.Store
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(contentStore storage.ContentStore, progressStore progress.Store) *ProgressHandler {
	return &ProgressHandler{
		contentStore:  contentStore,
		progressStore: progressStore,
	}
}

// ProgressResponse represents a progress session and its state.
type ProgressResponse struct {
	Key   string             `json:"key"`
	State progress.StepState `json:"state"`
}

// Start creates a new progress session for a tool or checklist record.
// Handles POST /api/content/{slug}/progress.
func (h *ProgressHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		writeError(w, http.StatusBadRequest, "Slug is required")
		return
	}

	rec, err := h.contentStore.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Content not found")
			return
		}
		logger.ErrorContext(ctx, "failed to load content", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load content")
		return
	}

	totalSteps := stepCount(rec)
	if totalSteps == 0 {
		writeError(w, http.StatusConflict, "Content has no steps")
		return
	}

	key := progress.NewSessionKey(slug)
	state := progress.NewStepState(totalSteps)
	if err := h.save(key, state); err != nil {
		logger.ErrorContext(ctx, "failed to save progress", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save progress")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(ProgressResponse{Key: key, State: state})
}

// Get returns the state of an existing session.
// Handles GET /api/progress/{key}.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	state, err := h.load(key)
	if err != nil {
		if errors.Is(err, progress.ErrKeyNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ProgressResponse{Key: key, State: state})
}

// Transition applies a step transition to an existing session.
// Handles POST /api/progress/{key}/{action} where action is next, previous,
// or reset.
func (h *ProgressHandler) Transition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	key := chi.URLParam(r, "key")
	action := chi.URLParam(r, "action")

	state, err := h.load(key)
	if err != nil {
		if errors.Is(err, progress.ErrKeyNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	switch action {
	case "next":
		state = progress.Next(state)
	case "previous":
		state = progress.Previous(state)
	case "reset":
		state = progress.Reset(state)
	default:
		writeError(w, http.StatusBadRequest, "Unknown action: "+action)
		return
	}

	if err := h.save(key, state); err != nil {
		logger.ErrorContext(ctx, "failed to save progress", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save progress")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ProgressResponse{Key: key, State: state})
}

func (h *ProgressHandler) load(key string) (progress.StepState, error) {
	data, err := h.progressStore.Get(key)
	if err != nil {
		return progress.StepState{}, err
	}
	var state progress.StepState
	if err := json.Unmarshal(data, &state); err != nil {
		return progress.StepState{}, err
	}
	return state, nil
}

func (h *ProgressHandler) save(key string, state progress.StepState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return h.progressStore.Put(key, data)
}

// stepCount derives the number of steps a record's flow has.
func stepCount(rec *content.Record) int {
	switch {
	case rec.ToolConfig != nil:
		return len(rec.ToolConfig.Steps)
	case rec.ChecklistConfig != nil:
		return len(rec.ChecklistConfig.Items)
	default:
		return 0
	}
}
