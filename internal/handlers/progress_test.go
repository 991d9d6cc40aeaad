package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"planwell/internal/content"
	"planwell/internal/progress"
	"planwell/internal/storage/mocks"
)

func checklistRecord() *content.Record {
	return &content.Record{
		Slug:        "estate-planning-checklist",
		Title:       "Estate Planning Checklist",
		ContentType: content.TypeChecklist,
		Status:      content.StatusPublished,
		ChecklistConfig: &content.ChecklistConfig{
			Items: []content.ChecklistItem{
				{Text: "Draft a will"},
				{Text: "Name beneficiaries"},
				{Text: "Review annually", Optional: true},
			},
		},
	}
}

func newProgressRouter(t *testing.T, rec *content.Record) *chi.Mux {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockContentStore(ctrl)
	mockStore.EXPECT().
		GetBySlug(gomock.Any(), rec.Slug).
		Return(rec, nil).
		AnyTimes()

	h := NewProgressHandler(mockStore, progress.NewMemoryStore())

	r := chi.NewRouter()
	r.Post("/api/content/{slug}/progress", h.Start)
	r.Get("/api/progress/{key}", h.Get)
	r.Post("/api/progress/{key}/{action}", h.Transition)
	return r
}

func startSession(t *testing.T, router *chi.Mux, slug string) ProgressResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/content/"+slug+"/progress", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("start session status = %d: %s", w.Code, w.Body.String())
	}

	var resp ProgressResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestProgressHandler_StartAndGet(t *testing.T) {
	router := newProgressRouter(t, checklistRecord())

	session := startSession(t, router, "estate-planning-checklist")
	if session.Key == "" {
		t.Fatal("session key is empty")
	}
	if session.State.TotalSteps != 3 || session.State.CurrentStep != 0 {
		t.Errorf("initial state = %+v", session.State)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/progress/"+session.Key, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("get session status = %d", w.Code)
	}
}

func TestProgressHandler_Transitions(t *testing.T) {
	router := newProgressRouter(t, checklistRecord())
	session := startSession(t, router, "estate-planning-checklist")

	transition := func(action string) ProgressResponse {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/progress/"+session.Key+"/"+action, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s status = %d: %s", action, w.Code, w.Body.String())
		}
		var resp ProgressResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return resp
	}

	got := transition("next")
	if got.State.CurrentStep != 1 || !got.State.CompletedSteps[0] {
		t.Errorf("after next: %+v", got.State)
	}

	got = transition("previous")
	if got.State.CurrentStep != 0 {
		t.Errorf("after previous: %+v", got.State)
	}

	got = transition("reset")
	if got.State.CurrentStep != 0 || len(got.State.CompletedSteps) != 0 {
		t.Errorf("after reset: %+v", got.State)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/progress/"+session.Key+"/skip", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown action status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestProgressHandler_UnknownSession(t *testing.T) {
	router := newProgressRouter(t, checklistRecord())

	req := httptest.NewRequest(http.MethodGet, "/api/progress/progress:x:missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestProgressHandler_NoSteps(t *testing.T) {
	rec := &content.Record{
		Slug:        "plain-guide",
		ContentType: content.TypeGuide,
		Status:      content.StatusPublished,
	}
	router := newProgressRouter(t, rec)

	req := httptest.NewRequest(http.MethodPost, "/api/content/plain-guide/progress", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}
