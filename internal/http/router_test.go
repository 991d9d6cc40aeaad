package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"planwell/internal/normalizer"
	"planwell/internal/search"
	"planwell/internal/storage"
	"planwell/internal/storage/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockContentStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockContentStore(ctrl)

	router := NewRouter(&Deps{
		Store:        mockStore,
		SearchEngine: search.New(mockStore),
		Normalizer:   normalizer.New(),
	})
	return router, mockStore
}

func TestNewRouter(t *testing.T) {
	router, _ := newTestRouter(t)
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	router, mockStore := newTestRouter(t)
	mockStore.EXPECT().
		GetBySlug(gomock.Any(), "missing").
		Return(nil, storage.ErrNotFound).
		Times(2)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{
			name:       "GET /api/search exists",
			method:     http.MethodGet,
			path:       "/api/search",
			wantStatus: http.StatusOK, // empty term returns an empty page
		},
		{
			name:       "POST /api/content exists",
			method:     http.MethodPost,
			path:       "/api/content",
			wantStatus: http.StatusBadRequest, // invalid body, but route exists
		},
		{
			name:       "GET /api/content/{slug} exists",
			method:     http.MethodGet,
			path:       "/api/content/missing",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "GET /api/content/{slug}/schema exists",
			method:     http.MethodGet,
			path:       "/api/content/missing/schema",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "GET /api/faq/{topic} exists",
			method:     http.MethodGet,
			path:       "/api/faq/retirement",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /api/search method not allowed",
			method:     http.MethodPost,
			path:       "/api/search",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Check CORS headers are present
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
}
