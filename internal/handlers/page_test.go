package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"planwell/internal/content"
	"planwell/internal/storage/mocks"
)

func TestPageHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		record     *content.Record
		wantStatus int
		wantInBody string
	}{
		{
			name: "published record renders",
			record: &content.Record{
				Slug:               "retirement-planning-guide",
				Title:              "Retirement Planning Guide",
				RawContent:         "Start early.\n\nSave consistently.",
				MetaDescription:    "A guide to retirement planning.",
				ContentType:        content.TypeGuide,
				Category:           "retirement-planning",
				ReadingTimeMinutes: 4,
				Status:             content.StatusPublished,
			},
			wantStatus: http.StatusOK,
			wantInBody: "<p>Save consistently.</p>",
		},
		{
			name: "draft record is hidden",
			record: &content.Record{
				Slug:   "retirement-planning-guide",
				Title:  "Retirement Planning Guide",
				Status: content.StatusDraft,
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockContentStore(ctrl)
			mockStore.EXPECT().
				GetBySlug(gomock.Any(), tt.record.Slug).
				Return(tt.record, nil)

			router := chi.NewRouter()
			router.Get("/pages/{slug}", NewPageHandler(mockStore).ServeHTTP)

			req := httptest.NewRequest(http.MethodGet, "/pages/"+tt.record.Slug, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantInBody != "" && !strings.Contains(w.Body.String(), tt.wantInBody) {
				t.Errorf("body missing %q:\n%s", tt.wantInBody, w.Body.String())
			}
		})
	}
}
