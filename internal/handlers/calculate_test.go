package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"planwell/internal/content"
	"planwell/internal/storage/mocks"
)

func calculatorRecord() *content.Record {
	return &content.Record{
		Slug:        "401k-growth-calculator",
		Title:       "401k Growth Calculator",
		ContentType: content.TypeCalculator,
		Status:      content.StatusPublished,
		CalculatorConfig: &content.CalculatorConfig{
			Inputs: []content.CalculatorInput{
				{Name: "savings", Label: "Current savings"},
				{Name: "rate", Label: "Annual return"},
				{Name: "years", Label: "Years to retirement"},
			},
			Formulas: map[string]string{
				"future_value": "savings * (1 + rate) ^ years",
			},
			Defaults: map[string]float64{
				"rate": 0.05,
			},
		},
	}
}

func TestCalculateHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		record     *content.Record
		body       string
		wantStatus int
		wantValue  float64
	}{
		{
			name:       "evaluates with defaults merged",
			record:     calculatorRecord(),
			body:       `{"inputs":{"savings":1000,"years":10}}`,
			wantStatus: http.StatusOK,
			wantValue:  1000 * math.Pow(1.05, 10),
		},
		{
			name:       "caller inputs override defaults",
			record:     calculatorRecord(),
			body:       `{"inputs":{"savings":1000,"rate":0,"years":10}}`,
			wantStatus: http.StatusOK,
			wantValue:  1000,
		},
		{
			name:       "missing variable rejected",
			record:     calculatorRecord(),
			body:       `{"inputs":{"savings":1000}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "non-calculator record",
			record: &content.Record{
				Slug:        "401k-growth-calculator",
				ContentType: content.TypeGuide,
				Status:      content.StatusPublished,
			},
			body:       `{"inputs":{}}`,
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
			router.Post("/api/content/{slug}/calculate", NewCalculateHandler(mockStore).ServeHTTP)

			req := httptest.NewRequest(http.MethodPost,
				"/api/content/"+tt.record.Slug+"/calculate", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp CalculateResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			got := resp.Results["future_value"]
			if math.Abs(got-tt.wantValue) > 1e-9 {
				t.Errorf("future_value = %v, want %v", got, tt.wantValue)
			}
		})
	}
}
