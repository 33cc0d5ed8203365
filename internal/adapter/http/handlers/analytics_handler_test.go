package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"printshop/internal/adapter/http/handlers/mocks"
	"printshop/internal/domain/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func analyticsRouter(h *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/analytics/filament-remaining", h.FilamentRemaining)
	r.GET("/v1/analytics/orders-per-week", h.OrdersPerWeek)
	return r
}

func TestAnalyticsHandler_FilamentRemaining(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		uc.EXPECT().FilamentRemaining(gomock.Any()).Return([]views.FilamentRemaining{
			{Label: "black (PLA)", Remaining: 700},
			{Label: "blue (N/A)", Remaining: 0},
		}, nil)

		w := httptest.NewRecorder()
		analyticsRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/analytics/filament-remaining", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 2 || body[0]["label"] != "black (PLA)" || body[0]["remaining"] != float64(700) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		uc.EXPECT().FilamentRemaining(gomock.Any()).Return(nil, errors.New("dynamo down"))

		w := httptest.NewRecorder()
		analyticsRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/analytics/filament-remaining", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAnalyticsHandler_OrdersPerWeek(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAnalyticsUseCase(ctrl)
	h := NewAnalyticsHandler(uc)

	uc.EXPECT().OrdersPerWeek(gomock.Any()).Return([]views.WeeklyOrderCount{
		{WeekStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Count: 1},
		{WeekStart: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), Count: 0},
	}, nil)

	w := httptest.NewRecorder()
	analyticsRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/analytics/orders-per-week", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 2 || body[0]["week"] != "Jan 1" || body[0]["orders"] != float64(1) {
		t.Fatalf("unexpected body: %v", body)
	}
	if body[1]["week"] != "Jan 8" || body[1]["orders"] != float64(0) {
		t.Fatalf("unexpected body: %v", body)
	}
}
