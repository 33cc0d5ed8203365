package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"printshop/internal/adapter/http/handlers/mocks"
	"printshop/internal/domain/entities"
	"printshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func colourRouter(h *ColourHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/colours", h.ListColours)
	r.POST("/v1/colours", h.CreateColour)
	r.PUT("/v1/colours/:id", h.UpdateColour)
	r.DELETE("/v1/colours/:id", h.DeleteColour)
	return r
}

func TestColourHandler_CreateColour(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIColourUseCase(ctrl)
		h := NewColourHandler(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/colours", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		colourRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank name rejected by usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIColourUseCase(ctrl)
		h := NewColourHandler(uc)

		uc.EXPECT().CreateColour(gomock.Any(), "   ").Return(entities.Colour{}, usecase.ErrInvalidColourName)

		req := httptest.NewRequest(http.MethodPost, "/v1/colours", bytes.NewBufferString(`{"colour_name":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		colourRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIColourUseCase(ctrl)
		h := NewColourHandler(uc)

		uc.EXPECT().CreateColour(gomock.Any(), "lavender").Return(entities.Colour{ID: 3, ColourName: "lavender"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/colours", bytes.NewBufferString(`{"colour_name":"lavender"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		colourRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]int
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != 3 {
			t.Fatalf("expected id 3, got %v", body)
		}
	})
}

func TestColourHandler_UpdateColour(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad path id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIColourUseCase(ctrl)
		h := NewColourHandler(uc)

		req := httptest.NewRequest(http.MethodPut, "/v1/colours/x", bytes.NewBufferString(`{"colour_name":"teal"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		colourRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIColourUseCase(ctrl)
		h := NewColourHandler(uc)

		uc.EXPECT().RenameColour(gomock.Any(), 9, "teal").Return(entities.Colour{}, usecase.ErrColourNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/colours/9", bytes.NewBufferString(`{"colour_name":"teal"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		colourRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("renamed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIColourUseCase(ctrl)
		h := NewColourHandler(uc)

		uc.EXPECT().RenameColour(gomock.Any(), 9, "teal").Return(entities.Colour{ID: 9, ColourName: "teal"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/colours/9", bytes.NewBufferString(`{"colour_name":"teal"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		colourRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["colour_name"] != "teal" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestColourHandler_DeleteColour(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIColourUseCase(ctrl)
	h := NewColourHandler(uc)

	uc.EXPECT().DeleteColour(gomock.Any(), 9).Return(nil)

	w := httptest.NewRecorder()
	colourRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/colours/9", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
