package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sublime_ops/internal/adapter/http/handlers/mocks"
	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInventoryHandler_ListProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.GET("/v1/products", h.ListProducts)

		uc.EXPECT().ListProducts(gomock.Any()).Return([]entities.Product{
			{ID: "p-1", Name: "Montre", Quantity: 4, BuyPriceCFA: 500, SellPriceCFA: 900},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["product_name"] != "Montre" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInventoryHandler_Restock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIInventoryUseCase) *gin.Engine {
		h := NewInventoryHandler(uc)
		r := gin.New()
		r.POST("/v1/products/restock", h.Restock)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/products/restock", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("top-up returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Restock(gomock.Any(), "", "Montre", 5, int64(450), int64(900)).Return(entities.Product{
			ID: "p-1", Name: "Montre", Quantity: 9,
		}, false, nil)

		body := `{"product_name":"Montre","quantity":5,"buy_price_cfa":450,"sell_price_cfa":900}`
		req := httptest.NewRequest(http.MethodPost, "/v1/products/restock", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("creation returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Restock(gomock.Any(), "", "Bracelet", 10, int64(300), int64(700)).Return(entities.Product{
			ID: "p-2", Name: "Bracelet", Quantity: 10,
		}, true, nil)

		body := `{"product_name":"Bracelet","quantity":10,"buy_price_cfa":300,"sell_price_cfa":700}`
		req := httptest.NewRequest(http.MethodPost, "/v1/products/restock", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestInventoryHandler_DeleteProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIInventoryUseCase) *gin.Engine {
		h := NewInventoryHandler(uc)
		r := gin.New()
		r.DELETE("/v1/products/:id", h.DeleteProduct)
		return r
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().DeleteProduct(gomock.Any(), "", "p-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/products/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("referenced product maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().DeleteProduct(gomock.Any(), "", "p-1").Return(usecase.ErrProductReferenced)

		req := httptest.NewRequest(http.MethodDelete, "/v1/products/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing product maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().DeleteProduct(gomock.Any(), "", "ghost").Return(usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/products/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
