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

func TestExpenseHandler_RecordExpense(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIExpenseUseCase) *gin.Engine {
		h := NewExpenseHandler(uc)
		r := gin.New()
		r.POST("/v1/expenses", h.RecordExpense)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/expenses", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown category maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().RecordExpense(gomock.Any(), "", entities.ExpenseCategory("Loyer"), int64(1000), "").
			Return(entities.Expense{}, usecase.ErrInvalidExpenseCategory)

		body := `{"category":"Loyer","amount_cfa":1000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/expenses", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().RecordExpense(gomock.Any(), "", entities.ExpenseCategoryTransport, int64(2500), "livraison").
			Return(entities.Expense{ID: "e-1", Type: entities.ExpenseTypeOut, Category: entities.ExpenseCategoryTransport, AmountCFA: 2500, Description: "livraison"}, nil)

		body := `{"category":"Transport","amount_cfa":2500,"description":"livraison"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/expenses", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if res["type"] != entities.ExpenseTypeOut || res["category"] != "Transport" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestExpenseHandler_ListExpenses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc)

		r := gin.New()
		r.GET("/v1/expenses", h.ListExpenses)

		uc.EXPECT().ListExpenses(gomock.Any()).Return([]entities.Expense{
			{ID: "e-1", Category: entities.ExpenseCategoryMarketing, AmountCFA: 5000},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/expenses", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
