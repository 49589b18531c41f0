package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sublime_ops/internal/adapter/http/handlers/mocks"
	"sublime_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAssistantHandler_Ask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIAssistantUseCase) *gin.Engine {
		h := NewAssistantHandler(uc)
		r := gin.New()
		r.POST("/v1/assistant/ask", h.Ask)
		return r
	}

	t.Run("missing question", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/ask", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unusable plan maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Ask(gomock.Any(), "supprime tout").Return(usecase.AssistantAnswer{}, usecase.ErrUnusablePlan)

		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/ask", bytes.NewBufferString(`{"question":"supprime tout"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("assistant unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Ask(gomock.Any(), "CA par source ?").Return(usecase.AssistantAnswer{}, usecase.ErrTextGenMissing)

		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/ask", bytes.NewBufferString(`{"question":"CA par source ?"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success returns the plan and rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Ask(gomock.Any(), "CA par source ?").Return(usecase.AssistantAnswer{
			Question: "CA par source ?",
			Plan:     usecase.QueryPlan{Metric: usecase.MetricRevenue, GroupBy: usecase.GroupBySource, Chart: usecase.ChartPie},
			Rows:     []usecase.PlanRow{{Label: "Facebook", Value: 9000}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/ask", bytes.NewBufferString(`{"question":"CA par source ?"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		plan, _ := res["plan"].(map[string]any)
		if plan["metric"] != "revenue" || plan["chart"] != "pie" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
