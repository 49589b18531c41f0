package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sublime_ops/internal/adapter/http/handlers/mocks"
	"sublime_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportingHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIReportingUseCase) *gin.Engine {
		h := NewReportingHandler(uc)
		r := gin.New()
		r.GET("/v1/reports/summary", h.Summary)
		return r
	}

	t.Run("returns the dashboard figures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportingUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Summary(gomock.Any()).Return(usecase.Summary{
			RevenueCFA:      9000,
			FulfilledOrders: 2,
			TotalOrders:     3,
			Visitors:        4,
			ConversionRate:  0.75,
			BySource: []usecase.SourceBreakdown{
				{Source: "facebook", RevenueCFA: 9000, Orders: 2},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if res["revenue_cfa"] != float64(9000) || res["total_orders"] != float64(3) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportingUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Summary(gomock.Any()).Return(usecase.Summary{}, errors.New("dynamodb down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
