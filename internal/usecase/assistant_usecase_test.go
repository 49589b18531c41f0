package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sublime_ops/internal/domain/entities"
	mock_interfaces "sublime_ops/internal/usecase/interfaces/mocks"
	"sublime_ops/pkg/logger"

	"go.uber.org/mock/gomock"
)

func TestParseQueryPlan(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    QueryPlan
		wantErr bool
	}{
		{
			name: "bare object",
			raw:  `{"metric":"revenue","group_by":"marketing_source","chart":"pie"}`,
			want: QueryPlan{Metric: "revenue", GroupBy: "marketing_source", Chart: "pie"},
		},
		{
			name: "code fences and prose",
			raw:  "Here is the plan:\n```json\n{\"metric\": \"units\", \"group_by\": \"product\", \"chart\": \"bar\"}\n```\nHope this helps!",
			want: QueryPlan{Metric: "units", GroupBy: "product", Chart: "bar"},
		},
		{
			name: "mixed case values are normalized",
			raw:  `{"metric":"Revenue","group_by":"DAY","chart":"Line"}`,
			want: QueryPlan{Metric: "revenue", GroupBy: "day", Chart: "line"},
		},
		{
			name: "braces inside strings do not break extraction",
			raw:  `{"metric":"orders","group_by":"none","chart":"table","note":"ignore {this}"}`,
			want: QueryPlan{Metric: "orders", GroupBy: "none", Chart: "table"},
		},
		{
			name:    "no json at all",
			raw:     "I cannot answer that question.",
			wantErr: true,
		},
		{
			name:    "unknown metric",
			raw:     `{"metric":"profit","group_by":"none","chart":"table"}`,
			wantErr: true,
		},
		{
			name:    "unknown group_by",
			raw:     `{"metric":"revenue","group_by":"customer","chart":"table"}`,
			wantErr: true,
		},
		{
			name:    "unknown chart",
			raw:     `{"metric":"revenue","group_by":"none","chart":"scatter"}`,
			wantErr: true,
		},
		{
			name:    "truncated object",
			raw:     `{"metric":"revenue","group_by":"none"`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := ParseQueryPlan(tc.raw)
			if tc.wantErr {
				if !errors.Is(err, ErrUnusablePlan) {
					t.Fatalf("expected ErrUnusablePlan, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if plan != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, plan)
			}
		})
	}
}

func TestAssistantUseCase_Ask(t *testing.T) {
	day := func(s string) time.Time {
		ts, _ := time.Parse("2006-01-02", s)
		return ts
	}

	t.Run("empty question", func(t *testing.T) {
		uc := NewAssistantUseCase(nil, nil, nil, logger.NewNop())
		_, err := uc.Ask(context.Background(), "   ")
		if !errors.Is(err, ErrEmptyQuestion) {
			t.Fatalf("expected ErrEmptyQuestion, got %v", err)
		}
	})

	t.Run("text generation not configured", func(t *testing.T) {
		uc := NewAssistantUseCase(nil, nil, nil, logger.NewNop())
		_, err := uc.Ask(context.Background(), "CA par source ?")
		if !errors.Is(err, ErrTextGenMissing) {
			t.Fatalf("expected ErrTextGenMissing, got %v", err)
		}
	})

	t.Run("unusable model output is rejected, never executed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		textgen := mock_interfaces.NewMockITextGenerator(ctrl)
		uc := NewAssistantUseCase(textgen, nil, nil, logger.NewNop())

		textgen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`os.system("rm -rf /")`, nil)

		_, err := uc.Ask(context.Background(), "supprime tout")
		if !errors.Is(err, ErrUnusablePlan) {
			t.Fatalf("expected ErrUnusablePlan, got %v", err)
		}
	})

	t.Run("revenue by source aggregates fulfilled orders only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		textgen := mock_interfaces.NewMockITextGenerator(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewAssistantUseCase(textgen, orders, nil, logger.NewNop())

		textgen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`{"metric":"revenue","group_by":"marketing_source","chart":"pie"}`, nil)
		orders.EXPECT().List(gomock.Any()).Return([]entities.Order{
			{ID: "o-1", MarketingSource: "Facebook", Status: entities.OrderStatusFulfilled, TotalAmountCFA: 9000},
			{ID: "o-2", MarketingSource: "TikTok", Status: entities.OrderStatusFulfilled, TotalAmountCFA: 3000},
			{ID: "o-3", MarketingSource: "Facebook", Status: entities.OrderStatusNew, TotalAmountCFA: 4500},
		}, nil)

		ans, err := uc.Ask(context.Background(), "CA par source ?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ans.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %+v", ans.Rows)
		}
		if ans.Rows[0].Label != "Facebook" || ans.Rows[0].Value != 9000 {
			t.Fatalf("unexpected first row: %+v", ans.Rows[0])
		}
		if ans.Plan.Chart != ChartPie {
			t.Fatalf("expected pie chart in plan, got %+v", ans.Plan)
		}
	})

	t.Run("orders metric counts every status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		textgen := mock_interfaces.NewMockITextGenerator(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewAssistantUseCase(textgen, orders, nil, logger.NewNop())

		textgen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`{"metric":"orders","group_by":"status","chart":"bar"}`, nil)
		orders.EXPECT().List(gomock.Any()).Return([]entities.Order{
			{ID: "o-1", Status: entities.OrderStatusNew},
			{ID: "o-2", Status: entities.OrderStatusNew},
			{ID: "o-3", Status: entities.OrderStatusCancelledCustomer},
		}, nil)

		ans, err := uc.Ask(context.Background(), "combien de commandes par statut ?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ans.Rows) != 2 || ans.Rows[0].Label != string(entities.OrderStatusNew) || ans.Rows[0].Value != 2 {
			t.Fatalf("unexpected rows: %+v", ans.Rows)
		}
	})

	t.Run("units by product joins names and sorts days ascending elsewhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		textgen := mock_interfaces.NewMockITextGenerator(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewAssistantUseCase(textgen, orders, products, logger.NewNop())

		textgen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`{"metric":"units","group_by":"product","chart":"bar"}`, nil)
		orders.EXPECT().List(gomock.Any()).Return([]entities.Order{
			{ID: "o-1", ProductID: "p-1", Status: entities.OrderStatusFulfilled, QuantitySold: 3, CreatedAt: day("2026-08-01")},
			{ID: "o-2", ProductID: "ghost", Status: entities.OrderStatusFulfilled, QuantitySold: 1, CreatedAt: day("2026-08-02")},
		}, nil)
		products.EXPECT().List(gomock.Any()).Return([]entities.Product{{ID: "p-1", Name: "Montre"}}, nil)

		ans, err := uc.Ask(context.Background(), "unités par produit ?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ans.Rows) != 2 || ans.Rows[0].Label != "Montre" || ans.Rows[1].Label != "Produit Inconnu" {
			t.Fatalf("unexpected rows: %+v", ans.Rows)
		}
	})

	t.Run("generator error is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		textgen := mock_interfaces.NewMockITextGenerator(ctrl)
		uc := NewAssistantUseCase(textgen, nil, nil, logger.NewNop())

		textgen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("upstream down"))

		_, err := uc.Ask(context.Background(), "CA par source ?")
		if err == nil || err.Error() != "upstream down" {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})
}
