package response

import (
	"testing"
	"time"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase"
)

func TestFromOrder_CostSnapshot(t *testing.T) {
	t.Run("no snapshot omits cost", func(t *testing.T) {
		o := entities.Order{ID: "o-1", Status: entities.OrderStatusPendingWeb}
		resp := FromOrder(o)
		if resp.UnitBuyCostAtSale != nil {
			t.Fatalf("expected nil cost, got %v", *resp.UnitBuyCostAtSale)
		}
	})

	t.Run("snapshot kept even when zero", func(t *testing.T) {
		o := entities.Order{
			ID:              "o-2",
			Status:          entities.OrderStatusFulfilled,
			HasCostSnapshot: true,
		}
		resp := FromOrder(o)
		if resp.UnitBuyCostAtSale == nil || *resp.UnitBuyCostAtSale != 0 {
			t.Fatalf("expected zero cost snapshot, got %v", resp.UnitBuyCostAtSale)
		}
	})
}

func TestFromActionableOrders(t *testing.T) {
	created := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	items := []usecase.ActionableOrder{
		{
			Order: entities.Order{
				ID:            "o-1",
				ProductID:     "p-1",
				QuantitySold:  2,
				CustomerPhone: "0707000001",
				Status:        entities.OrderStatusPendingWeb,
				CreatedAt:     created,
			},
			ProductName:  "Savon Noir",
			CurrentStock: 8,
			BuyPriceCFA:  500,
		},
	}

	out := FromActionableOrders(items)
	if len(out) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out))
	}
	if out[0].ProductName != "Savon Noir" || out[0].CurrentStock != 8 {
		t.Fatalf("unexpected product context: %+v", out[0])
	}
	if out[0].Status != string(entities.OrderStatusPendingWeb) {
		t.Fatalf("unexpected status: %s", out[0].Status)
	}
	if !out[0].CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at: %v", out[0].CreatedAt)
	}
}
