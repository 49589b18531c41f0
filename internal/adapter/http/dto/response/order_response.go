package response

import (
	"time"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase"
)

// OrderResponse is the wire shape of an order.
type OrderResponse struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"product_id"`
	QuantitySold      int       `json:"quantity_sold"`
	CustomerPhone     string    `json:"customer_phone"`
	MarketingSource   string    `json:"marketing_source"`
	Status            string    `json:"status"`
	TotalAmountCFA    int64     `json:"total_amount_cfa"`
	UnitBuyCostAtSale *int64    `json:"unit_buy_cost_at_sale,omitempty"`
	OrderRef          string    `json:"order_ref,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID,
		ProductID:       o.ProductID,
		QuantitySold:    o.QuantitySold,
		CustomerPhone:   o.CustomerPhone,
		MarketingSource: o.MarketingSource,
		Status:          string(o.Status),
		TotalAmountCFA:  o.TotalAmountCFA,
		OrderRef:        o.OrderRef,
		CreatedAt:       o.CreatedAt,
	}
	if o.HasCostSnapshot {
		cost := o.UnitBuyCostAtSale
		resp.UnitBuyCostAtSale = &cost
	}
	return resp
}

// ActionableOrderResponse is a pending order with the live product context the
// operator decides on.
type ActionableOrderResponse struct {
	OrderResponse
	ProductName  string `json:"product_name"`
	CurrentStock int    `json:"current_stock"`
	BuyPriceCFA  int64  `json:"buy_price_cfa"`
}

func FromActionableOrder(a usecase.ActionableOrder) ActionableOrderResponse {
	return ActionableOrderResponse{
		OrderResponse: FromOrder(a.Order),
		ProductName:   a.ProductName,
		CurrentStock:  a.CurrentStock,
		BuyPriceCFA:   a.BuyPriceCFA,
	}
}

func FromActionableOrders(items []usecase.ActionableOrder) []ActionableOrderResponse {
	out := make([]ActionableOrderResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromActionableOrder(a))
	}
	return out
}
