package entities

import "time"

// OrderStatus represents the lifecycle of a customer order.
//
// Domain notes:
//   - Wire values keep the French labels used by the storefront and the
//     historical rows already in the orders table.
//   - Transitions are guarded, not exhaustive: only non-terminal orders may
//     move, and they move straight to a terminal status.
//   - "Annulé (Stock)" is a declared terminal status that no backend
//     operation currently produces; it exists for historical rows.

type OrderStatus string

const (
	OrderStatusNew               OrderStatus = "Nouveau"
	OrderStatusPendingWeb        OrderStatus = "En attente Web"
	OrderStatusFulfilled         OrderStatus = "Livré"
	OrderStatusCancelledCustomer OrderStatus = "Annulé (Client)"
	OrderStatusCancelledStockout OrderStatus = "Annulé (Stock)"
)

// IsTerminal reports whether no further transition may leave the status.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusFulfilled, OrderStatusCancelledCustomer, OrderStatusCancelledStockout:
		return true
	}
	return false
}

// Order is a sale recorded either by the web storefront or by staff through
// the manual-sale procedure.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (product_id-index): product_id
//
// Monetary representation:
//   - TotalAmountCFA and UnitBuyCostAtSale are CFA francs (minor units, integer).
//   - UnitBuyCostAtSale is stamped exactly once, at fulfillment time, as a
//     cost-of-goods snapshot for margin reporting. Zero means "not fulfilled yet";
//     HasCostSnapshot disambiguates genuinely-zero costs.
type Order struct {
	ID                string      `json:"id"`
	ProductID         string      `json:"product_id"`
	QuantitySold      int         `json:"quantity_sold"`
	CustomerPhone     string      `json:"customer_phone"`
	MarketingSource   string      `json:"marketing_source"`
	Status            OrderStatus `json:"status"`
	TotalAmountCFA    int64       `json:"total_amount_cfa"`
	UnitBuyCostAtSale int64       `json:"unit_buy_cost_at_sale,omitempty"`
	HasCostSnapshot   bool        `json:"has_cost_snapshot"`
	OrderRef          string      `json:"order_ref,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
}
