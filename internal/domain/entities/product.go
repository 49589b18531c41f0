package entities

import "time"

// Product is an inventory line owned by the inventory table.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - BuyPriceCFA is the current unit acquisition cost, SellPriceCFA the
//     current target unit price, both CFA francs (integer minor units).
//
// Invariant: Quantity never goes negative. The only operation that decrements
// it is the guarded fulfillment transaction (and the external manual-sale
// procedure, which carries the same guard on the server side).
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	BuyPriceCFA  int64     `json:"buy_price_cfa"`
	SellPriceCFA int64     `json:"sell_price_cfa"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
