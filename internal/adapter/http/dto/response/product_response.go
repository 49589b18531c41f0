package response

import (
	"time"

	"sublime_ops/internal/domain/entities"
)

// ProductResponse is the wire shape of an inventory line.
type ProductResponse struct {
	ID           string    `json:"id"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	BuyPriceCFA  int64     `json:"buy_price_cfa"`
	SellPriceCFA int64     `json:"sell_price_cfa"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		ProductName:  p.Name,
		Quantity:     p.Quantity,
		BuyPriceCFA:  p.BuyPriceCFA,
		SellPriceCFA: p.SellPriceCFA,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
