package request

// RestockRequest adds received stock under a product name. When no product
// matches the name (case-insensitively), a new one is created.
type RestockRequest struct {
	ProductName  string `json:"product_name" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
	BuyPriceCFA  int64  `json:"buy_price_cfa" binding:"min=0"`
	SellPriceCFA int64  `json:"sell_price_cfa" binding:"min=0"`
}
