package interfaces

import "context"

// SaleRequest is the input of the store-side process_sale procedure.
type SaleRequest struct {
	Phone     string
	ProductID string
	Quantity  int
	TotalCFA  int64
	Source    string
}

// SaleResult is the procedure's structured outcome. Success=false carries a
// human-readable reason (insufficient stock, unknown product, ...).
type SaleResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ISaleProcedure abstracts the external atomic manual-sale procedure. It
// creates the order row and decrements stock in one server-side transaction;
// this service performs no pre-validation beyond basic input checks and
// trusts the returned result.
type ISaleProcedure interface {
	ProcessSale(ctx context.Context, req SaleRequest) (SaleResult, error)
}
