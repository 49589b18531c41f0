package request

// ExpenseRequest records an outgoing cashflow entry.
type ExpenseRequest struct {
	Category    string `json:"category" binding:"required"`
	AmountCFA   int64  `json:"amount_cfa" binding:"required,min=1"`
	Description string `json:"description"`
}
