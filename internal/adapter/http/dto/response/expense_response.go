package response

import (
	"time"

	"sublime_ops/internal/domain/entities"
)

// ExpenseResponse is the wire shape of a cashflow entry.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	AmountCFA   int64     `json:"amount_cfa"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Type:        e.Type,
		Category:    string(e.Category),
		AmountCFA:   e.AmountCFA,
		Description: e.Description,
		Date:        e.Date,
	}
}

func FromExpenses(expenses []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}
