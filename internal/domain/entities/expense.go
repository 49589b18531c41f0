package entities

import "time"

// ExpenseCategory enumerates the cashflow categories staff may record.

type ExpenseCategory string

const (
	ExpenseCategoryTransport ExpenseCategory = "Transport"
	ExpenseCategoryInternet  ExpenseCategory = "Internet/Data"
	ExpenseCategoryPackaging ExpenseCategory = "Emballage"
	ExpenseCategoryMarketing ExpenseCategory = "Marketing"
	ExpenseCategoryOther     ExpenseCategory = "Autre"
)

// ValidExpenseCategory reports whether c is one of the enumerated categories.
func ValidExpenseCategory(c ExpenseCategory) bool {
	switch c {
	case ExpenseCategoryTransport, ExpenseCategoryInternet, ExpenseCategoryPackaging,
		ExpenseCategoryMarketing, ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense is an outgoing cashflow row recorded by staff.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Type is always "SORTIE" for rows created by this service; the column exists
// because the cashflow table also holds storefront-side entries.
type Expense struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Category    ExpenseCategory `json:"category"`
	AmountCFA   int64           `json:"amount_cfa"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// ExpenseTypeOut marks money leaving the till.
const ExpenseTypeOut = "SORTIE"
