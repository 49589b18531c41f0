package interfaces

import (
	"context"

	"sublime_ops/internal/domain/entities"
)

// IExpenseRepository abstracts DynamoDB persistence for cashflow expenses.
type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
}
