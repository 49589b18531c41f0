package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase/interfaces"
	"sublime_ops/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidExpenseCategory = errors.New("invalid expense category")
	ErrInvalidExpenseAmount   = errors.New("invalid expense amount")
)

// IExpenseUseCase records and lists outgoing cashflow entries.

type IExpenseUseCase interface {
	RecordExpense(ctx context.Context, actor string, category entities.ExpenseCategory, amountCFA int64, description string) (entities.Expense, error)
	ListExpenses(ctx context.Context) ([]entities.Expense, error)
}

type ExpenseUseCase struct {
	expenses interfaces.IExpenseRepository
	audit    auditTrail
	log      logger.Logger
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(expenses interfaces.IExpenseRepository, audit interfaces.IAuditLogRepository, log logger.Logger) *ExpenseUseCase {
	return &ExpenseUseCase{
		expenses: expenses,
		audit:    auditTrail{repo: audit, log: log},
		log:      log,
	}
}

func (u *ExpenseUseCase) RecordExpense(ctx context.Context, actor string, category entities.ExpenseCategory, amountCFA int64, description string) (entities.Expense, error) {
	if !entities.ValidExpenseCategory(category) {
		return entities.Expense{}, ErrInvalidExpenseCategory
	}
	if amountCFA <= 0 {
		return entities.Expense{}, ErrInvalidExpenseAmount
	}

	e := entities.Expense{
		ID:          uuid.NewString(),
		Type:        entities.ExpenseTypeOut,
		Category:    category,
		AmountCFA:   amountCFA,
		Description: strings.TrimSpace(description),
		Date:        time.Now().UTC(),
	}

	created, err := u.expenses.Create(ctx, e)
	if err != nil {
		return entities.Expense{}, err
	}

	u.audit.append(ctx, entities.AuditEntry{
		Actor:    actor,
		Action:   entities.AuditActionRecordExpense,
		Entity:   "expense",
		EntityID: created.ID,
		Detail:   fmt.Sprintf("category=%s amount=%d", created.Category, created.AmountCFA),
	})
	u.log.Info("expense recorded",
		logger.String("expense_id", created.ID),
		logger.String("category", string(created.Category)),
		logger.Int64("amount_cfa", created.AmountCFA),
	)
	return created, nil
}

func (u *ExpenseUseCase) ListExpenses(ctx context.Context) ([]entities.Expense, error) {
	expenses, err := u.expenses.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	return expenses, nil
}
