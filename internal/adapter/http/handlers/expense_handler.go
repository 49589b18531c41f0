package handlers

import (
	"errors"
	"net/http"

	"sublime_ops/internal/adapter/http/dto/request"
	"sublime_ops/internal/adapter/http/dto/response"
	"sublime_ops/internal/adapter/http/middleware"
	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase"
	"sublime_ops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)

// ExpenseHandler handles the cashflow endpoints.

type ExpenseHandler struct {
	usecase usecase.IExpenseUseCase
}

func NewExpenseHandler(uc usecase.IExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc}
}

func (h *ExpenseHandler) RecordExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	expense, err := h.usecase.RecordExpense(
		c.Request.Context(),
		middleware.UsernameFromContext(c),
		entities.ExpenseCategory(payload.Category),
		payload.AmountCFA,
		payload.Description,
	)
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromExpense(expense))
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.usecase.ListExpenses(c.Request.Context())
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

func mapExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidExpenseCategory),
		errors.Is(err, usecase.ErrInvalidExpenseAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
