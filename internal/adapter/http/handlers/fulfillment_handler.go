package handlers

import (
	"errors"
	"net/http"

	"sublime_ops/internal/adapter/http/dto/request"
	"sublime_ops/internal/adapter/http/dto/response"
	"sublime_ops/internal/adapter/http/middleware"
	"sublime_ops/internal/usecase"
	"sublime_ops/internal/usecase/interfaces"
	"sublime_ops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSalePayload = pkg.NewDomainErrorSimple("INVALID_SALE_INPUT", "Invalid manual sale payload", http.StatusBadRequest)

// FulfillmentHandler handles the order review-and-fulfillment endpoints.

type FulfillmentHandler struct {
	usecase usecase.IFulfillmentUseCase
}

func NewFulfillmentHandler(uc usecase.IFulfillmentUseCase) *FulfillmentHandler {
	return &FulfillmentHandler{usecase: uc}
}

// ListActionable returns every order still awaiting a decision, newest first.
// An optional ?search= narrows by phone, order reference or product name.
func (h *FulfillmentHandler) ListActionable(c *gin.Context) {
	items, err := h.usecase.ListActionable(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapFulfillmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromActionableOrders(items))
}

// Fulfill validates the pending order: stock is decremented and the order
// becomes terminal in one guarded transaction.
func (h *FulfillmentHandler) Fulfill(c *gin.Context) {
	order, err := h.usecase.Fulfill(c.Request.Context(), middleware.UsernameFromContext(c), c.Param("id"))
	if err != nil {
		appErr := mapFulfillmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// Cancel closes the order on the customer's behalf without touching stock.
func (h *FulfillmentHandler) Cancel(c *gin.Context) {
	order, err := h.usecase.Cancel(c.Request.Context(), middleware.UsernameFromContext(c), c.Param("id"))
	if err != nil {
		appErr := mapFulfillmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// RecordManualSale registers a staff-taken sale through the store-side atomic
// procedure. A procedure rejection (insufficient stock, unknown product) comes
// back as 422 with the procedure's message.
func (h *FulfillmentHandler) RecordManualSale(c *gin.Context) {
	var payload request.ManualSaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.RecordManualSale(c.Request.Context(), middleware.UsernameFromContext(c), interfaces.SaleRequest{
		Phone:     payload.CustomerPhone,
		ProductID: payload.ProductID,
		Quantity:  payload.Quantity,
		TotalCFA:  payload.TotalAmountCFA,
		Source:    payload.ResolveSource(),
	})
	if err != nil {
		appErr := mapFulfillmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if !res.Success {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, response.SaleResultResponse{Success: res.Success, Message: res.Message})
}

func mapFulfillmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyClosed):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_CLOSED", "Order is already in a terminal status", http.StatusConflict)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough stock to fulfill this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrPhoneRequired),
		errors.Is(err, usecase.ErrProductRequired),
		errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleProcedureMissing):
		return pkg.NewDomainErrorSimple("SALE_PROCEDURE_UNAVAILABLE", "Manual sale procedure is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
