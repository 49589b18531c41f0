package handlers

import (
	"errors"
	"net/http"

	"sublime_ops/internal/adapter/http/dto/request"
	"sublime_ops/internal/adapter/http/dto/response"
	"sublime_ops/internal/adapter/http/middleware"
	"sublime_ops/internal/usecase"
	"sublime_ops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRestockPayload = pkg.NewDomainErrorSimple("INVALID_RESTOCK_INPUT", "Invalid restock payload", http.StatusBadRequest)

// InventoryHandler handles the stock page endpoints.

type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

func (h *InventoryHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// Restock tops up an existing product by name or creates it. 201 signals a
// newly created product, 200 a top-up.
func (h *InventoryHandler) Restock(c *gin.Context) {
	var payload request.RestockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRestockPayload.HTTPStatus, errInvalidRestockPayload.ToHTTPError())
		return
	}

	product, created, err := h.usecase.Restock(
		c.Request.Context(),
		middleware.UsernameFromContext(c),
		payload.ProductName,
		payload.Quantity,
		payload.BuyPriceCFA,
		payload.SellPriceCFA,
	)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromProduct(product))
}

func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	var payload request.RestockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRestockPayload.HTTPStatus, errInvalidRestockPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.CreateProduct(
		c.Request.Context(),
		middleware.UsernameFromContext(c),
		payload.ProductName,
		payload.Quantity,
		payload.BuyPriceCFA,
		payload.SellPriceCFA,
	)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(product))
}

// DeleteProduct removes an unreferenced product. Products with historical
// orders are retained and reported as a conflict.
func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	err := h.usecase.DeleteProduct(c.Request.Context(), middleware.UsernameFromContext(c), c.Param("id"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductExists):
		return pkg.NewDomainErrorSimple("PRODUCT_ALREADY_EXISTS", "A product with this identifier already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrProductReferenced):
		return pkg.NewDomainErrorSimple("PRODUCT_REFERENCED", "Product is referenced by historical orders and cannot be deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrProductNameRequired),
		errors.Is(err, usecase.ErrInvalidStockQuantity),
		errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
