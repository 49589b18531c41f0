package routes

import (
	"sublime_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addAuthRoutes(rg *gin.RouterGroup, auth *handlers.AuthHandler) {
	rg.POST("/auth/login", auth.Login)
}

func addDashboardRoutes(
	rg *gin.RouterGroup,
	fulfillment *handlers.FulfillmentHandler,
	inventory *handlers.InventoryHandler,
	expenses *handlers.ExpenseHandler,
	reporting *handlers.ReportingHandler,
	assistant *handlers.AssistantHandler,
) {
	rg.GET("/orders/actionable", fulfillment.ListActionable)
	rg.POST("/orders/:id/fulfill", fulfillment.Fulfill)
	rg.POST("/orders/:id/cancel", fulfillment.Cancel)
	rg.POST("/sales/manual", fulfillment.RecordManualSale)

	rg.GET("/products", inventory.ListProducts)
	rg.POST("/products", inventory.CreateProduct)
	rg.POST("/products/restock", inventory.Restock)
	rg.DELETE("/products/:id", inventory.DeleteProduct)

	rg.GET("/expenses", expenses.ListExpenses)
	rg.POST("/expenses", expenses.RecordExpense)

	rg.GET("/reports/summary", reporting.Summary)

	rg.POST("/assistant/ask", assistant.Ask)
}
