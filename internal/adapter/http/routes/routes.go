package routes

import (
	"context"
	"fmt"
	"log"

	_ "sublime_ops/docs" // This will be auto-generated
	"sublime_ops/internal/adapter/http/handlers"
	"sublime_ops/internal/adapter/http/middleware"
	repository2 "sublime_ops/internal/adapter/persistence/repository"
	"sublime_ops/internal/config"
	"sublime_ops/internal/infrastructure/database"
	"sublime_ops/internal/infrastructure/storeproc"
	"sublime_ops/internal/infrastructure/textgen"
	"sublime_ops/internal/usecase"
	"sublime_ops/internal/usecase/interfaces"
	"sublime_ops/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLog.Sync() }()

	setMiddlewares(appLog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, appLog)

	err = router.Run(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
	if err != nil {
		appLog.Fatal("Failed to startup the application", logger.Error(err))
	}
}

func getRoutes(cfg *config.Config, appLog logger.Logger) {
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.Database)
	if err != nil {
		appLog.Fatal("Failed to connect to DynamoDB", logger.Error(err))
	}

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	expenseRepo := repository2.NewExpenseDynamoRepository(ddb)
	trafficRepo := repository2.NewTrafficDynamoRepository(ddb)
	auditRepo := repository2.NewAuditLogDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	var saleProc interfaces.ISaleProcedure
	spClient, err := storeproc.NewClient(cfg.SaleProc, appLog)
	if err != nil {
		appLog.Warn("Manual sale procedure not configured; manual sales disabled", logger.Error(err))
	} else {
		saleProc = spClient
	}

	var textGen interfaces.ITextGenerator
	tgClient, err := textgen.NewClient(cfg.TextGen, appLog)
	if err != nil {
		appLog.Warn("Text generation not configured; assistant disabled", logger.Error(err))
	} else {
		textGen = tgClient
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, cfg.Auth.TokenSecret, cfg.Auth.TokenTTL, appLog)
	if cfg.Auth.BootstrapUsername != "" {
		if err := authUseCase.EnsureBootstrapUser(context.Background(), cfg.Auth.BootstrapUsername, cfg.Auth.BootstrapPassword); err != nil {
			appLog.Fatal("Failed to ensure bootstrap user", logger.Error(err))
		}
	}

	fulfillmentUseCase := usecase.NewFulfillmentUseCase(orderRepo, productRepo, saleProc, auditRepo, appLog)
	inventoryUseCase := usecase.NewInventoryUseCase(productRepo, orderRepo, auditRepo, appLog)
	expenseUseCase := usecase.NewExpenseUseCase(expenseRepo, auditRepo, appLog)
	reportingUseCase := usecase.NewReportingUseCase(orderRepo, productRepo, trafficRepo, appLog)
	assistantUseCase := usecase.NewAssistantUseCase(textGen, orderRepo, productRepo, appLog)

	authHandler := handlers.NewAuthHandler(authUseCase)
	fulfillmentHandler := handlers.NewFulfillmentHandler(fulfillmentUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)
	expenseHandler := handlers.NewExpenseHandler(expenseUseCase)
	reportingHandler := handlers.NewReportingHandler(reportingUseCase)
	assistantHandler := handlers.NewAssistantHandler(assistantUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Everything past this point requires a staff session token.
	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(authUseCase))
	addDashboardRoutes(protected, fulfillmentHandler, inventoryHandler, expenseHandler, reportingHandler, assistantHandler)
}

func setMiddlewares(appLog logger.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		appLog.Error("Recovered from panic", logger.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
