package routes

import (
	"context"
	"log"
	"time"

	_ "budget_service/docs"
	"budget_service/internal/adapter/http/handlers"
	"budget_service/internal/adapter/http/middleware"
	"budget_service/internal/adapter/persistence/gateway"
	"budget_service/internal/adapter/persistence/repository"
	"budget_service/internal/infrastructure/config"
	"budget_service/internal/infrastructure/database"
	"budget_service/internal/infrastructure/metrics"
	"budget_service/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const startupTimeout = 30 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		log.Fatalf("Failed to configure DynamoDB: %v", err)
	}
	db, err := database.ConnectPostgres(ctx, cfg.PostgresConn)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	if cfg.PostgresMigrate {
		if err := database.MigratePostgres(ctx, db); err != nil {
			log.Fatalf("Failed to migrate Postgres: %v", err)
		}
	}

	repo := repository.NewBudgetRequestDynamoRepository(ddb, repository.Tables{
		BudgetRequests:  cfg.Tables.BudgetRequests,
		ClientResponses: cfg.Tables.ClientResponses,
	})
	budgetUseCase := usecase.NewBudgetRequestUseCase(
		repo,
		gateway.NewCatalogPostgresGateway(db),
		gateway.NewClientPostgresGateway(db),
		gateway.NewIdentityPostgresGateway(db),
	)

	m := metrics.New()
	router := NewRouter(handlers.NewBudgetRequestHandler(budgetUseCase, m), m, middleware.NewKeyLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	log.Printf("[budget][routes] listening port=%s rate_limit_rps=%v", cfg.Port, cfg.RateLimitRPS)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the engine with middlewares, docs, metrics and the /v1 API.
func NewRouter(budgetHandler *handlers.BudgetRequestHandler, m *metrics.Metrics, limiter *middleware.KeyLimiter) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := v1.Group("")
	api.Use(middleware.RateLimit(limiter, m))
	addBudgetRequestRoutes(api, budgetHandler)
	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Metrics(m))
}
