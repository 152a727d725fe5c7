package routes

import (
	"github.com/gin-gonic/gin"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/handler"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/tonsuimining/platform/internal/infrastructure/auth"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	tokens *auth.TokenManager,
	logger coreport.Logger,
	authHandler *handler.AuthHandler,
	ledgerHandler *handler.LedgerHandler,
	pinHandler *handler.PinHandler,
	investmentHandler *handler.InvestmentHandler,
) {
	v1 := router.Group("/api/v1")

	// Public routes
	v1.GET("/plans", investmentHandler.Plans)

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	// Authenticated user routes
	user := v1.Group("/")
	user.Use(middleware.AuthRequired(tokens, logger))
	{
		user.GET("/me", authHandler.Me)

		user.POST("/transactions/deposit", ledgerHandler.SubmitDeposit)
		user.POST("/transactions/withdrawal", ledgerHandler.SubmitWithdrawal)
		user.GET("/transactions", ledgerHandler.ListMine)

		user.POST("/investments", investmentHandler.Create)
		user.GET("/investments", investmentHandler.ListMine)

		user.GET("/pins", pinHandler.ListMine)
	}

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthRequired(tokens, logger), middleware.AdminRequired())
	{
		admin.GET("/transactions", ledgerHandler.ListAll)
		admin.POST("/transactions/:transactionId/process", ledgerHandler.Process)
		admin.POST("/users/:userId/adjust", ledgerHandler.Adjust)
		admin.GET("/users/:userId/logs", authHandler.UserSecurityLogs)

		admin.POST("/pins", pinHandler.Issue)
		admin.GET("/pins", pinHandler.ListAll)
		admin.POST("/pins/:pinId/cancel", pinHandler.Cancel)
		admin.DELETE("/pins/:pinId", pinHandler.Delete)

		admin.GET("/plans", investmentHandler.AllPlans)
		admin.POST("/plans", investmentHandler.CreatePlan)
		admin.PUT("/plans/:planId", investmentHandler.UpdatePlan)
		admin.GET("/investments", investmentHandler.ListAll)
		admin.POST("/investments/payouts", investmentHandler.MaturePayouts)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
