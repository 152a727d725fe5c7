package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	investmentUseCase "github.com/tonsuimining/platform/internal/domain/usecase/investment"
	ledgerUseCase "github.com/tonsuimining/platform/internal/domain/usecase/ledger"
	pinUseCase "github.com/tonsuimining/platform/internal/domain/usecase/pin"
	userUseCase "github.com/tonsuimining/platform/internal/domain/usecase/user"

	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/handler"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/routes"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/database"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/database/migration"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/logger"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/pingen"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/repository"
	timeProvider "github.com/tonsuimining/platform/internal/infrastructure/adapter/time"
	"github.com/tonsuimining/platform/internal/infrastructure/auth"
	"github.com/tonsuimining/platform/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(&cfg.Database, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Core adapters
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(&cfg.Auth, tp)
	pinGenerator := pingen.NewCryptoGenerator()

	// Repositories outside the unit of work (plain reads)
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	auditRepo := repository.NewAuditRepository(dbManager.DB(), appLogger)
	planRepo := repository.NewPlanRepository(dbManager.DB(), appLogger)

	// Unit of work for everything balance-affecting
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Seed data
	ctx := context.Background()
	if err := migration.CreateDefaultPlans(ctx, planRepo, tp); err != nil {
		appLogger.Error("Failed to seed default plans", map[string]any{
			"error": err.Error(),
		})
	}
	if err := migration.CreateDefaultAdmin(ctx, userRepo, hasher, tp,
		cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		appLogger.Error("Failed to seed admin account", map[string]any{
			"error": err.Error(),
		})
	}

	// Use cases
	userService := userUseCase.NewService(userRepo, auditRepo, hasher, tp, appLogger)
	ledgerService := ledgerUseCase.NewService(uow, tp, appLogger)
	pinService := pinUseCase.NewService(uow, pinGenerator, tp, appLogger)
	investmentService := investmentUseCase.NewService(uow, tp, appLogger)

	// API handlers
	authHandler := handler.NewAuthHandler(userService, tokens, appLogger)
	ledgerHandler := handler.NewLedgerHandler(ledgerService, appLogger)
	pinHandler := handler.NewPinHandler(pinService, tp, appLogger)
	investmentHandler := handler.NewInvestmentHandler(investmentService, tp, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, tokens, appLogger, authHandler, ledgerHandler, pinHandler, investmentHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or TSM_DB_HOST)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or TSM_DB_USERNAME)")
	}
	if cfg.Database.Password == "" {
		missing = append(missing, "database.password (or TSM_DB_PASSWORD)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or TSM_DB_NAME)")
	}

	if cfg.Auth.Secret == "" && cfg.Environment != config.Development {
		missing = append(missing, "auth.secret (or TSM_AUTH_SECRET)")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s", cfg.Environment)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}
