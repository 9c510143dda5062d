package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/rma-service/internal/api/http"
	"github.com/spec-kit/rma-service/internal/api/http/handlers"
	"github.com/spec-kit/rma-service/internal/auth"
	"github.com/spec-kit/rma-service/internal/config"
	"github.com/spec-kit/rma-service/internal/observability"
	"github.com/spec-kit/rma-service/internal/persistence"
	"github.com/spec-kit/rma-service/internal/repository"
	"github.com/spec-kit/rma-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	companyRepo := repository.NewDistCompanyRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	caseRepo := repository.NewRMACaseRepository(pool)

	authService := service.NewAuthService(*cfg, userRepo)
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		CompanyRepo: companyRepo,
		ProductRepo: productRepo,
		Cache:       redis,
		CacheTTL:    time.Duration(cfg.Invoice.EANCacheTTLSec) * time.Second,
		Logger:      logger,
	})
	caseService := service.NewCaseService(caseRepo, companyRepo)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(authService),
		DistCompanies:  handlers.NewDistCompaniesHandler(catalogService),
		Products:       handlers.NewProductsHandler(catalogService),
		Cases:          handlers.NewRMACasesHandler(caseService),
		Invoices:       handlers.NewInvoicesHandler(caseService, cfg.Invoice.CompanyName),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
