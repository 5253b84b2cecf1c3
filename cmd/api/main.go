package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/driving-records/internal/api/http"
	"github.com/spec-kit/driving-records/internal/api/http/handlers"
	"github.com/spec-kit/driving-records/internal/auth"
	"github.com/spec-kit/driving-records/internal/cache"
	"github.com/spec-kit/driving-records/internal/config"
	"github.com/spec-kit/driving-records/internal/domain"
	"github.com/spec-kit/driving-records/internal/events"
	"github.com/spec-kit/driving-records/internal/observability"
	"github.com/spec-kit/driving-records/internal/persistence"
	"github.com/spec-kit/driving-records/internal/repository"
	"github.com/spec-kit/driving-records/internal/service"
	"github.com/spec-kit/driving-records/internal/validation"
	"github.com/spec-kit/driving-records/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(cfg.Postgres.DSN, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	userRepo := repository.NewUserRepository(pg.Pool)
	enquiryRepo := repository.NewEnquiryRepository(pg.Pool)
	customerRepo := repository.NewCustomerRepository(pg.Pool)

	enquiryCache := cache.NewListCache[domain.Enquiry](redis.Client, cache.EnquiryListKey, cfg.Redis.ListCacheTTL(), logger)
	customerCache := cache.NewListCache[domain.Customer](redis.Client, cache.CustomerListKey, cfg.Redis.ListCacheTTL(), logger)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartEventWorker(dispatcher, worker.Subscribers{
		Audit:         service.NewAuditService(dispatcher, logger, cfg.Audit),
		EnquiryCache:  enquiryCache,
		CustomerCache: customerCache,
	})

	tokens := auth.NewTokenManager(cfg.Auth)
	validator := validation.New()

	authService := service.NewAuthService(userRepo, auth.NewPasswordHasher(cfg.Auth.BcryptCost), tokens)
	enquiryService := service.NewEnquiryService(service.EnquiryDependencies{
		Repo:       enquiryRepo,
		Validator:  validator,
		Cache:      enquiryCache,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	customerService := service.NewCustomerService(service.CustomerDependencies{
		Repo:       customerRepo,
		Validator:  validator,
		Cache:      customerCache,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	health := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version).Require("postgres", pg)
	if redis.Enabled() {
		health.Observe("redis", redis)
	}

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         health,
		Auth:           handlers.NewAuthHandler(authService),
		Enquiries:      handlers.NewEnquiryHandler(enquiryService),
		Customers:      handlers.NewCustomerHandler(customerService),
		AuthMiddleware: auth.NewAuthMiddleware(tokens),
		Metrics:        metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
