package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sangkips/cospharm-api/internal/application/service"
	"github.com/sangkips/cospharm-api/internal/config"
	"github.com/sangkips/cospharm-api/internal/domain/repository"
	"github.com/sangkips/cospharm-api/internal/infrastructure/database"
	infraRepo "github.com/sangkips/cospharm-api/internal/infrastructure/repository"
	"github.com/sangkips/cospharm-api/internal/presentation/http/handler"
	"github.com/sangkips/cospharm-api/internal/presentation/http/middleware"
	"github.com/sangkips/cospharm-api/internal/presentation/http/routes"
	"github.com/sangkips/cospharm-api/pkg/clock"
	"github.com/sangkips/cospharm-api/pkg/logger"
	"github.com/sangkips/cospharm-api/pkg/metrics"
	"github.com/sangkips/cospharm-api/pkg/utils"
)

const idempotencySweepInterval = time.Hour

func main() {
	cfg := config.Load()

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	}).With().Str("service", cfg.App.Name).Logger()

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// run owns every resource it opens, so deferred cleanup completes before main exits
func run(cfg *config.Config, log zerolog.Logger) error {
	db, err := database.NewDB(&cfg.Database, cfg.App.Debug, log)
	if err != nil {
		return fmt.Errorf("connect to %s database: %w", cfg.Database.Driver, err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	if err := database.AutoMigrate(db, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if cfg.App.SeedDemo {
		if err := database.SeedDemoData(db, log); err != nil {
			log.Warn().Err(err).Msg("failed to seed demo data")
		}
	}

	clk := clock.NewRealClock()
	m := metrics.New("cospharm")
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiryHours)

	// Repositories
	productRepo := infraRepo.NewProductRepository(db)
	customerRepo := infraRepo.NewCustomerRepository(db)
	promotionRepo := infraRepo.NewPromotionRepository(db)
	auditRepo := infraRepo.NewPricingAuditRepository(db)
	bulkRepo := infraRepo.NewBulkPriceUpdateRepository(db)
	idempotencyRepo := infraRepo.NewIdempotencyRepository(db)

	// Services
	pricingService := service.NewPricingService(productRepo, customerRepo, promotionRepo, auditRepo, clk, service.PricingOptions{
		PromotionsEnabled: cfg.Pricing.PromotionsEnabled,
		AuditDefaultLimit: cfg.Pricing.AuditDefaultLimit,
		AuditMaxLimit:     cfg.Pricing.AuditMaxLimit,
	}, m, log)
	productService := service.NewProductService(productRepo)
	customerService := service.NewCustomerService(customerRepo)
	promotionService := service.NewPromotionService(promotionRepo)
	bulkService := service.NewBulkUploadService(productRepo, bulkRepo, clk, m, log)

	handlers := &routes.Handlers{
		Pricing:    handler.NewPricingHandler(pricingService),
		Product:    handler.NewProductHandler(productService),
		Customer:   handler.NewCustomerHandler(customerService),
		Promotion:  handler.NewPromotionHandler(promotionService),
		BulkUpload: handler.NewBulkUploadHandler(bulkService, cfg.Upload.MaxSize),
	}

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfigFrom(cfg.RateLimit.Requests, cfg.RateLimit.Duration))
	defer rateLimiter.Stop()

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
		Metrics:         m,
		Clock:           clk,
		Log:             log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sweepIdempotencyKeys(ctx, idempotencyRepo, clk, log)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.App.Port).Str("env", cfg.App.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func sweepIdempotencyKeys(ctx context.Context, repo repository.IdempotencyRepository, clk clock.Clock, log zerolog.Logger) {
	ticker := time.NewTicker(idempotencySweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx, clk.Now())
			if err != nil {
				log.Warn().Err(err).Msg("idempotency sweep failed")
				continue
			}
			if n > 0 {
				log.Debug().Int64("deleted", n).Msg("expired idempotency keys removed")
			}
		}
	}
}
