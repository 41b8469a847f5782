package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/business-site-service/internal/api/http"
	"github.com/spec-kit/business-site-service/internal/api/http/handlers"
	"github.com/spec-kit/business-site-service/internal/auth"
	"github.com/spec-kit/business-site-service/internal/config"
	"github.com/spec-kit/business-site-service/internal/events"
	"github.com/spec-kit/business-site-service/internal/mail"
	"github.com/spec-kit/business-site-service/internal/observability"
	"github.com/spec-kit/business-site-service/internal/persistence"
	"github.com/spec-kit/business-site-service/internal/repository"
	"github.com/spec-kit/business-site-service/internal/service"
	"github.com/spec-kit/business-site-service/internal/worker"
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
	adminRepo := repository.NewAdminRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	leadRepo := repository.NewLeadRepository(pool)
	tipRepo := repository.NewTipRepository(pool)
	couponRepo := repository.NewCouponRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	mailer := mail.NewSMTPSender(cfg.SMTP)
	if !mailer.Configured() {
		logger.Warn("SMTP_HOST not provided; outgoing email disabled")
	}

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		AdminRepo:         adminRepo,
		CustomerRepo:      customerRepo,
		PasswordResetRepo: resetRepo,
		Dispatcher:        dispatcher,
	})
	leadService := service.NewLeadService(leadRepo, dispatcher)
	tipService := service.NewTipService(tipRepo, dispatcher)
	couponService := service.NewCouponService(couponRepo)

	notificationService := service.NewNotificationService(dispatcher, mailer, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), adminRepo, customerRepo)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, logger),
		Portal:         handlers.NewPortalHandler(authService),
		Leads:          handlers.NewLeadsHandler(leadService),
		Tips:           handlers.NewTipsHandler(tipService),
		Coupons:        handlers.NewCouponsHandler(couponService),
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
