package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lemlem-pharmacy/backend/internal/application/auth"
	"github.com/lemlem-pharmacy/backend/internal/application/bincard"
	"github.com/lemlem-pharmacy/backend/internal/application/notification"
	"github.com/lemlem-pharmacy/backend/internal/application/reporting"
	"github.com/lemlem-pharmacy/backend/internal/domain/forecast"
	infrapdf "github.com/lemlem-pharmacy/backend/internal/infrastructure/pdf"
	"github.com/lemlem-pharmacy/backend/internal/infrastructure/postgres"
	"github.com/lemlem-pharmacy/backend/internal/infrastructure/sms"
	httpRouter "github.com/lemlem-pharmacy/backend/internal/interfaces/http"
	"github.com/lemlem-pharmacy/backend/pkg/config"
	"github.com/lemlem-pharmacy/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	binCardRepo := postgres.NewBinCardRepository(pool)
	medicineRepo := postgres.NewMedicineRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	reportUC := reporting.NewReportUseCase(
		binCardRepo, medicineRepo, saleRepo,
		forecast.NewHoltForecaster(), pdfGenerator, log,
	)

	binCardUC := bincard.NewUseCase(binCardRepo, medicineRepo)

	smsClient := sms.NewGatewayClient(cfg.SMS, log)
	notificationUC := notification.NewUseCase(
		notificationRepo, notificationRepo, medicineRepo, smsClient, log,
	)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReportUC:       reportUC,
		BinCardUC:      binCardUC,
		NotificationUC: notificationUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
