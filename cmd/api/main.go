package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/bank-ledger-service/internal/api/http"
	"github.com/spec-kit/bank-ledger-service/internal/api/http/handlers"
	"github.com/spec-kit/bank-ledger-service/internal/auth"
	"github.com/spec-kit/bank-ledger-service/internal/config"
	"github.com/spec-kit/bank-ledger-service/internal/ledger"
	"github.com/spec-kit/bank-ledger-service/internal/observability"
	"github.com/spec-kit/bank-ledger-service/internal/service"
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

	account := ledger.NewAccount(cfg.Ledger.AccountID, cfg.Ledger.OpeningBalance)
	identity := auth.NewStaticIdentity(cfg.Auth)

	authService := service.NewAuthService(*cfg, identity, logger)
	ledgerService := service.NewLedgerService(account, logger)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), logger)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
		Auth:           handlers.NewAuthHandler(authService),
		Ledger:         handlers.NewLedgerHandler(ledgerService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
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
