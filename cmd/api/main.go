package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/challenge"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/club"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/lottery"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/payout"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/referral"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/txn"

	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Program table and system accounts are checked before anything touches the database
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	production := cfg.Environment == config.Production
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
		Production: production,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Flush()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{
			"error": err.Error(),
		})
		appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger *logger.ZapLogger) error {
	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	catalog, err := cfg.Catalog()
	if err != nil {
		return fmt.Errorf("program table: %w", err)
	}
	accounts := cfg.SystemAccounts()
	scale := cfg.Scale()
	currency := cfg.Ledger.Currency

	// Connect to the database
	dbManager := database.NewManager(database.NewConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(ctx, accounts.IDs()); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Use cases
	uow := dbManager.UnitOfWork()
	runner := txn.NewRunner(uow, cfg.RetryPolicy(), dbManager.QueryTimeout(), tp, appLogger)
	writer := ledger.NewWriter(uow, tp, appLogger)

	ledgerService := ledger.NewService(runner, writer, []string{currency}, scale, tp, appLogger)
	clubEngine := club.NewEngine(club.Dependencies{
		Runner:       runner,
		Catalog:      catalog,
		Resolver:     referral.NewResolver(uow, catalog, accounts.House, appLogger),
		Codes:        referral.NewCodeGenerator(),
		Writer:       writer,
		Queue:        club.NewUserQueue(appLogger),
		Accounts:     accounts,
		Currency:     currency,
		TimeProvider: tp,
		Logger:       appLogger,
	})
	defer clubEngine.Shutdown()

	challengeService := challenge.NewService(runner, writer, accounts.Escrow, currency, scale, tp, appLogger)
	lotteryService := lottery.NewService(runner, writer, accounts.Escrow, currency, scale, tp, appLogger)
	processor := payout.NewProcessor(runner, writer, accounts, currency, scale, tp, appLogger)

	scheduler := payout.NewScheduler(cfg.PayoutScheduler(), runner, processor, tp, appLogger)
	if cfg.Scheduler.Enabled {
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	// HTTP surface
	router := routes.NewRouter(routes.Handlers{
		Club:      handler.NewClubHandler(clubEngine),
		Account:   handler.NewAccountHandler(ledgerService),
		Challenge: handler.NewChallengeHandler(challengeService, processor, scale),
		Lottery:   handler.NewLotteryHandler(lotteryService, processor, scale),
		Payout:    handler.NewPayoutHandler(processor),
		Health:    handler.NewHealthHandler(dbManager.HealthChecker()),
	}, cfg.IsAdmin, appLogger, tp)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"programs": len(catalog.List()),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
