package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tokenpay-core/config"
	httpHandler "tokenpay-core/internal/adapter/http/handler"
	"tokenpay-core/internal/adapter/sandbox"
	pgStorage "tokenpay-core/internal/adapter/storage/postgres"
	redisStorage "tokenpay-core/internal/adapter/storage/redis"
	"tokenpay-core/internal/core/ports"
	"tokenpay-core/internal/service"
	"tokenpay-core/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting TokenPay Core")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	recurringRepo := pgStorage.NewRecurringRepo(pool)
	purchaseRepo := pgStorage.NewPurchaseRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	triggerGuard := redisStorage.NewTriggerGuard(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// External collaborators: sandbox stand-ins until real integrations land.
	gateway := sandbox.NewGateway(log)
	directory := sandbox.NewDirectory()
	subscriptions := sandbox.NewSubscriptions()
	certificates := sandbox.NewCertificates("")
	clock := service.SystemClock{}

	// Initialize core services
	feeEngine, err := service.NewDefaultFeeEngine(cfg.Fees.Flat, cfg.Fees.Percent)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize fee engine")
	}

	walletLedger := service.NewWalletService(walletRepo, ledgerRepo, transactor, clock, log)
	sessionSvc := service.NewSessionService(
		walletLedger,
		feeEngine,
		subscriptions,
		directory,
		gateway,
		txRepo,
		clock,
		cfg.Session.SettlementTimeout,
		cfg.Session.MaxAttempts,
		log,
	)
	recurringSvc, err := service.NewRecurringService(
		recurringRepo,
		purchaseRepo,
		walletRepo,
		walletLedger,
		gateway,
		triggerGuard,
		certificates,
		clock,
		cfg.Catalog.CostPerToken,
		cfg.Catalog.Currency,
		cfg.Scheduler.TriggerTTL,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize recurring service")
	}
	txReader := service.NewTransactionReader(txRepo)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:     sessionSvc,
		Ledger:         walletLedger,
		RecurringSvc:   recurringSvc,
		TxReader:       txReader,
		Clock:          clock,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
