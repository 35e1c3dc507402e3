package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/javohir/hamyon/internal/adapter/http"
	"github.com/javohir/hamyon/internal/adapter/http/handler"
	"github.com/javohir/hamyon/internal/adapter/notifier"
	redisRepo "github.com/javohir/hamyon/internal/adapter/repository/redis"
	"github.com/javohir/hamyon/internal/infrastructure/config"
	"github.com/javohir/hamyon/internal/infrastructure/logger"
	"github.com/javohir/hamyon/internal/infrastructure/metrics"
	"github.com/javohir/hamyon/internal/infrastructure/redis"
	"github.com/javohir/hamyon/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger
	zerolog.SetGlobalLevel(appLogger.GetLevel())

	ctx := context.Background()

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Wire the ledger with its collaborators
	store := redisRepo.NewCloudStore(redisClient)

	var botNotifier usecase.BotNotifier
	if cfg.BotWebhookURL != "" {
		botNotifier = notifier.NewBotWebhook(cfg.BotWebhookURL, appLogger)
	} else {
		log.Warn().Msg("no bot webhook configured, notifications are logged only")
		botNotifier = notifier.NewLogNotifier(appLogger)
	}

	ledger := usecase.NewLedger(store, botNotifier, usecase.SystemClock{}, appLogger).
		WithMetrics(metrics.New())

	if err := ledger.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load ledger state")
	}

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(ledger)
	statsHandler := handler.NewStatsHandler(ledger)
	categoryHandler := handler.NewCategoryHandler(ledger)
	settingsHandler := handler.NewSettingsHandler(ledger)
	healthHandler := handler.NewHealthHandler(redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: transactionHandler,
		StatsHandler:       statsHandler,
		CategoryHandler:    categoryHandler,
		SettingsHandler:    settingsHandler,
		HealthHandler:      healthHandler,
		Logger:             appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	// Drain in-flight cloud store writes and bot notifications.
	ledger.Flush()

	log.Info().Msg("server stopped")
}
