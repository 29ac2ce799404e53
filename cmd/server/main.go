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

	httpAdapter "github.com/mvduarte/contaledger/internal/adapter/http"
	"github.com/mvduarte/contaledger/internal/adapter/http/handler"
	postgresRepo "github.com/mvduarte/contaledger/internal/adapter/repository/postgres"
	redisRepo "github.com/mvduarte/contaledger/internal/adapter/repository/redis"
	"github.com/mvduarte/contaledger/internal/infrastructure/config"
	"github.com/mvduarte/contaledger/internal/infrastructure/logging"
	"github.com/mvduarte/contaledger/internal/infrastructure/metrics"
	"github.com/mvduarte/contaledger/internal/infrastructure/postgres"
	"github.com/mvduarte/contaledger/internal/infrastructure/redis"
	"github.com/mvduarte/contaledger/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	// Run migrations when asked to
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis. The cache is a fast path only, so a missing Redis
	// degrades to database-backed idempotency instead of aborting startup.
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, idempotency cache disabled")
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
	}

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	movementRepo := postgresRepo.NewMovementRepository(pool)
	idempotencyRepo := postgresRepo.NewIdempotencyRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()

	var cache usecase.IdempotencyCache
	if redisClient != nil {
		cache = redisRepo.NewIdempotencyCache(redisClient, cfg.IdempotencyCacheTTL)
	}

	// Initialize use cases
	movementUC := usecase.NewMovementUseCase(txManager, accountRepo, movementRepo, idempotencyRepo, cache, idGen)
	movementUC.ReplayCounter = m.IdempotentReplays
	balanceUC := usecase.NewBalanceUseCase(accountRepo, movementRepo)
	balanceUC.Retrier = postgresRepo.NewRetrier(logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat))

	// Initialize handlers
	movementHandler := handler.NewMovementHandler(movementUC, m)
	balanceHandler := handler.NewBalanceHandler(balanceUC, m)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		MovementHandler: movementHandler,
		BalanceHandler:  balanceHandler,
		HealthHandler:   healthHandler,
		Logger:          log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
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

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
