package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/finbook/finbook/internal/adapter/http"
	"github.com/finbook/finbook/internal/adapter/http/handler"
	"github.com/finbook/finbook/internal/adapter/http/middleware"
	"github.com/finbook/finbook/internal/adapter/repository"
	postgresRepo "github.com/finbook/finbook/internal/adapter/repository/postgres"
	redisRepo "github.com/finbook/finbook/internal/adapter/repository/redis"
	"github.com/finbook/finbook/internal/export"
	"github.com/finbook/finbook/internal/format"
	"github.com/finbook/finbook/internal/infrastructure/auth"
	"github.com/finbook/finbook/internal/infrastructure/config"
	"github.com/finbook/finbook/internal/infrastructure/logger"
	"github.com/finbook/finbook/internal/infrastructure/postgres"
	"github.com/finbook/finbook/internal/infrastructure/redis"
	"github.com/finbook/finbook/internal/usecase"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "finbook",
	})

	ctx := context.Background()

	// PostgreSQL backs users always, and entries when it is the selected
	// storage driver.
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		URL:            cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Redis is optional: without it, mutating requests simply skip the
	// idempotency cache.
	var idempotencyStore usecase.IdempotencyStore
	var redisClient *redislib.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
	}

	entryRepo, closeEntries, err := repository.NewEntryRepository(cfg.StorageDriver, pool, cfg.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to build entry store")
	}
	defer closeEntries()
	log.Info().Str("driver", cfg.StorageDriver).Msg("entry store ready")

	userRepo := postgresRepo.NewUserRepository(pool)
	idGen := repository.NewULIDGenerator()

	// Use cases
	ledgerUC := usecase.NewLedgerUseCase(entryRepo, idGen, log.Logger)
	exportUC := usecase.NewExportUseCase(entryRepo, export.NewSerializer())
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	// Presentation
	fmtr := format.NewCurrencyFormatter(format.Locale(cfg.CurrencyLocale))
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Handlers
	ledgerHandler := handler.NewLedgerHandler(ledgerUC, fmtr)
	exportHandler := handler.NewExportHandler(exportUC)
	authHandler := handler.NewAuthHandler(userUC, jwtManager)
	userHandler := handler.NewUserHandler(userUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		LedgerHandler:    ledgerHandler,
		ExportHandler:    exportHandler,
		AuthHandler:      authHandler,
		UserHandler:      userHandler,
		HealthHandler:    healthHandler,
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      rateLimiter,
		Logger:           log.Logger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Per-IP limiter state grows with distinct clients; reset it hourly.
	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rateLimiter.CleanupLimiters()
			case <-cleanupDone:
				return
			}
		}
	}()
	defer close(cleanupDone)

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
