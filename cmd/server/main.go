package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpAdapter "github.com/clubops/clubledger/internal/adapter/http"
	"github.com/clubops/clubledger/internal/adapter/http/handler"
	"github.com/clubops/clubledger/internal/adapter/http/middleware"
	postgresRepo "github.com/clubops/clubledger/internal/adapter/repository/postgres"
	redisRepo "github.com/clubops/clubledger/internal/adapter/repository/redis"
	"github.com/clubops/clubledger/internal/infrastructure/auth"
	"github.com/clubops/clubledger/internal/infrastructure/config"
	"github.com/clubops/clubledger/internal/infrastructure/logger"
	"github.com/clubops/clubledger/internal/infrastructure/metrics"
	"github.com/clubops/clubledger/internal/infrastructure/postgres"
	"github.com/clubops/clubledger/internal/infrastructure/redis"
	"github.com/clubops/clubledger/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	reportRepo := postgresRepo.NewReportRepository(pool)
	memberRepo := postgresRepo.NewMemberRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	reportCache := redisRepo.NewCache(redisClient)
	retrier := postgresRepo.NewRetrier()
	idGen := postgresRepo.NewULIDGenerator()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Use cases
	ledgerUC := usecase.NewLedgerUseCase(txManager, accountRepo, entryRepo, retrier, idGen, m)
	accountUC := usecase.NewAccountUseCase(accountRepo, ledgerUC, idGen, m)
	entryUC := usecase.NewEntryUseCase(entryRepo)
	reportUC := usecase.NewReportUseCase(reportRepo, reportCache)
	memberUC := usecase.NewMemberUseCase(memberRepo, idGen, m)
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	// Authentication is optional and enabled only when a secret is present.
	var jwtManager *auth.JWTManager
	if cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	}
	if cfg.AuthEnabled && jwtManager == nil {
		log.Fatal().Msg("AUTH_ENABLED requires JWT_SECRET to be set")
	}

	// Handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	entryHandler := handler.NewEntryHandler(entryUC)
	reportHandler := handler.NewReportHandler(reportUC)
	memberHandler := handler.NewMemberHandler(memberUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var authHandler *handler.AuthHandler
	if jwtManager != nil {
		authHandler = handler.NewAuthHandler(userUC, jwtManager, m)
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, m)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   accountHandler,
		LedgerHandler:    ledgerHandler,
		EntryHandler:     entryHandler,
		ReportHandler:    reportHandler,
		MemberHandler:    memberHandler,
		AuthHandler:      authHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      rateLimiter,
		Logger:           &log,
		Metrics:          m,
		MetricsGatherer:  registry,
		JWTManager:       jwtManager,
		AuthEnabled:      cfg.AuthEnabled,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

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
