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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/voucherpost/internal/adapter/http"
	"github.com/iho/voucherpost/internal/adapter/http/handler"
	"github.com/iho/voucherpost/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/voucherpost/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/voucherpost/internal/adapter/repository/redis"
	"github.com/iho/voucherpost/internal/infrastructure/config"
	"github.com/iho/voucherpost/internal/infrastructure/eventpublisher"
	"github.com/iho/voucherpost/internal/infrastructure/logger"
	"github.com/iho/voucherpost/internal/infrastructure/metrics"
	"github.com/iho/voucherpost/internal/infrastructure/postgres"
	"github.com/iho/voucherpost/internal/infrastructure/postgres/generated"
	"github.com/iho/voucherpost/internal/infrastructure/redis"
	"github.com/iho/voucherpost/internal/usecase"
)

// streamMaxLen caps the outbox stream so an absent consumer cannot grow it unbounded.
const streamMaxLen = 100_000

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:      cfg.DatabaseURL,
		MaxConns:         cfg.DatabaseMaxConns,
		MinConns:         cfg.DatabaseMinConns,
		StatementTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(reg)
	metrics.RegisterPoolStats(reg, pool.Stat)

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	voucherRepo := postgresRepo.NewVoucherRepository(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	billRepo := postgresRepo.NewBillRepository(pool)
	workflowRepo := postgresRepo.NewWorkflowRepository(pool)
	instanceRepo := postgresRepo.NewWorkflowInstanceRepository(pool)
	outboxRepo := outboxRepository(cfg, pool, log)
	idGen := postgresRepo.NewULIDGenerator()

	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Use cases
	rateUC := usecase.NewRateUseCase(postgresRepo.NewRateRepository(pool), cache, cfg.RateCacheTTL, appMetrics)
	taxUC := usecase.NewTaxUseCase(postgresRepo.NewTaxRepository(pool), cache, cfg.TaxCacheTTL)
	accountUC := usecase.NewAccountUseCase(accountRepo)
	billUC := usecase.NewBillUseCase(billRepo)

	voucherUC := usecase.NewVoucherUseCase(usecase.VoucherDeps{
		TxManager:      txManager,
		Retrier:        postgresRepo.NewRetrier(log),
		Vouchers:       voucherRepo,
		Sequences:      postgresRepo.NewSequenceRepository(),
		Accounts:       accountRepo,
		Bills:          billRepo,
		Outbox:         outboxRepo,
		Rates:          rateUC,
		Taxes:          taxUC,
		IDGen:          idGen,
		Locker:         redisRepo.NewPostingLocker(redisClient, cfg.PostingLockTTL, log),
		Metrics:        appMetrics,
		BaseCurrencyID: cfg.BaseCurrency,
	})

	catalog := usecase.NewWorkflowCatalog(workflowRepo, cfg.WorkflowCacheTTL, log)
	workflowUC := usecase.NewWorkflowUseCase(
		txManager, voucherRepo, instanceRepo, outboxRepo, catalog, idGen,
		unmatchedPolicy(cfg.UnresolvedWorkflowPolicy), appMetrics, log,
	)

	// Outbox relay
	if cfg.OutboxEnabled {
		publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
			OutboxRepo: outboxRepo,
			Publisher:  buildPublisher(cfg, redisClient, log),
			Logger:     log.With().Str("component", "outbox").Logger(),
			BatchSize:  cfg.OutboxBatchSize,
			Interval:   cfg.OutboxInterval,
			Retention:  cfg.OutboxRetention,
		})
		go func() {
			if err := publisher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("event publisher stopped")
			}
		}()
	}

	// HTTP
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		VoucherHandler:   handler.NewVoucherHandler(voucherUC),
		WorkflowHandler:  handler.NewWorkflowHandler(workflowUC),
		AccountHandler:   handler.NewAccountHandler(accountUC),
		ReferenceHandler: handler.NewReferenceHandler(rateUC, taxUC),
		BillHandler:      handler.NewBillHandler(billUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      buildRateLimiter(cfg),
		HTTPMetrics:      middleware.NewHTTPMetrics(reg),
		MetricsHandler:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Logger:           log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

// outboxRepository returns the durable outbox, or a discarding one when the
// relay is disabled so events do not pile up unread.
func outboxRepository(cfg *config.Config, db generated.DBTX, log zerolog.Logger) usecase.OutboxRepository {
	if !cfg.OutboxEnabled {
		return postgresRepo.NewNullOutboxRepository(log)
	}
	return postgresRepo.NewOutboxRepository(db)
}

func buildPublisher(cfg *config.Config, client *goredis.Client, log zerolog.Logger) eventpublisher.Publisher {
	if cfg.OutboxStream != "" && client != nil {
		return eventpublisher.NewStreamPublisher(client, cfg.OutboxStream, streamMaxLen)
	}
	return eventpublisher.NewLogPublisher(log)
}

func buildRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	if cfg.RateLimitRPS <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute)
}

func unmatchedPolicy(s string) usecase.UnmatchedWorkflowPolicy {
	if usecase.UnmatchedWorkflowPolicy(s) == usecase.PolicyAutoApprove {
		return usecase.PolicyAutoApprove
	}
	return usecase.PolicyHold
}
