package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maatwerk_backend/internal/bids"
	"maatwerk_backend/internal/catalog"
	"maatwerk_backend/internal/email"
	"maatwerk_backend/internal/events"
	apphttp "maatwerk_backend/internal/http"
	"maatwerk_backend/internal/http/router"
	"maatwerk_backend/internal/merchants"
	"maatwerk_backend/internal/notification"
	"maatwerk_backend/internal/projects"
	projectservice "maatwerk_backend/internal/projects/service"
	"maatwerk_backend/internal/quotes"
	"maatwerk_backend/internal/scheduler"
	"maatwerk_backend/platform/config"
	"maatwerk_backend/platform/db"
	"maatwerk_backend/platform/logger"
	"maatwerk_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	redisClient := initRedis(cfg, log)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	expiryScheduler, closeScheduler := initExpiryScheduler(cfg, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	catalogModule := catalog.NewModule(pool, redisClient, cfg.GetCatalogCacheTTL(), val, log)
	quotesModule := quotes.NewModule(pool, catalogModule.Service(), val, log)
	projectsModule := projects.NewModule(pool, quotesModule.Service(), expiryScheduler, eventBus, cfg, val, log)
	bidsModule := bids.NewModule(pool, projectsModule.Service(), eventBus, cfg, val, log)
	merchantsModule := merchants.NewModule(pool, val, log)

	// Notification module subscribes to domain events (not HTTP-facing).
	// Without SMTP configured it still registers and skips every send.
	var sender email.Sender
	if cfg.GetEmailEnabled() {
		sender = email.NewSMTPSender(cfg)
		log.Info("email sender initialized", "host", cfg.GetSMTPHost())
	} else {
		log.Warn("EMAIL_ENABLED is false; bid notifications disabled")
	}
	notificationService := notification.New(sender, merchantsModule.Service(), projectsModule.Service(), cfg.GetAppBaseURL(), log)
	notificationService.Register(eventBus)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			catalogModule,
			quotesModule,
			projectsModule,
			bidsModule,
			merchantsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initRedis(cfg config.CatalogCacheConfig, log *logger.Logger) *redis.Client {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; catalog cache disabled")
		return nil
	}

	opt, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		log.Error("invalid REDIS_URL; catalog cache disabled", "error", err)
		return nil
	}

	return redis.NewClient(opt)
}

func initExpiryScheduler(cfg config.SchedulerConfig, log *logger.Logger) (projectservice.ExpiryScheduler, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; bid expiry disabled")
		return nil, nil
	}

	expiryClient, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize expiry scheduler client", "error", err)
		return nil, nil
	}

	return expiryClient, func() {
		_ = expiryClient.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return errors.New(name + ": invalid retry attempts")
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
