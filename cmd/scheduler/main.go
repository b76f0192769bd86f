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
	"maatwerk_backend/internal/merchants"
	"maatwerk_backend/internal/notification"
	"maatwerk_backend/internal/projects"
	"maatwerk_backend/internal/quotes"
	"maatwerk_backend/internal/scheduler"
	"maatwerk_backend/platform/config"
	"maatwerk_backend/platform/db"
	"maatwerk_backend/platform/logger"
	"maatwerk_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	eventBus := events.NewInMemoryBus(log)
	val := validator.New()

	// Worker-side module wiring. Nothing here serves HTTP; the modules exist
	// so bid expiry runs through the same service path as the API.
	catalogModule := catalog.NewModule(pool, nil, cfg.GetCatalogCacheTTL(), val, log)
	quotesModule := quotes.NewModule(pool, catalogModule.Service(), val, log)
	projectsModule := projects.NewModule(pool, quotesModule.Service(), nil, eventBus, cfg, val, log)
	bidsModule := bids.NewModule(pool, projectsModule.Service(), eventBus, cfg, val, log)
	merchantsModule := merchants.NewModule(pool, val, log)

	// Expiry rejections should mail merchants from this process too.
	var sender email.Sender
	if cfg.GetEmailEnabled() {
		sender = email.NewSMTPSender(cfg)
	}
	notificationService := notification.New(sender, merchantsModule.Service(), projectsModule.Service(), cfg.GetAppBaseURL(), log)
	notificationService.Register(eventBus)

	worker, err := scheduler.NewWorker(cfg, bidsModule.Service(), log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	worker.Run(ctx)
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
