package scheduler

import (
	"context"
	"fmt"

	"maatwerk_backend/platform/config"
	"maatwerk_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// BidExpirer rejects the pending bids of a project whose deadline passed.
type BidExpirer interface {
	ExpireForProject(ctx context.Context, projectID uuid.UUID) (int, error)
}

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	bids   BidExpirer
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, bids BidExpirer, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		bids:   bids,
		log:    log,
	}

	mux.HandleFunc(TaskBidExpiry, w.handleBidExpiry)

	return w, nil
}

func (w *Worker) handleBidExpiry(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseBidExpiryPayload(task)
	if err != nil {
		return err
	}

	projectID, err := uuid.Parse(payload.ProjectID)
	if err != nil {
		return err
	}

	expired, err := w.bids.ExpireForProject(ctx, projectID)
	if err != nil {
		return err
	}

	if expired > 0 {
		w.log.Info("expired pending bids", "projectId", projectID, "count", expired)
	}
	return nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
