// Package worker drives periodic queue processing and retention cleanup.
package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/skycruzer/fleet-notify/internal/model"
)

type queueProcessor interface {
	ProcessQueue(ctx context.Context, limit int) model.RunSummary
}

type queueCleaner interface {
	CleanupOldQueueItems(ctx context.Context) (int64, error)
}

// Runner repeatedly processes due notifications and periodically sweeps
// old terminal records.
type Runner struct {
	processor queueProcessor
	cleaner   queueCleaner

	interval        time.Duration
	cleanupInterval time.Duration
	batchSize       int
}

func NewRunner(p queueProcessor, c queueCleaner, interval, cleanupInterval time.Duration, batchSize int) *Runner {
	if interval <= 0 {
		interval = time.Minute
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 24 * time.Hour
	}

	return &Runner{
		processor:       p,
		cleaner:         c,
		interval:        interval,
		cleanupInterval: cleanupInterval,
		batchSize:       batchSize,
	}
}

// Run blocks until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	processTicker := time.NewTicker(r.interval)
	defer processTicker.Stop()

	cleanupTicker := time.NewTicker(r.cleanupInterval)
	defer cleanupTicker.Stop()

	zlog.Logger.Info().
		Dur("interval", r.interval).
		Dur("cleanup_interval", r.cleanupInterval).
		Msg("queue runner started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("queue runner stopped")
			return
		case <-processTicker.C:
			summary := r.processor.ProcessQueue(ctx, r.batchSize)
			if summary.Processed > 0 || len(summary.Errors) > 0 {
				zlog.Logger.Info().
					Int("processed", summary.Processed).
					Int("successful", summary.Successful).
					Int("failed", summary.Failed).
					Int("errors", len(summary.Errors)).
					Msg("queue batch processed")
			}
		case <-cleanupTicker.C:
			removed, err := r.cleaner.CleanupOldQueueItems(ctx)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to cleanup old queue items")
				continue
			}
			zlog.Logger.Info().Int64("removed", removed).Msg("old queue items removed")
		}
	}
}
