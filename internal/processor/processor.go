// Package processor drives the queue state machine: fetch due pending
// records in priority order, attempt dispatch for each, and apply the
// success, retry-scheduling, or exhaustion transition.
package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/skycruzer/fleet-notify/internal/model"
)

// DefaultBatchSize caps one processing run when the caller passes no limit.
const DefaultBatchSize = 50

// exhaustedMessage is the terminal error recorded once a record's attempt
// budget is spent.
const exhaustedMessage = "Max retry attempts reached"

//go:generate mockgen -source=processor.go -destination=../mocks/processor/mock.go -package=mocks

type queueStore interface {
	GetDueNotifications(ctx context.Context, limit int) ([]model.QueuedNotification, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, errorMessage string) error
	UpdateAttempt(ctx context.Context, id uuid.UUID, errorMessage string, nextRetryAt time.Time) error
	InsertLog(ctx context.Context, entry model.LogEntry) error
}

type notificationDispatcher interface {
	Dispatch(ctx context.Context, n model.QueuedNotification) model.DispatchResult
}

// Processor runs one batch per invocation and returns a summary. It never
// self-schedules; the surrounding application decides when to call it.
type Processor struct {
	store      queueStore
	dispatcher notificationDispatcher
	provider   string
}

// New creates a queue processor. provider names the delivery channel in
// log entries.
func New(store queueStore, dispatcher notificationDispatcher, provider string) *Processor {
	return &Processor{
		store:      store,
		dispatcher: dispatcher,
		provider:   provider,
	}
}

// ProcessQueue fetches up to limit due records and works through them
// sequentially, in fetch order, so side effects respect the priority
// ordering. Per-record failures never abort the batch; only a failed fetch
// short-circuits the run. The returned summary is never an error.
func (p *Processor) ProcessQueue(ctx context.Context, limit int) model.RunSummary {
	if limit <= 0 {
		limit = DefaultBatchSize
	}

	summary := model.RunSummary{Errors: []string{}}

	due, err := p.store.GetDueNotifications(ctx, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to fetch due notifications")
		summary.Errors = append(summary.Errors, fmt.Sprintf("fetch due notifications: %v", err))
		return summary
	}

	for _, n := range due {
		summary.Processed++

		if n.Attempts >= n.MaxAttempts {
			p.markFailed(ctx, n, exhaustedMessage)
			summary.Failed++
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s", n.ID, exhaustedMessage))
			continue
		}

		res := p.safeDispatch(ctx, n)

		switch {
		case res.Success:
			p.markSent(ctx, n, res.MessageID)
			summary.Successful++

		case res.Permanent:
			p.markFailed(ctx, n, res.Error)
			summary.Failed++
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s", n.ID, res.Error))

		default:
			p.scheduleRetry(ctx, n, res.Error)
			summary.Failed++
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s", n.ID, res.Error))
		}
	}

	return summary
}

// safeDispatch contains panics from a dispatch so one bad record cannot
// take down the batch.
func (p *Processor) safeDispatch(ctx context.Context, n model.QueuedNotification) (res model.DispatchResult) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Logger.Error().Interface("panic", r).Str("id", n.ID.String()).Msg("dispatch panicked")
			res = model.DispatchResult{Error: fmt.Sprintf("dispatch panic: %v", r)}
		}
	}()

	return p.dispatcher.Dispatch(ctx, n)
}

func (p *Processor) markSent(ctx context.Context, n model.QueuedNotification, messageID string) {
	if err := p.store.UpdateStatus(ctx, n.ID, model.StatusSent, ""); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to mark notification sent")
	}

	entry := model.LogEntry{
		QueueID:           n.ID,
		DeliveryStatus:    model.DeliveryDelivered,
		Provider:          p.provider,
		ProviderMessageID: messageID,
	}
	if err := p.store.InsertLog(ctx, entry); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to append delivery log")
	}
}

func (p *Processor) markFailed(ctx context.Context, n model.QueuedNotification, reason string) {
	if err := p.store.UpdateStatus(ctx, n.ID, model.StatusFailed, reason); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to mark notification failed")
	}

	entry := model.LogEntry{
		QueueID:        n.ID,
		DeliveryStatus: model.DeliveryFailed,
		Provider:       p.provider,
	}
	if err := p.store.InsertLog(ctx, entry); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to append delivery log")
	}
}

func (p *Processor) scheduleRetry(ctx context.Context, n model.QueuedNotification, reason string) {
	delay := retryDelay(n.Attempts + 1)

	if err := p.store.UpdateAttempt(ctx, n.ID, reason, time.Now().Add(delay)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to record attempt")
		return
	}

	zlog.Logger.Warn().
		Str("id", n.ID.String()).
		Int("attempt", n.Attempts+1).
		Dur("retry_in", delay).
		Str("reason", reason).
		Msg("dispatch failed, retry scheduled")
}

// retryDelay implements the fixed database-level schedule: 5 minutes, then
// 15 minutes, then an hour for every attempt after that.
func retryDelay(attempt int) time.Duration {
	switch {
	case attempt <= 1:
		return 5 * time.Minute
	case attempt == 2:
		return 15 * time.Minute
	default:
		return time.Hour
	}
}
