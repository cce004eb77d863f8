// Package queue implements the queue management operations: enqueue,
// cancel, status lookup, pending count, and retention cleanup. All record
// store calls run through the bounded executor and the backoff policy so
// bursts of management traffic cannot overload the database.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	wbfredis "github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/skycruzer/fleet-notify/internal/model"
	queuerepo "github.com/skycruzer/fleet-notify/internal/repository/queue"
	"github.com/skycruzer/fleet-notify/pkg/backoff"
	"github.com/skycruzer/fleet-notify/pkg/execqueue"
)

// ErrNotificationNotFound distinguishes a missing record from a store
// failure on lookups.
var ErrNotificationNotFound = queuerepo.ErrNotificationNotFound

var (
	ErrMissingEmailAddress     = errors.New("email address is required")
	ErrMissingNotificationType = errors.New("notification type is required")
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/queue/mock.go -package=mocks

type queueRepository interface {
	CreateNotification(ctx context.Context, n model.QueuedNotification) (uuid.UUID, error)
	CreateBatch(ctx context.Context, ns []model.QueuedNotification) (int, error)
	GetNotificationByID(ctx context.Context, id uuid.UUID) (*model.QueuedNotification, error)
	CancelNotification(ctx context.Context, id uuid.UUID) (bool, error)
	CountPending(ctx context.Context) (int, error)
	DeleteOldNotifications(ctx context.Context, now time.Time) (int64, error)
}

type statusCache interface {
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// compile-time check that the wbf redis client satisfies the cache seam.
var _ statusCache = (*wbfredis.Client)(nil)

// Service exposes the queue management API over the record store.
type Service struct {
	repo          queueRepository
	cache         statusCache
	exec          *execqueue.Executor
	policy        backoff.Policy
	cacheStrategy retry.Strategy
}

// NewService creates the queue management service. The executor is owned by
// the caller so several services can share one database budget.
func NewService(repo queueRepository, cache statusCache, exec *execqueue.Executor, policy backoff.Policy, cacheStrategy retry.Strategy) *Service {
	return &Service{
		repo:          repo,
		cache:         cache,
		exec:          exec,
		policy:        policy,
		cacheStrategy: cacheStrategy,
	}
}

// do routes a store call through the bounded executor with retries.
func (s *Service) do(ctx context.Context, fn func(context.Context) error) error {
	return s.doWith(ctx, nil, fn)
}

// doWith is do with a custom retry predicate; nil means the default one.
func (s *Service) doWith(ctx context.Context, shouldRetry backoff.RetryableFunc, fn func(context.Context) error) error {
	return s.exec.Do(ctx, func(ctx context.Context) error {
		return backoff.RetryWith(ctx, s.policy, shouldRetry, fn)
	})
}

// notFoundAware declines further attempts once the store reports a missing
// record; a not-found can never heal by retrying.
func notFoundAware(err error) bool {
	return !errors.Is(err, ErrNotificationNotFound) && backoff.Retryable(err)
}

// normalize applies store-level defaults and validates required fields.
func normalize(n *model.QueuedNotification) error {
	if n.EmailAddress == "" {
		return ErrMissingEmailAddress
	}
	if n.NotificationType == "" {
		return ErrMissingNotificationType
	}

	if n.Priority < 1 || n.Priority > 10 {
		n.Priority = model.DefaultPriority
	}
	if n.ScheduledFor.IsZero() {
		n.ScheduledFor = time.Now()
	}
	if n.MaxAttempts <= 0 {
		n.MaxAttempts = model.DefaultMaxAttempts
	}

	return nil
}

// QueueNotification inserts one record as pending with zero attempts and
// returns the generated id.
func (s *Service) QueueNotification(ctx context.Context, n model.QueuedNotification) (uuid.UUID, error) {
	if err := normalize(&n); err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err := s.do(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.repo.CreateNotification(ctx, n)
		return err
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("queue notification: %w", err)
	}

	return id, nil
}

// QueueBatch inserts many records in one store round trip. Records failing
// validation are reported per-record and excluded; a store failure on the
// remaining batch is reported as one aggregate error.
func (s *Service) QueueBatch(ctx context.Context, ns []model.QueuedNotification) (int, []string) {
	errs := make([]string, 0)
	valid := make([]model.QueuedNotification, 0, len(ns))

	for i := range ns {
		n := ns[i]
		if err := normalize(&n); err != nil {
			errs = append(errs, fmt.Sprintf("record %d: %v", i, err))
			continue
		}
		valid = append(valid, n)
	}

	if len(valid) == 0 {
		return 0, errs
	}

	var queued int
	err := s.do(ctx, func(ctx context.Context) error {
		var err error
		queued, err = s.repo.CreateBatch(ctx, valid)
		return err
	})
	if err != nil {
		errs = append(errs, fmt.Sprintf("batch insert: %v", err))
		return 0, errs
	}

	return queued, errs
}

// CancelNotification flips pending to cancelled. Returns false when the
// record is already terminal, already picked up, or unknown.
func (s *Service) CancelNotification(ctx context.Context, id uuid.UUID) (bool, error) {
	var cancelled bool
	err := s.do(ctx, func(ctx context.Context) error {
		var err error
		cancelled, err = s.repo.CancelNotification(ctx, id)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("cancel notification: %w", err)
	}

	if cancelled {
		if err := s.cache.SetWithRetry(ctx, s.cacheStrategy, statusKey(id), model.StatusCancelled); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
		}
	}

	return cancelled, nil
}

// GetNotificationStatus returns the full record. A missing record surfaces
// as ErrNotificationNotFound so callers can tell it apart from a store
// failure.
func (s *Service) GetNotificationStatus(ctx context.Context, id uuid.UUID) (*model.QueuedNotification, error) {
	var n *model.QueuedNotification
	err := s.doWith(ctx, notFoundAware, func(ctx context.Context) error {
		var err error
		n, err = s.repo.GetNotificationByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			return nil, ErrNotificationNotFound
		}

		return nil, fmt.Errorf("get notification status: %w", err)
	}

	return n, nil
}

// StatusByID is the lightweight status lookup backing dashboard polling.
// Terminal statuses are served from the cache; pending is never cached
// because the processor keeps mutating such records.
func (s *Service) StatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, s.cacheStrategy, statusKey(id))
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}
	if err == nil && status != "" {
		return status, nil
	}

	n, err := s.GetNotificationStatus(ctx, id)
	if err != nil {
		return "", err
	}

	if n.Status != model.StatusPending {
		if err := s.cache.SetWithRetry(ctx, s.cacheStrategy, statusKey(id), n.Status); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
		}
	}

	return n.Status, nil
}

// PendingCount reports how many records await dispatch.
func (s *Service) PendingCount(ctx context.Context) (int, error) {
	var count int
	err := s.do(ctx, func(ctx context.Context) error {
		var err error
		count, err = s.repo.CountPending(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("count pending notifications: %w", err)
	}

	return count, nil
}

// CleanupOldQueueItems sweeps sent and cancelled records past the retention
// window and returns the number of rows removed.
func (s *Service) CleanupOldQueueItems(ctx context.Context) (int64, error) {
	var removed int64
	err := s.do(ctx, func(ctx context.Context) error {
		var err error
		removed, err = s.repo.DeleteOldNotifications(ctx, time.Now())
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("cleanup old queue items: %w", err)
	}

	return removed, nil
}

func statusKey(id uuid.UUID) string {
	return "notification:status:" + id.String()
}
