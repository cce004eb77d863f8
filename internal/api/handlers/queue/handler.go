package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/skycruzer/fleet-notify/internal/api/dto"
	"github.com/skycruzer/fleet-notify/internal/api/respond"
	"github.com/skycruzer/fleet-notify/internal/model"
	queuesvc "github.com/skycruzer/fleet-notify/internal/service/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/queue/mock.go -package=mocks

type queueService interface {
	QueueNotification(ctx context.Context, n model.QueuedNotification) (uuid.UUID, error)
	QueueBatch(ctx context.Context, ns []model.QueuedNotification) (int, []string)
	CancelNotification(ctx context.Context, id uuid.UUID) (bool, error)
	GetNotificationStatus(ctx context.Context, id uuid.UUID) (*model.QueuedNotification, error)
	StatusByID(ctx context.Context, id uuid.UUID) (string, error)
	PendingCount(ctx context.Context) (int, error)
	CleanupOldQueueItems(ctx context.Context) (int64, error)
}

type queueProcessor interface {
	ProcessQueue(ctx context.Context, limit int) model.RunSummary
}

// Handler serves the queue management endpoints.
type Handler struct {
	service   queueService
	processor queueProcessor
	validator *validator.Validate
}

func NewHandler(s queueService, p queueProcessor, v *validator.Validate) *Handler {
	return &Handler{service: s, processor: p, validator: v}
}

// Enqueue queues a single notification.
func (h *Handler) Enqueue(c *ginext.Context) {
	var req dto.EnqueueRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	n, err := toNotification(req)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	id, err := h.service.QueueNotification(c.Request.Context(), n)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("email", req.EmailAddress).Msg("failed to queue notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// EnqueueBatch queues several notifications at once.
func (h *Handler) EnqueueBatch(c *ginext.Context) {
	var req dto.EnqueueBatchRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	ns := make([]model.QueuedNotification, 0, len(req.Notifications))
	for i, r := range req.Notifications {
		n, err := toNotification(r)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("record %d: %w", i, err))
			return
		}
		ns = append(ns, n)
	}

	queued, errs := h.service.QueueBatch(c.Request.Context(), ns)

	respond.OK(c.Writer, map[string]any{
		"queued": queued,
		"errors": errs,
	})
}

// GetStatus returns the full record for one notification.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	n, err := h.service.GetNotificationStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queuesvc.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, n)
}

// Status is the lightweight status-only lookup backing dashboard polling.
func (h *Handler) Status(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	status, err := h.service.StatusByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queuesvc.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]string{"status": status})
}

// Cancel cancels a pending notification. A record that is already terminal
// or already picked up reports a conflict.
func (h *Handler) Cancel(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	cancelled, err := h.service.CancelNotification(c.Request.Context(), id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cancel notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if !cancelled {
		respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("notification is not pending"))
		return
	}

	respond.OK(c.Writer, "notification cancelled")
}

// PendingCount reports the number of records awaiting dispatch.
func (h *Handler) PendingCount(c *ginext.Context) {
	count, err := h.service.PendingCount(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to count pending notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]int{"pending": count})
}

// Process triggers one processing batch and returns its summary.
func (h *Handler) Process(c *ginext.Context) {
	var req dto.ProcessRequest

	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to decode request body")
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
			return
		}
	}

	summary := h.processor.ProcessQueue(c.Request.Context(), req.Limit)
	respond.OK(c.Writer, summary)
}

// Cleanup sweeps old sent/cancelled records and reports the removed count.
func (h *Handler) Cleanup(c *ginext.Context) {
	removed, err := h.service.CleanupOldQueueItems(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to cleanup old queue items")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]int64{"removed": removed})
}

func (h *Handler) parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Str("id", idStr).Msg("invalid notification id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}

func toNotification(req dto.EnqueueRequest) (model.QueuedNotification, error) {
	n := model.QueuedNotification{
		EmailAddress:     req.EmailAddress,
		NotificationType: req.NotificationType,
		Subject:          req.Subject,
		TemplateName:     req.TemplateName,
		TemplateData:     req.TemplateData,
		Priority:         req.Priority,
		MaxAttempts:      req.MaxAttempts,
	}

	if req.UserID != "" {
		uid, err := uuid.Parse(req.UserID)
		if err != nil {
			return n, fmt.Errorf("invalid user id")
		}
		n.UserID = &uid
	}

	if req.ScheduledFor != "" {
		at, err := time.Parse(time.RFC3339, req.ScheduledFor)
		if err != nil {
			return n, fmt.Errorf("invalid scheduled_for, expected RFC3339")
		}
		n.ScheduledFor = at
	}

	return n, nil
}
