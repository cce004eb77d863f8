package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/skycruzer/fleet-notify/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// retentionWindow is how long sent and cancelled records are kept before the
// cleanup sweep removes them. Terminally failed records are retained for
// diagnosis.
const retentionWindow = 7 * 24 * time.Hour

// Repository provides access to the notification_queue and notification_log
// tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new queue repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

const notificationColumns = `
		id, user_id, email_address, notification_type, subject, template_name,
		template_data, priority, scheduled_for, status, attempts, max_attempts,
		last_attempt_at, next_retry_at, error_message, sent_at, created_at, updated_at`

// CreateNotification inserts a new pending record and returns its ID.
func (r *Repository) CreateNotification(ctx context.Context, n model.QueuedNotification) (uuid.UUID, error) {
	query := `
		INSERT INTO notification_queue (
		    user_id, email_address, notification_type, subject, template_name,
		    template_data, priority, scheduled_for, status, attempts, max_attempts
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending', 0, $9)
		RETURNING id;
    `

	data, err := json.Marshal(n.TemplateData)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal template data: %w", err)
	}

	var id uuid.UUID
	err = r.db.QueryRowContext(
		ctx, query,
		n.UserID, n.EmailAddress, n.NotificationType, n.Subject, n.TemplateName,
		data, n.Priority, n.ScheduledFor, n.MaxAttempts,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return id, nil
}

// CreateBatch inserts all records in a single multi-row statement and
// returns the number queued. The insert is all-or-nothing; callers get the
// aggregate store error rather than per-row detail.
func (r *Repository) CreateBatch(ctx context.Context, ns []model.QueuedNotification) (int, error) {
	if len(ns) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO notification_queue (
		    user_id, email_address, notification_type, subject, template_name,
		    template_data, priority, scheduled_for, status, attempts, max_attempts
		) VALUES `

	args := make([]any, 0, len(ns)*9)
	for i, n := range ns {
		if i > 0 {
			query += ", "
		}
		base := i * 9
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, 'pending', 0, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9)

		data, err := json.Marshal(n.TemplateData)
		if err != nil {
			return 0, fmt.Errorf("marshal template data: %w", err)
		}

		args = append(args,
			n.UserID, n.EmailAddress, n.NotificationType, n.Subject, n.TemplateName,
			data, n.Priority, n.ScheduledFor, n.MaxAttempts,
		)
	}

	res, err := r.db.ExecContext(ctx, query+";", args...)
	if err != nil {
		return 0, fmt.Errorf("failed to create notification batch: %w", err)
	}

	rows, _ := res.RowsAffected()
	return int(rows), nil
}

// GetDueNotifications fetches pending records whose schedule time has passed
// and that are not waiting on a retry delay, ordered by priority ascending
// then scheduled time ascending. This ordering is the sole scheduling
// policy.
func (r *Repository) GetDueNotifications(ctx context.Context, limit int) ([]model.QueuedNotification, error) {
	query := `
		SELECT` + notificationColumns + `
		FROM notification_queue
		WHERE status = 'pending'
		  AND scheduled_for <= now()
		  AND (next_retry_at IS NULL OR next_retry_at <= now())
		ORDER BY priority ASC, scheduled_for ASC
		LIMIT $1;
    `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get due notifications: %w", err)
	}
	defer rows.Close()

	var list []model.QueuedNotification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}

	return list, rows.Err()
}

// GetNotificationByID retrieves one record by its ID.
func (r *Repository) GetNotificationByID(ctx context.Context, id uuid.UUID) (*model.QueuedNotification, error) {
	query := `
		SELECT` + notificationColumns + `
		FROM notification_queue
		WHERE id = $1;
    `

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotificationNotFound
		}

		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return &n, nil
}

// UpdateStatus sets a terminal status on a record. For sent it also stamps
// sent_at.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status, errorMessage string) error {
	query := `
		UPDATE notification_queue
		SET status = $1,
		    error_message = NULLIF($2, ''),
		    sent_at = CASE WHEN $1 = 'sent' THEN now() ELSE sent_at END,
		    updated_at = now()
		WHERE id = $3;
    `

	res, err := r.db.ExecContext(ctx, query, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// UpdateAttempt records a failed dispatch: increments attempts, stamps the
// attempt time, and schedules the next retry. Status is left untouched so
// the record stays discoverable once next_retry_at passes.
func (r *Repository) UpdateAttempt(ctx context.Context, id uuid.UUID, errorMessage string, nextRetryAt time.Time) error {
	query := `
		UPDATE notification_queue
		SET attempts = attempts + 1,
		    last_attempt_at = now(),
		    next_retry_at = $1,
		    error_message = $2,
		    updated_at = now()
		WHERE id = $3;
    `

	res, err := r.db.ExecContext(ctx, query, nextRetryAt, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update notification attempt: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// CancelNotification flips a pending record to cancelled. Returns false when
// the record does not exist or is no longer pending; cancellation never
// touches a record that is already terminal or being processed.
func (r *Repository) CancelNotification(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE notification_queue
		SET status = 'cancelled', updated_at = now()
		WHERE id = $1 AND status = 'pending';
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to cancel notification: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

// CountPending returns the number of records still awaiting dispatch.
func (r *Repository) CountPending(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM notification_queue
		WHERE status = 'pending';
    `

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending notifications: %w", err)
	}

	return count, nil
}

// DeleteOldNotifications removes sent and cancelled records last touched
// before the retention window and returns how many rows were removed.
// Failed records are kept for diagnosis.
func (r *Repository) DeleteOldNotifications(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM notification_queue
		WHERE status IN ('sent', 'cancelled')
		  AND updated_at < $1;
    `

	res, err := r.db.ExecContext(ctx, query, now.Add(-retentionWindow))
	if err != nil {
		return 0, fmt.Errorf("failed to delete old notifications: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted row count: %w", err)
	}

	return rows, nil
}

// InsertLog appends a delivery-log entry. Entries are immutable once
// written.
func (r *Repository) InsertLog(ctx context.Context, entry model.LogEntry) error {
	query := `
		INSERT INTO notification_log (
		    queue_id, delivery_status, provider, provider_message_id
		) VALUES ($1, $2, $3, NULLIF($4, ''));
    `

	_, err := r.db.ExecContext(ctx, query, entry.QueueID, entry.DeliveryStatus, entry.Provider, entry.ProviderMessageID)
	if err != nil {
		return fmt.Errorf("failed to insert notification log: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (model.QueuedNotification, error) {
	var (
		n       model.QueuedNotification
		data    []byte
		errMsg  sql.NullString
		lastAt  sql.NullTime
		nextAt  sql.NullTime
		sentAt  sql.NullTime
		userID  uuid.NullUUID
		subject sql.NullString
		tmpl    sql.NullString
	)

	err := row.Scan(
		&n.ID, &userID, &n.EmailAddress, &n.NotificationType, &subject, &tmpl,
		&data, &n.Priority, &n.ScheduledFor, &n.Status, &n.Attempts, &n.MaxAttempts,
		&lastAt, &nextAt, &errMsg, &sentAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return n, err
	}

	if userID.Valid {
		n.UserID = &userID.UUID
	}
	n.Subject = subject.String
	n.TemplateName = tmpl.String
	n.ErrorMessage = errMsg.String
	if lastAt.Valid {
		n.LastAttemptAt = &lastAt.Time
	}
	if nextAt.Valid {
		n.NextRetryAt = &nextAt.Time
	}
	if sentAt.Valid {
		n.SentAt = &sentAt.Time
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &n.TemplateData); err != nil {
			return n, fmt.Errorf("decode template data: %w", err)
		}
	}

	return n, nil
}
