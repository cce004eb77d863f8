package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification statuses. pending is the only non-terminal status; a record
// with a failed attempt stays pending (with next_retry_at set) until its
// attempts are exhausted.
const (
	StatusPending   = "pending"
	StatusSent      = "sent"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// Notification types. The set is closed: the dispatcher rejects anything
// else as unroutable.
const (
	TypeCertificationExpiry = "certification_expiry"
	TypeLeaveRequest        = "leave_request"
	TypeLeaveApproval       = "leave_approval"
	TypeSystem              = "system"
	TypeWelcome             = "welcome"
	TypePasswordReset       = "password_reset"
)

// Delivery-log statuses for notification_log entries.
const (
	DeliveryDelivered  = "delivered"
	DeliveryBounced    = "bounced"
	DeliveryComplained = "complained"
	DeliveryFailed     = "failed"
)

// DefaultMaxAttempts applies when a caller enqueues without an explicit
// attempt budget.
const DefaultMaxAttempts = 3

// DefaultPriority is the middle of the 1 (highest) .. 10 (lowest) range.
const DefaultPriority = 5

// QueuedNotification is a single persisted notification awaiting or having
// completed delivery.
type QueuedNotification struct {
	ID               uuid.UUID      `json:"id"`
	UserID           *uuid.UUID     `json:"user_id,omitempty"`
	EmailAddress     string         `json:"email_address"`
	NotificationType string         `json:"notification_type"`
	Subject          string         `json:"subject"`
	TemplateName     string         `json:"template_name"`
	TemplateData     map[string]any `json:"template_data"`
	Priority         int            `json:"priority"`
	ScheduledFor     time.Time      `json:"scheduled_for"`
	Status           string         `json:"status"`
	Attempts         int            `json:"attempts"`
	MaxAttempts      int            `json:"max_attempts"`
	LastAttemptAt    *time.Time     `json:"last_attempt_at,omitempty"`
	NextRetryAt      *time.Time     `json:"next_retry_at,omitempty"`
	ErrorMessage     string         `json:"error_message,omitempty"`
	SentAt           *time.Time     `json:"sent_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// LogEntry is an append-only audit record of one delivery outcome. Never
// mutated once written.
type LogEntry struct {
	ID                uuid.UUID `json:"id"`
	QueueID           uuid.UUID `json:"queue_id"`
	DeliveryStatus    string    `json:"delivery_status"`
	Provider          string    `json:"provider"`
	ProviderMessageID string    `json:"provider_message_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// DispatchResult reports the outcome of invoking a send capability for one
// queue record.
type DispatchResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`

	// Permanent marks a failure that can never succeed (unroutable type);
	// the processor fails such records without spending retry attempts.
	Permanent bool `json:"-"`
}

// RunSummary aggregates one processor batch. Per-record failures land in
// Errors, prefixed with the record id; the summary itself is never an error.
type RunSummary struct {
	Processed  int      `json:"processed"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors"`
}
