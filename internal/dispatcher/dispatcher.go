// Package dispatcher routes a queued record to the send capability matching
// its notification type, reconstructing the typed payload from the record's
// template data on the way.
package dispatcher

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/skycruzer/fleet-notify/internal/model"
	"github.com/skycruzer/fleet-notify/pkg/backoff"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher/mock.go -package=mocks

// Mailer is the set of external send capabilities, one per notification
// type. Each returns the provider message id on success.
type Mailer interface {
	SendCertificationExpiryAlert(ctx context.Context, to string, data model.CertificationExpiryData) (string, error)
	SendLeaveRequestNotification(ctx context.Context, to string, data model.LeaveRequestData) (string, error)
	SendLeaveApprovalNotification(ctx context.Context, to string, data model.LeaveApprovalData) (string, error)
	SendSystemNotification(ctx context.Context, to string, data model.SystemNoticeData) (string, error)
	SendWelcomeEmail(ctx context.Context, to string, data model.WelcomeData) (string, error)
	SendPasswordResetEmail(ctx context.Context, to string, data model.PasswordResetData) (string, error)
}

// Dispatcher maps notification types onto Mailer calls. Sends run through
// the backoff policy, so one Dispatch may cover several in-process attempts
// before the failure is surfaced for database-level retry scheduling.
type Dispatcher struct {
	mailer   Mailer
	validate *validator.Validate
	policy   backoff.Policy
}

// New creates a dispatcher around the given send capabilities.
func New(mailer Mailer, validate *validator.Validate, policy backoff.Policy) *Dispatcher {
	return &Dispatcher{
		mailer:   mailer,
		validate: validate,
		policy:   policy,
	}
}

// Dispatch sends one queued record. Adding a notification type means adding
// one case here plus one Mailer method; unknown values are reported as a
// permanent dispatch error, never silently dropped.
func (d *Dispatcher) Dispatch(ctx context.Context, n model.QueuedNotification) model.DispatchResult {
	switch n.NotificationType {
	case model.TypeCertificationExpiry:
		var data model.CertificationExpiryData
		if err := d.decode(n, &data); err != nil {
			return failure(err)
		}
		return d.deliver(ctx, func(ctx context.Context) (string, error) {
			return d.mailer.SendCertificationExpiryAlert(ctx, n.EmailAddress, data)
		})

	case model.TypeLeaveRequest:
		var data model.LeaveRequestData
		if err := d.decode(n, &data); err != nil {
			return failure(err)
		}
		return d.deliver(ctx, func(ctx context.Context) (string, error) {
			return d.mailer.SendLeaveRequestNotification(ctx, n.EmailAddress, data)
		})

	case model.TypeLeaveApproval:
		var data model.LeaveApprovalData
		if err := d.decode(n, &data); err != nil {
			return failure(err)
		}
		return d.deliver(ctx, func(ctx context.Context) (string, error) {
			return d.mailer.SendLeaveApprovalNotification(ctx, n.EmailAddress, data)
		})

	case model.TypeSystem:
		var data model.SystemNoticeData
		if err := d.decode(n, &data); err != nil {
			return failure(err)
		}
		return d.deliver(ctx, func(ctx context.Context) (string, error) {
			return d.mailer.SendSystemNotification(ctx, n.EmailAddress, data)
		})

	case model.TypeWelcome:
		var data model.WelcomeData
		if err := d.decode(n, &data); err != nil {
			return failure(err)
		}
		return d.deliver(ctx, func(ctx context.Context) (string, error) {
			return d.mailer.SendWelcomeEmail(ctx, n.EmailAddress, data)
		})

	case model.TypePasswordReset:
		var data model.PasswordResetData
		if err := d.decode(n, &data); err != nil {
			return failure(err)
		}
		return d.deliver(ctx, func(ctx context.Context) (string, error) {
			return d.mailer.SendPasswordResetEmail(ctx, n.EmailAddress, data)
		})

	default:
		// An unroutable type can never succeed, so it must not consume the
		// retry budget.
		return model.DispatchResult{
			Permanent: true,
			Error:     fmt.Sprintf("Unknown notification type: %s", n.NotificationType),
		}
	}
}

func (d *Dispatcher) decode(n model.QueuedNotification, dst any) error {
	if err := n.DecodeTemplateData(dst); err != nil {
		return err
	}

	if err := d.validate.Struct(dst); err != nil {
		return fmt.Errorf("invalid template data for %s: %w", n.NotificationType, err)
	}

	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, send func(context.Context) (string, error)) model.DispatchResult {
	var messageID string

	err := backoff.Retry(ctx, d.policy, func(ctx context.Context) error {
		id, err := send(ctx)
		if err != nil {
			return err
		}
		messageID = id
		return nil
	})
	if err != nil {
		return failure(err)
	}

	return model.DispatchResult{Success: true, MessageID: messageID}
}

func failure(err error) model.DispatchResult {
	return model.DispatchResult{Error: err.Error()}
}
