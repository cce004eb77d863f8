package dispatcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/skycruzer/fleet-notify/internal/mocks/dispatcher"
	"github.com/skycruzer/fleet-notify/internal/model"
	"github.com/skycruzer/fleet-notify/pkg/backoff"
)

func fastPolicy() backoff.Policy {
	return backoff.Policy{
		MaxRetries:     2,
		InitialDelay:   time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		Multiplier:     2,
		AttemptTimeout: time.Second,
	}
}

func setupDispatcher(t *testing.T) (*Dispatcher, *mocks.MockMailer) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	return New(mailer, validator.New(), fastPolicy()), mailer
}

func TestDispatch_WelcomeSuccess(t *testing.T) {
	d, mailer := setupDispatcher(t)

	n := model.QueuedNotification{
		EmailAddress:     "pilot@example.com",
		NotificationType: model.TypeWelcome,
		TemplateData:     map[string]any{"name": "Jordan", "role": "Captain"},
	}

	mailer.EXPECT().
		SendWelcomeEmail(gomock.Any(), "pilot@example.com", model.WelcomeData{Name: "Jordan", Role: "Captain"}).
		Return("msg-42", nil)

	res := d.Dispatch(context.Background(), n)

	assert.True(t, res.Success)
	assert.Equal(t, "msg-42", res.MessageID)
	assert.Empty(t, res.Error)
}

func TestDispatch_CertificationExpirySuccess(t *testing.T) {
	d, mailer := setupDispatcher(t)

	n := model.QueuedNotification{
		EmailAddress:     "pilot@example.com",
		NotificationType: model.TypeCertificationExpiry,
		TemplateData: map[string]any{
			"pilot_name":     "Jordan Lee",
			"check_code":     "PC",
			"expiry_date":    "2026-10-01",
			"days_remaining": 30,
		},
	}

	mailer.EXPECT().
		SendCertificationExpiryAlert(gomock.Any(), "pilot@example.com", model.CertificationExpiryData{
			PilotName:     "Jordan Lee",
			CheckCode:     "PC",
			ExpiryDate:    "2026-10-01",
			DaysRemaining: 30,
		}).
		Return("msg-1", nil)

	res := d.Dispatch(context.Background(), n)

	assert.True(t, res.Success)
}

func TestDispatch_UnknownTypeIsPermanent(t *testing.T) {
	d, _ := setupDispatcher(t)

	n := model.QueuedNotification{
		EmailAddress:     "pilot@example.com",
		NotificationType: "carrier_pigeon",
	}

	res := d.Dispatch(context.Background(), n)

	assert.False(t, res.Success)
	assert.True(t, res.Permanent)
	assert.Equal(t, "Unknown notification type: carrier_pigeon", res.Error)
}

func TestDispatch_MissingRequiredFieldFails(t *testing.T) {
	d, _ := setupDispatcher(t)

	n := model.QueuedNotification{
		EmailAddress:     "pilot@example.com",
		NotificationType: model.TypePasswordReset,
		TemplateData:     map[string]any{"name": "Jordan"}, // reset_url missing
	}

	res := d.Dispatch(context.Background(), n)

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "invalid template data for password_reset")
}

func TestDispatch_RetriesTransientSendFailure(t *testing.T) {
	d, mailer := setupDispatcher(t)

	n := model.QueuedNotification{
		EmailAddress:     "pilot@example.com",
		NotificationType: model.TypeSystem,
		TemplateData:     map[string]any{"title": "Maintenance", "message": "Downtime at 02:00"},
	}

	gomock.InOrder(
		mailer.EXPECT().
			SendSystemNotification(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("connection refused")),
		mailer.EXPECT().
			SendSystemNotification(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("msg-9", nil),
	)

	res := d.Dispatch(context.Background(), n)

	assert.True(t, res.Success)
	assert.Equal(t, "msg-9", res.MessageID)
}

func TestDispatch_ExhaustedSendReportsFailure(t *testing.T) {
	d, mailer := setupDispatcher(t)

	n := model.QueuedNotification{
		EmailAddress:     "approver@example.com",
		NotificationType: model.TypeLeaveRequest,
		TemplateData: map[string]any{
			"pilot_name": "Jordan Lee",
			"leave_type": "RDO",
			"start_date": "2026-09-10",
			"end_date":   "2026-09-12",
		},
	}

	mailer.EXPECT().
		SendLeaveRequestNotification(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("smtp timeout")).
		Times(3)

	res := d.Dispatch(context.Background(), n)

	assert.False(t, res.Success)
	assert.False(t, res.Permanent)
	assert.Contains(t, res.Error, "smtp timeout")
}
