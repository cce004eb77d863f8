package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/skycruzer/fleet-notify/internal/mocks/processor"
	"github.com/skycruzer/fleet-notify/internal/model"
)

func setupProcessor(t *testing.T) (*Processor, *mocks.MockqueueStore, *mocks.MocknotificationDispatcher) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockqueueStore(ctrl)
	dispatcher := mocks.NewMocknotificationDispatcher(ctrl)
	return New(store, dispatcher, "smtp"), store, dispatcher
}

func dueNotification(priority, attempts int) model.QueuedNotification {
	return model.QueuedNotification{
		ID:               uuid.New(),
		EmailAddress:     "pilot@example.com",
		NotificationType: model.TypeWelcome,
		Priority:         priority,
		ScheduledFor:     time.Now().Add(-time.Minute),
		Status:           model.StatusPending,
		Attempts:         attempts,
		MaxAttempts:      3,
	}
}

func TestProcessQueue_Success(t *testing.T) {
	proc, store, dispatcher := setupProcessor(t)

	n := dueNotification(5, 0)

	store.EXPECT().GetDueNotifications(gomock.Any(), 10).Return([]model.QueuedNotification{n}, nil)
	dispatcher.EXPECT().Dispatch(gomock.Any(), n).Return(model.DispatchResult{Success: true, MessageID: "msg-1"})
	store.EXPECT().UpdateStatus(gomock.Any(), n.ID, model.StatusSent, "").Return(nil)
	store.EXPECT().InsertLog(gomock.Any(), model.LogEntry{
		QueueID:           n.ID,
		DeliveryStatus:    model.DeliveryDelivered,
		Provider:          "smtp",
		ProviderMessageID: "msg-1",
	}).Return(nil)

	summary := proc.ProcessQueue(context.Background(), 10)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Successful)
	assert.Equal(t, 0, summary.Failed)
	assert.Empty(t, summary.Errors)
}

func TestProcessQueue_ExhaustedBudgetSkipsDispatch(t *testing.T) {
	proc, store, _ := setupProcessor(t)

	n := dueNotification(5, 3)

	store.EXPECT().GetDueNotifications(gomock.Any(), 10).Return([]model.QueuedNotification{n}, nil)
	store.EXPECT().UpdateStatus(gomock.Any(), n.ID, model.StatusFailed, "Max retry attempts reached").Return(nil)
	store.EXPECT().InsertLog(gomock.Any(), gomock.Any()).Return(nil)

	summary := proc.ProcessQueue(context.Background(), 10)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "Max retry attempts reached")
}

func TestProcessQueue_FailureSchedulesRetry(t *testing.T) {
	proc, store, dispatcher := setupProcessor(t)

	n := dueNotification(5, 0)

	store.EXPECT().GetDueNotifications(gomock.Any(), 10).Return([]model.QueuedNotification{n}, nil)
	dispatcher.EXPECT().Dispatch(gomock.Any(), n).Return(model.DispatchResult{Error: "smtp timeout"})
	store.EXPECT().
		UpdateAttempt(gomock.Any(), n.ID, "smtp timeout", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, nextRetryAt time.Time) error {
			assert.WithinDuration(t, time.Now().Add(5*time.Minute), nextRetryAt, time.Minute)
			return nil
		})

	summary := proc.ProcessQueue(context.Background(), 10)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, summary.Errors[0], "smtp timeout")
}

func TestProcessQueue_PermanentFailureDoesNotRetry(t *testing.T) {
	proc, store, dispatcher := setupProcessor(t)

	n := dueNotification(5, 0)
	n.NotificationType = "carrier_pigeon"

	store.EXPECT().GetDueNotifications(gomock.Any(), 10).Return([]model.QueuedNotification{n}, nil)
	dispatcher.EXPECT().Dispatch(gomock.Any(), n).Return(model.DispatchResult{
		Permanent: true,
		Error:     "Unknown notification type: carrier_pigeon",
	})
	store.EXPECT().UpdateStatus(gomock.Any(), n.ID, model.StatusFailed, "Unknown notification type: carrier_pigeon").Return(nil)
	store.EXPECT().InsertLog(gomock.Any(), gomock.Any()).Return(nil)

	summary := proc.ProcessQueue(context.Background(), 10)

	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, summary.Errors[0], "Unknown notification type: carrier_pigeon")
}

func TestProcessQueue_FetchErrorShortCircuits(t *testing.T) {
	proc, store, _ := setupProcessor(t)

	store.EXPECT().GetDueNotifications(gomock.Any(), DefaultBatchSize).Return(nil, errors.New("db down"))

	summary := proc.ProcessQueue(context.Background(), 0)

	assert.Equal(t, 0, summary.Processed)
	assert.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "db down")
}

func TestProcessQueue_OneBadRecordDoesNotAbortBatch(t *testing.T) {
	proc, store, dispatcher := setupProcessor(t)

	first := dueNotification(1, 0)
	second := dueNotification(3, 0)
	third := dueNotification(5, 0)

	store.EXPECT().GetDueNotifications(gomock.Any(), 10).
		Return([]model.QueuedNotification{first, second, third}, nil)

	dispatcher.EXPECT().Dispatch(gomock.Any(), first).Return(model.DispatchResult{Success: true, MessageID: "m1"})
	store.EXPECT().UpdateStatus(gomock.Any(), first.ID, model.StatusSent, "").Return(nil)
	store.EXPECT().InsertLog(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	dispatcher.EXPECT().Dispatch(gomock.Any(), second).Return(model.DispatchResult{Error: "smtp timeout"})
	store.EXPECT().UpdateAttempt(gomock.Any(), second.ID, "smtp timeout", gomock.Any()).Return(nil)

	dispatcher.EXPECT().Dispatch(gomock.Any(), third).Return(model.DispatchResult{Success: true, MessageID: "m3"})
	store.EXPECT().UpdateStatus(gomock.Any(), third.ID, model.StatusSent, "").Return(nil)

	summary := proc.ProcessQueue(context.Background(), 10)

	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 2, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, summary.Errors, 1)
}

func TestProcessQueue_DispatchPanicIsContained(t *testing.T) {
	proc, store, dispatcher := setupProcessor(t)

	n := dueNotification(5, 0)

	store.EXPECT().GetDueNotifications(gomock.Any(), 10).Return([]model.QueuedNotification{n}, nil)
	dispatcher.EXPECT().Dispatch(gomock.Any(), n).DoAndReturn(
		func(context.Context, model.QueuedNotification) model.DispatchResult {
			panic("template blew up")
		})
	store.EXPECT().UpdateAttempt(gomock.Any(), n.ID, gomock.Any(), gomock.Any()).Return(nil)

	summary := proc.ProcessQueue(context.Background(), 10)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, summary.Errors[0], "dispatch panic")
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 5*time.Minute, retryDelay(1))
	assert.Equal(t, 15*time.Minute, retryDelay(2))
	assert.Equal(t, time.Hour, retryDelay(3))
	assert.Equal(t, time.Hour, retryDelay(7))
}
