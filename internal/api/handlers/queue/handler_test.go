package queue

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/skycruzer/fleet-notify/internal/api/dto"
	mocks "github.com/skycruzer/fleet-notify/internal/mocks/api/handlers/queue"
	"github.com/skycruzer/fleet-notify/internal/model"
	queuesvc "github.com/skycruzer/fleet-notify/internal/service/queue"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockqueueService, *mocks.MockqueueProcessor) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockqueueService(ctrl)
	mockProcessor := mocks.NewMockqueueProcessor(ctrl)
	handler := NewHandler(mockService, mockProcessor, validator.New())
	return handler, mockService, mockProcessor
}

func TestHandler_Enqueue_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	reqBody := dto.EnqueueRequest{
		EmailAddress:     "pilot@example.com",
		NotificationType: model.TypeWelcome,
		Subject:          "Welcome aboard",
		TemplateData:     map[string]any{"name": "Jordan"},
		Priority:         3,
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/queue/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		QueueNotification(gomock.Any(), gomock.Any()).
		Return(uuid.New(), nil)

	handler.Enqueue(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Enqueue_InvalidBody(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/queue/notifications", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Enqueue(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Enqueue_MissingEmail(t *testing.T) {
	handler, _, _ := setupHandler(t)

	bodyBytes, _ := json.Marshal(dto.EnqueueRequest{NotificationType: model.TypeWelcome})
	req := httptest.NewRequest(http.MethodPost, "/api/queue/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Enqueue(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_EnqueueBatch_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	reqBody := dto.EnqueueBatchRequest{
		Notifications: []dto.EnqueueRequest{
			{EmailAddress: "a@example.com", NotificationType: model.TypeWelcome},
			{EmailAddress: "b@example.com", NotificationType: model.TypeSystem},
		},
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/queue/notifications/batch", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		QueueBatch(gomock.Any(), gomock.Any()).
		Return(2, []string{})

	handler.EnqueueBatch(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetStatus_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/queue/notifications/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetNotificationStatus(gomock.Any(), id).
		Return(&model.QueuedNotification{ID: id, Status: model.StatusPending}, nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetStatus_NotFound(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/queue/notifications/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetNotificationStatus(gomock.Any(), id).
		Return(nil, queuesvc.ErrNotificationNotFound)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_GetStatus_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/queue/notifications/not-a-uuid", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.GetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Status_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/queue/notifications/"+id.String()+"/status", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().StatusByID(gomock.Any(), id).Return(model.StatusSent, nil)

	handler.Status(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Cancel_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/queue/notifications/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().CancelNotification(gomock.Any(), id).Return(true, nil)

	handler.Cancel(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Cancel_Conflict(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/queue/notifications/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().CancelNotification(gomock.Any(), id).Return(false, nil)

	handler.Cancel(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_PendingCount_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/queue/notifications/pending/count", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().PendingCount(gomock.Any()).Return(4, nil)

	handler.PendingCount(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Process_Success(t *testing.T) {
	handler, _, mockProcessor := setupHandler(t)

	bodyBytes, _ := json.Marshal(dto.ProcessRequest{Limit: 25})
	req := httptest.NewRequest(http.MethodPost, "/api/queue/process", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockProcessor.EXPECT().
		ProcessQueue(gomock.Any(), 25).
		Return(model.RunSummary{Processed: 3, Successful: 2, Failed: 1, Errors: []string{"x: smtp timeout"}})

	handler.Process(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var body struct {
		Data model.RunSummary `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 3, body.Data.Processed)
	assert.Equal(t, 2, body.Data.Successful)
}

func TestHandler_Process_EmptyBodyUsesDefaultLimit(t *testing.T) {
	handler, _, mockProcessor := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/queue/process", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockProcessor.EXPECT().
		ProcessQueue(gomock.Any(), 0).
		Return(model.RunSummary{Errors: []string{}})

	handler.Process(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Cleanup_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/queue/cleanup", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().CleanupOldQueueItems(gomock.Any()).Return(int64(12), nil)

	handler.Cleanup(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
